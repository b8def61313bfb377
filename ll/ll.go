// Package ll implements a thread-safe singly linked list. A whole-list
// rwlock guards the head, the length and the validity flag; every node
// carries its own rwlock and deep traversals take them hand-over-hand,
// so concurrent structural mutation never corrupts the chain or exposes
// an unlinked node to a traversing goroutine.
package ll

import "sync"

type lockType int

// the two flavors of rwlock acquisition. Unlike pthread, Go's RWMutex
// unlock must match the acquire flavor, so the flavor travels with the
// lock helpers.
const (
	lockRead lockType = iota
	lockWrite
)

func rwLock(m *sync.RWMutex, lt lockType) {
	if lt == lockRead {
		m.RLock()
	} else {
		m.Lock()
	}
}

func rwUnlock(m *sync.RWMutex, lt lockType) {
	if lt == lockRead {
		m.RUnlock()
	} else {
		m.Unlock()
	}
}

// TeardownFunc is called exactly once per value when that value leaves
// the list through RemoveN, RemoveSearch, RemoveFind, Clear or Delete.
// Ownership of the value transfers to the callback. It must not
// re-enter the list.
type TeardownFunc[T any] func(T)

// PrinterFunc displays a value during Print. It must not take
// ownership of the value.
type PrinterFunc[T any] func(T)

// Predicate reports whether a value matches, for RemoveSearch.
type Predicate[T any] func(T) bool

// Comparator reports 0 when val matches ref; any other value means
// mismatch. No ordering semantics are implied.
type Comparator[T any] func(val, ref T) int

type List[T any] struct {
	// running length
	len int

	// first node in the chain
	head *node[T]

	m sync.RWMutex

	teardown TeardownFunc[T]
	printer  PrinterFunc[T]

	// goes down exactly once, in Clear; no structural operation
	// succeeds afterwards
	valid bool
}

// New returns an empty, valid list bound to teardown. A nil teardown
// behaves like NoTeardown.
func New[T any](teardown TeardownFunc[T]) *List[T] {
	if teardown == nil {
		teardown = NoTeardown[T]
	}
	return &List[T]{
		teardown: teardown,
		valid:    true,
	}
}

// NoTeardown is a teardown for values that need nothing done.
func NoTeardown[T any](T) {}

func (l *List[T]) SetPrinter(p PrinterFunc[T]) {
	l.m.Lock()
	if l.valid {
		l.printer = p
	}
	l.m.Unlock()
}

// checkValid acquires the list lock with the given flavor and verifies
// the list has not been cleared. When it reports false the lock has
// already been released.
func (l *List[T]) checkValid(lt lockType) bool {
	rwLock(&l.m, lt)
	if !l.valid {
		rwUnlock(&l.m, lt)
		return false
	}
	return true
}

// Length returns the number of values in the list, or -1 once the list
// has been cleared.
func (l *List[T]) Length() int {
	if !l.checkValid(lockRead) {
		return -1
	}
	n := l.len
	l.m.RUnlock()
	return n
}

// Clear tears down every value, unlinks every node and invalidates the
// list. Write-locking each node in turn synchronizes with any
// traversal still parked on it. After Clear only Delete may be called.
func (l *List[T]) Clear() {
	if !l.checkValid(lockWrite) {
		return
	}
	n := l.head
	for n != nil {
		n.m.Lock()
		l.teardown(n.val)
		next := n.next
		n.m.Unlock()
		n.next = nil
		l.len--
		n = next
	}
	if l.len != 0 {
		panic("ll: length out of sync with chain")
	}
	l.head = nil
	l.teardown = nil
	l.printer = nil
	l.valid = false
	l.m.Unlock()
}

// Delete clears the list if it is still valid. It exists for parity
// with the C API this package descends from; the list header itself is
// reclaimed by the garbage collector.
func (l *List[T]) Delete() {
	l.m.RLock()
	valid := l.valid
	l.m.RUnlock()
	if valid {
		l.Clear()
	}
}
