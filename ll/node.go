package ll

import "sync"

type node[T any] struct {
	// the value at this node; owned by the list until the node is
	// unlinked
	val T

	next *node[T]

	m sync.RWMutex
}

func newNode[T any](val T) *node[T] {
	return &node[T]{val: val}
}

// selectNMinus1 walks to the node at position n-1 and returns it with
// its lock held and the list lock still held, for the caller to finish
// the edit. The descent is hand-over-hand: the next node's lock is
// taken before the current node's lock is dropped, so a concurrent
// remove can never unlink a node the descent is about to step onto.
//
// Callers handle n == 0 against head directly; this is only invoked
// with n >= 1.
func (l *List[T]) selectNMinus1(n int, lt lockType) (*node[T], bool) {
	if n < 0 { // not checked against len, other goroutines can add length
		return nil, false
	}
	if !l.checkValid(lt) {
		return nil, false
	}
	cur := l.head
	if cur == nil {
		if l.len != 0 {
			panic("ll: length out of sync with chain")
		}
		rwUnlock(&l.m, lt)
		return nil, false
	}
	rwLock(&cur.m, lt)
	for ; n > 1; n-- {
		last := cur
		cur = last.next
		if cur == nil { // another goroutine shortened the list
			rwUnlock(&last.m, lt)
			rwUnlock(&l.m, lt)
			return nil, false
		}
		rwLock(&cur.m, lt)
		rwUnlock(&last.m, lt)
	}
	// the list stays locked on purpose
	return cur, true
}
