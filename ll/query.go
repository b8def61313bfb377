package ll

import "fmt"

// GetN returns the value at position n. Reports false on a position
// that does not exist or a cleared list.
func (l *List[T]) GetN(n int) (T, bool) {
	var zero T

	if n < 0 {
		return zero, false
	}
	// descending one hop further lands on position n itself
	target, ok := l.selectNMinus1(n+1, lockRead)
	if !ok {
		return zero, false
	}
	val := target.val
	target.m.RUnlock()
	l.m.RUnlock()
	return val, true
}

// GetFirst returns the first value in the list.
func (l *List[T]) GetFirst() (T, bool) {
	return l.GetN(0)
}

// Find returns the first value comparator reports equal (0) to ref,
// without removing it. The value stays owned by the list.
func (l *List[T]) Find(comparator Comparator[T], ref T) (T, bool) {
	var val T
	var found bool

	if !l.checkValid(lockRead) {
		return val, false
	}
	for n := l.head; n != nil; n = n.next {
		if comparator(n.val, ref) == 0 {
			val, found = n.val, true
			break
		}
	}
	l.m.RUnlock()
	return val, found
}

// Map calls f on every value in head-to-tail order. The list-level
// read lock keeps structural mutation out for the whole call; each
// node is write-locked around its callback since f may alter the value
// in place.
func (l *List[T]) Map(f func(T)) {
	if !l.checkValid(lockRead) {
		return
	}
	l.mapInternal(f)
	l.m.RUnlock()
}

func (l *List[T]) mapInternal(f func(T)) {
	n := l.head
	for n != nil {
		n.m.Lock()
		next := n.next
		f(n.val)
		n.m.Unlock()
		n = next
	}
}

// Print runs the configured printer over every value and reports the
// length. A no-op when no printer has been set.
func (l *List[T]) Print() {
	if !l.checkValid(lockRead) {
		return
	}
	if l.printer != nil {
		fmt.Print("(ll:")
		l.mapInternal(l.printer)
		fmt.Printf("), length: %d\n", l.len)
	}
	l.m.RUnlock()
}
