package ll

// RemoveN unlinks the node at position n and hands its value to the
// teardown callback. Returns the new length, or -1 when the position
// does not exist or the list has been cleared.
func (l *List[T]) RemoveN(n int) int {
	var tmp *node[T]

	if n == 0 {
		if !l.checkValid(lockWrite) {
			return -1
		}
		tmp = l.head
		if tmp == nil {
			l.m.Unlock()
			return -1
		}
		l.head = tmp.next
	} else {
		// selectNMinus1 checks and locks the list for us on success
		prev, ok := l.selectNMinus1(n, lockWrite)
		if !ok {
			return -1
		}
		tmp = prev.next
		if tmp == nil { // n is one past the end
			prev.m.Unlock()
			l.m.Unlock()
			return -1
		}
		prev.next = tmp.next
		prev.m.Unlock()
	}

	l.len--
	l.teardown(tmp.val)
	newLen := l.len
	l.m.Unlock()
	tmp.next = nil
	return newLen
}

// RemoveFirst unlinks the first node. Returns the new length, or -1.
func (l *List[T]) RemoveFirst() int {
	return l.RemoveN(0)
}

// PopFirst unlinks the first node and returns its value. Ownership of
// the value transfers to the caller: the teardown callback is not
// invoked. Reports false when the list is empty or has been cleared.
func (l *List[T]) PopFirst() (T, bool) {
	var zero T

	if !l.checkValid(lockWrite) {
		return zero, false
	}
	n := l.head
	if n == nil {
		l.m.Unlock()
		return zero, false
	}
	val := n.val
	l.len--
	l.head = n.next
	l.m.Unlock()
	n.next = nil
	return val, true
}

// RemoveSearch removes the first value, in head-to-tail order, for
// which cond reports true. Returns the new length, or -1 when nothing
// matches or the list has been cleared.
func (l *List[T]) RemoveSearch(cond Predicate[T]) int {
	if !l.checkValid(lockWrite) {
		return -1
	}

	var last *node[T]
	n := l.head
	for n != nil && !cond(n.val) {
		last = n
		n = n.next
	}

	return l.unlink(last, n)
}

// RemoveFind is the generic replacement for RemoveSearch: it removes
// the first value comparator reports equal (0) to ref. Returns the new
// length, or -1 when nothing matches or the list has been cleared.
func (l *List[T]) RemoveFind(comparator Comparator[T], ref T) int {
	if !l.checkValid(lockWrite) {
		return -1
	}

	var last *node[T]
	n := l.head
	for n != nil && comparator(n.val, ref) != 0 {
		last = n
		n = n.next
	}

	return l.unlink(last, n)
}

// unlink finishes a scan-based removal of n, whose predecessor is
// last. Entered with the list write-locked; the lock is released on
// every path.
func (l *List[T]) unlink(last, n *node[T]) int {
	if n == nil {
		l.m.Unlock()
		return -1
	}

	if n == l.head {
		l.head = n.next
	} else {
		last.m.Lock()
		last.next = n.next
		last.m.Unlock()
	}

	l.teardown(n.val)
	l.len--
	newLen := l.len
	l.m.Unlock()
	n.next = nil
	return newLen
}
