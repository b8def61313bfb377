package ll

// InsertN inserts val at position n. Acceptable positions run from 0
// (front) to the current length (back). Returns the new length, or -1
// when the position does not exist or the list has been cleared.
func (l *List[T]) InsertN(val T, n int) int {
	nn := newNode(val)

	if n == 0 { // the new node becomes head
		if !l.checkValid(lockWrite) {
			return -1
		}
		nn.next = l.head
		l.head = nn
	} else {
		// selectNMinus1 checks and locks the list for us on success
		prev, ok := l.selectNMinus1(n, lockWrite)
		if !ok {
			return -1
		}
		nn.next = prev.next
		prev.next = nn
		prev.m.Unlock()
	}

	l.len++
	newLen := l.len
	l.m.Unlock()
	return newLen
}

// InsertFirst puts val at the front of the list. Returns the new
// length, or -1.
func (l *List[T]) InsertFirst(val T) int {
	return l.InsertN(val, 0)
}

// InsertLast appends val. The tail is resolved under the exclusive
// list lock rather than from a pre-read length, so the value lands
// exactly last even against concurrent mutators. Every node-lock
// holder also holds the list lock, so with the write lock held the
// walk needs no node locks. Returns the new length, or -1.
func (l *List[T]) InsertLast(val T) int {
	nn := newNode(val)

	if !l.checkValid(lockWrite) {
		return -1
	}
	if l.head == nil {
		l.head = nn
	} else {
		tail := l.head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = nn
	}

	l.len++
	newLen := l.len
	l.m.Unlock()
	return newLen
}
