package earclip

import "github.com/osuushi/polykit/internal/throw"

// Vertices are identified by their index in the input. Every linked structure
// below is a pair of index arrays with O(1) removal and neighbour lookup.

const none = -1

// A circular doubly linked list over the indices 0..n-1, from which indices
// can only be removed.
type ring struct {
	prev, next []int
	live       int
}

func newRing(n int) *ring {
	r := &ring{
		prev: make([]int, n),
		next: make([]int, n),
		live: n,
	}
	for i := 0; i < n; i++ {
		r.prev[i] = (i - 1 + n) % n
		r.next[i] = (i + 1) % n
	}
	return r
}

func (r *ring) remove(i int) {
	if r.next[i] == none {
		throw.Fatalf("vertex %d removed from ring twice", i)
	}
	p, n := r.prev[i], r.next[i]
	r.next[p] = n
	r.prev[n] = p
	r.prev[i], r.next[i] = none, none
	r.live--
}

// A linear doubly linked list of a subset of 0..n-1 with O(1) membership
// tests. Used for the reflex and ear sets.
type indexList struct {
	head, tail int
	prev, next []int
	member     []bool
	size       int
}

func newIndexList(n int) *indexList {
	return &indexList{
		head:   none,
		tail:   none,
		prev:   make([]int, n),
		next:   make([]int, n),
		member: make([]bool, n),
	}
}

func (l *indexList) contains(i int) bool {
	return l.member[i]
}

func (l *indexList) front() int {
	return l.head
}

func (l *indexList) pushFront(i int) {
	if l.member[i] {
		return
	}
	l.member[i] = true
	l.prev[i] = none
	l.next[i] = l.head
	if l.head != none {
		l.prev[l.head] = i
	} else {
		l.tail = i
	}
	l.head = i
	l.size++
}

func (l *indexList) pushBack(i int) {
	if l.member[i] {
		return
	}
	l.member[i] = true
	l.next[i] = none
	l.prev[i] = l.tail
	if l.tail != none {
		l.next[l.tail] = i
	} else {
		l.head = i
	}
	l.tail = i
	l.size++
}

// Removing an index that isn't in the list is a no-op.
func (l *indexList) remove(i int) {
	if !l.member[i] {
		return
	}
	p, n := l.prev[i], l.next[i]
	if p != none {
		l.next[p] = n
	} else {
		l.head = n
	}
	if n != none {
		l.prev[n] = p
	} else {
		l.tail = p
	}
	l.member[i] = false
	l.size--
}

// Call fn for every index from front to back until it returns false.
func (l *indexList) each(fn func(i int) bool) {
	for i := l.head; i != none; i = l.next[i] {
		if !fn(i) {
			return
		}
	}
}
