package Lists

import (
	"fmt"
	"iter"
)

type node[T any] struct {
	v          T
	prev, next *node[T]
}

// link u between u.prev and u.next, which must be adjacent.
func (u *node[T]) link() {
	u.next.prev = u
	u.prev.next = u
}

// unlink u from its neighbours. u must not be the sentinel.
func (u *node[T]) unlink() {
	u.next.prev = u.prev
	u.prev.next = u.next
	u.prev, u.next = nil, nil
}

// DList is a doubly linked list with a sentinel node: the list is a ring
// through the sentinel, so inserting and removing never special cases the
// ends. Positional access is O(n).
// The zero value is an empty list ready to use. DList isn't safe for concurrent use.
type DList[T any] struct {
	sentinel node[T]
	size     int
}

// New returns an empty list.
func New[T any]() *DList[T] {
	return new(DList[T]).lazyInit()
}

// From collects seq into a new list, keeping its order.
func From[T any](seq iter.Seq[T]) *DList[T] {
	u := New[T]()
	for v := range seq {
		u.InsertLast(v)
	}
	return u
}

func (u *DList[T]) lazyInit() *DList[T] {
	if u.sentinel.next == nil {
		u.sentinel.prev, u.sentinel.next = &u.sentinel, &u.sentinel
	}
	return u
}

func (u *DList[T]) Size() int {
	return u.size
}

func (u *DList[T]) IsEmpty() bool {
	return u.size == 0
}

// insertBetween creates a node holding v between the adjacent nodes p and n.
func (u *DList[T]) insertBetween(v T, p, n *node[T]) {
	(&node[T]{v, p, n}).link()
	u.size++
}

// InsertFirst v at the head.
// Time: O(1)
func (u *DList[T]) InsertFirst(v T) {
	u.lazyInit()
	u.insertBetween(v, &u.sentinel, u.sentinel.next)
}

// InsertLast v at the tail.
// Time: O(1)
func (u *DList[T]) InsertLast(v T) {
	u.lazyInit()
	u.insertBetween(v, u.sentinel.prev, &u.sentinel)
}

// InsertSorted v before the first element that isn't less than v according
// to compare. A list built only with InsertSorted stays ascending, with
// equal values in reverse insertion order.
// Time: O(n)
func (u *DList[T]) InsertSorted(v T, compare func(a, b T) int) {
	u.lazyInit()
	cur := u.sentinel.next
	for cur != &u.sentinel && compare(cur.v, v) < 0 {
		cur = cur.next
	}
	u.insertBetween(v, cur.prev, cur)
}

func (u *DList[T]) pop(n *node[T]) T {
	n.unlink()
	u.size--
	return n.v
}

// PopFirst removes and returns the head. Returns *EmptyListError on an empty list.
// Time: O(1)
func (u *DList[T]) PopFirst() (T, error) {
	if u.size == 0 {
		return *new(T), &EmptyListError{}
	}
	return u.pop(u.sentinel.next), nil
}

// PopLast removes and returns the tail. Returns *EmptyListError on an empty list.
// Time: O(1)
func (u *DList[T]) PopLast() (T, error) {
	if u.size == 0 {
		return *new(T), &EmptyListError{}
	}
	return u.pop(u.sentinel.prev), nil
}

// at returns the node at index i. Non-negative i counts from the head,
// negative i from the tail, -1 being the last element. Walks from the
// closer end. Panics with IndexError when i is out of range.
func (u *DList[T]) at(i int) *node[T] {
	if i < -u.size || i >= u.size {
		panic(IndexError{i, u.size})
	}
	if i < 0 {
		i += u.size
	}
	if i < u.size>>1 {
		cur := u.sentinel.next
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}
	cur := u.sentinel.prev
	for i = u.size - 1 - i; i > 0; i-- {
		cur = cur.prev
	}
	return cur
}

// Get the value at index i, see RemoveAt for indexing.
// Time: O(n)
func (u *DList[T]) Get(i int) T {
	return u.at(i).v
}

// Set the value at index i and return the one it replaced.
// Time: O(n)
func (u *DList[T]) Set(i int, v T) (old T) {
	n := u.at(i)
	old, n.v = n.v, v
	return
}

// RemoveAt removes and returns the value at index i. Non-negative i counts
// from the head, negative i from the tail (-1 is the last element).
// Panics with IndexError when -Size()<=i<Size() doesn't hold.
// Time: O(n)
func (u *DList[T]) RemoveAt(i int) T {
	return u.pop(u.at(i))
}

// Clear the list.
// Time: O(n)
func (u *DList[T]) Clear() {
	for u.size > 0 {
		u.pop(u.sentinel.next)
	}
}

// Equal reports whether both lists hold equal values, by eq, in the same order.
// Time: O(n)
func (u *DList[T]) Equal(o *DList[T], eq func(a, b T) bool) bool {
	if u.size != o.size {
		return false
	}
	if u.size == 0 {
		return true
	}
	for a, b := u.sentinel.next, o.sentinel.next; a != &u.sentinel; a, b = a.next, b.next {
		if !eq(a.v, b.v) {
			return false
		}
	}
	return true
}

// All yields the values from head to tail.
func (u *DList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.size == 0 {
			return
		}
		for cur := u.sentinel.next; cur != &u.sentinel; cur = cur.next {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (u *DList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.size == 0 {
			return
		}
		for cur := u.sentinel.prev; cur != &u.sentinel; cur = cur.prev {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// String formats the list as "(size=n) : v0 v1 ...".
func (u *DList[T]) String() string {
	s := fmt.Sprintf("(size=%d) :", u.size)
	for v := range u.All() {
		s += fmt.Sprintf(" %v", v)
	}
	return s
}
