package TreeSet

import (
	"iter"

	"github.com/g-m-twostay/go-avl/Sets"
	"github.com/g-m-twostay/go-avl/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.OrderedSet[int] = (*TreeSet[int])(nil)

// TreeSet is an ordered set backed by an AVLTree. Putting an element that
// is already present keeps the stored one.
type TreeSet[E any] struct {
	t *Trees.AVLTree[E]
}

// New empty set in the natural order of E.
func New[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E]().WithCollision(Trees.Reject)}
}

// NewFunc empty set ordered by compare, see Trees.NewFunc.
func NewFunc[E any](compare func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewFunc(compare).WithCollision(Trees.Reject)}
}

// Of returns a set holding the given elements.
func Of[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := New[E]()
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put e, returns false if e was already present.
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	_, had := u.t.Insert(e)
	return !had
}

// Has e.
// Time: O(log n)
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e, returns false if e wasn't present.
// Time: O(log n)
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return uint(u.t.Size())
}

// Take the smallest element without removing it. Returns the zero value if the set is empty.
func (u *TreeSet[E]) Take() E {
	e, _ := u.t.Minimum()
	return e
}

// Range over the elements in ascending order. Stops when f returns false.
// The set mustn't be modified during Range.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.t.All()
}

func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.Minimum()
}

func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.Maximum()
}

func (u *TreeSet[E]) Below(e E) (E, bool) {
	return u.t.Predecessor(e)
}

func (u *TreeSet[E]) Above(e E) (E, bool) {
	return u.t.Successor(e)
}

// PutAll elements of o, returns the number of elements that were new.
// Time: O(m log(n+m))
func (u *TreeSet[E]) PutAll(o Sets.Set[E]) (n uint) {
	o.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of o, returns the number of elements removed.
func (u *TreeSet[E]) RemoveAll(o Sets.Set[E]) (n uint) {
	o.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Intersect keeps only the elements also in o.
// Time: O(n*cost(o.Has) + k log n) for k removed elements
func (u *TreeSet[E]) Intersect(o Sets.Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !o.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.t.Remove(e)
	}
}

// Eq reports whether u and o hold the same elements.
func (u *TreeSet[E]) Eq(o Sets.Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = o.Has(e)
		return eq
	})
	return eq
}
