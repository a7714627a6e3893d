package Trees

import "iter"

// Tree represents an ordered container implemented using linked nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Implementations are not safe for concurrent use; callers sharing a
// tree between goroutines must synchronize externally.
type Tree[T any] interface {
	//Insert v to the Tree. Returns the previously stored value and true
	//if an equal value was already present. What happens to the stored
	//value on a collision depends on the Collision policy.
	Insert(v T) (T, bool)
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Delete is Remove that also hands back the value that was stored.
	Delete(v T) (T, bool)
	//Get the stored value equal to v.
	Get(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() int
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//All yields the elements in ascending order. The sequence is lazy and
	//can be ranged over any number of times. The tree must not be modified
	//during the iteration.
	All() iter.Seq[T]
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when some node
	//violates the ordering, balance, height or linkage properties.
	Corrupt() bool
}

// Collision decides what Insert does with a value equal to one already stored.
type Collision uint8

const (
	// Overwrite replaces the stored value and returns the previous one.
	Overwrite Collision = iota
	// Reject keeps the stored value. Insert still returns it.
	Reject
)

func (c Collision) String() string {
	switch c {
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	}
	return "unknown"
}
