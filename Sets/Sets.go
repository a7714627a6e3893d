package Sets

// Set of unique elements. Put and Remove report whether the set changed.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	// Take an element without removing it; zero value when empty.
	Take() E
	// Range calls f on the elements until f returns false.
	Range(func(E) bool)
}

// OrderedSet is a Set whose Range is in ascending order.
type OrderedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
	// Below is the greatest element less than e.
	Below(e E) (E, bool)
	// Above is the smallest element greater than e.
	Above(e E) (E, bool)
}
