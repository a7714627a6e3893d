package Trees

import "fmt"

// InvalidSliceError is panicked by Build and BuildFunc in safe mode when the
// given slice isn't strictly ascending. Prev and Cur are the offending pair
// at positions Index-1 and Index.
type InvalidSliceError struct {
	Index     int
	Prev, Cur any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Cur)
}

// PolicyChangeError is panicked by WithCollision on a tree that already holds values.
type PolicyChangeError struct {
	Size int
	To   Collision
}

func (e PolicyChangeError) Error() string {
	return fmt.Sprintf("can't switch collision policy to %s on a tree of size %d", e.To, e.Size)
}
