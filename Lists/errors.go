package Lists

import "fmt"

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "list is empty: cannot pop"
}

// IndexError is panicked on an index outside [-Size, Size).
type IndexError struct {
	Index, Size int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}
