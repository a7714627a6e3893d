package Trees_test

import (
	"fmt"

	"github.com/g-m-twostay/go-avl/Lists"
	"github.com/g-m-twostay/go-avl/Trees"
)

func ExampleAVLTree() {
	tree := Trees.New[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}
	tree.Remove(5)
	_, root := tree.Find(4)
	fmt.Println(Lists.From(tree.All()), root.Parent() == nil, tree.Height())
	// Output: (size=6) : 1 3 4 7 8 9 true 2
}

func ExampleAVLTree_Insert() {
	type entry struct {
		key  string
		hits int
	}
	tree := Trees.NewFunc(func(a, b entry) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})
	tree.Insert(entry{"a", 1})
	prev, replaced := tree.Insert(entry{"a", 2})
	fmt.Println(prev.hits, replaced, tree.Size())
	// Output: 1 true 1
}
