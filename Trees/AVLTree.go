package Trees

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-avl/Queues"
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees of
// every node within 1 of each other, so the height D of the tree is less
// than 1.44*log2(n+2)-0.33, which is O(log n).
// Every node keeps a pointer to its parent, which lets the mutating
// operations rebalance with an upward walk instead of recursion, and lets
// the iterators walk the tree without a stack.
// Two values a and b are equal when cmp(a,b)==0; only one of them is stored.
// AVLTree isn't safe for concurrent use.
type AVLTree[T any] struct {
	root   *node[T]
	size   int
	cmp    func(a, b T) int
	policy Collision
}

// New returns an empty AVLTree ordering values with the natural order of T.
// The collision policy is Overwrite.
func New[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty AVLTree ordered by compare, which returns a
// negative number when a<b, a positive number when a>b and 0 when they are
// equal. compare must be a total order.
func NewFunc[T any](compare func(a, b T) int) *AVLTree[T] {
	return &AVLTree[T]{cmp: compare}
}

// Build an AVLTree from the given sorted slice. This is faster than
// repeatedly calling Insert. The slice must be in ascending order and
// mustn't contain duplicate elements. If safe==true, the order is checked
// and InvalidSliceError is panicked when it's broken. Otherwise it's up to
// the caller, and a bad slice gives a corrupt tree.
// Time: O(n)
func Build[T constraints.Ordered](sorted []T, safe bool) *AVLTree[T] {
	return BuildFunc(sorted, cmp.Compare[T], safe)
}

// BuildFunc is Build with a user defined order, see NewFunc.
func BuildFunc[T any](sorted []T, compare func(a, b T) int, safe bool) *AVLTree[T] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if compare(sorted[i-1], sorted[i]) >= 0 {
				panic(InvalidSliceError{i, sorted[i-1], sorted[i]})
			}
		}
	}
	var build func([]T, *node[T]) *node[T]
	build = func(s []T, p *node[T]) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		n.updateHeight()
		return n
	}
	return &AVLTree[T]{root: build(sorted, nil), size: len(sorted), cmp: compare}
}

// WithCollision sets what Insert does when the value is already present.
// It can only be called while the tree is empty and panics with
// PolicyChangeError otherwise. Returns u for chaining after a constructor.
func (u *AVLTree[T]) WithCollision(c Collision) *AVLTree[T] {
	if u.size != 0 {
		panic(PolicyChangeError{u.size, c})
	}
	u.policy = c
	return u
}

// Collision policy of the tree.
func (u *AVLTree[T]) Collision() Collision {
	return u.policy
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() int {
	return u.size
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) IsEmpty() bool {
	return u.size == 0
}

// Height of the tree; a single node tree has height 0 and an empty one -1.
func (u *AVLTree[T]) Height() int {
	return heightOf(u.root)
}

// replace the child old of p with c. When p is nil, old was the root and c becomes the new root.
func (u *AVLTree[T]) replace(p, old, c *node[T]) {
	if p == nil {
		u.root = c
		if c != nil {
			c.p = nil
		}
	} else if p.l == old {
		p.setLeft(c)
	} else {
		p.setRight(c)
	}
}

// rotateLeft promotes n.r to the position of n, n becomes its left child.
// Returns the new root of the subtree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) rotateLeft(n *node[T]) *node[T] {
	p, c := n.p, n.r
	n.setRight(c.l)
	c.setLeft(n)
	u.replace(p, n, c)
	n.updateHeight()
	c.updateHeight()
	return c
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) rotateRight(n *node[T]) *node[T] {
	p, c := n.p, n.l
	n.setLeft(c.r)
	c.setRight(n)
	u.replace(p, n, c)
	n.updateHeight()
	c.updateHeight()
	return c
}

// rebalance walks from n up to the root, fixing heights and rotating where
// a node became 2 levels heavier on one side. The walk never stops early
// since the heights of the ancestors may still change.
// Time: O(D)
func (u *AVLTree[T]) rebalance(n *node[T]) {
	for ; n != nil; n = n.p {
		n.updateHeight()
		switch n.balance() {
		case 2:
			if n.r.balance() == -1 {
				u.rotateRight(n.r)
			}
			n = u.rotateLeft(n)
		case -2:
			if n.l.balance() == 1 {
				u.rotateLeft(n.l)
			}
			n = u.rotateRight(n)
		}
	}
}

// find v. Returns the node holding v if found, otherwise the last node
// visited, which is where v would be attached. The node is nil only when
// the tree is empty.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) find(v T) (bool, *node[T]) {
	var last *node[T]
	for cur := u.root; cur != nil; {
		last = cur
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true, cur
		}
	}
	return false, last
}

// Find v in the tree. Returns true and the node holding v if found.
// Otherwise returns false and the anchor node, the last node visited by the
// search, which is nil only if the tree is empty.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Find(v T) (bool, *Node[T]) {
	found, n := u.find(v)
	return found, wrap(n)
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Get(v T) (T, bool) {
	if found, n := u.find(v); found {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	found, _ := u.find(v)
	return found
}

// Insert [Tree.Insert]. The new node is attached below the anchor found by
// the search, then the tree is rebalanced starting from the anchor. A
// collision never changes the shape of the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Insert(v T) (prev T, replaced bool) {
	if u.root == nil {
		u.root = &node[T]{v: v}
		u.size = 1
		return
	}
	found, a := u.find(v)
	if found {
		prev = a.v
		if u.policy == Overwrite {
			a.v = v
		}
		return prev, true
	}
	n := &node[T]{v: v}
	if u.cmp(v, a.v) < 0 {
		a.setLeft(n)
	} else {
		a.setRight(n)
	}
	u.size++
	u.rebalance(a)
	return
}

// Delete [Tree.Delete]. A node with 2 children takes the value of its
// in-order predecessor, and the predecessor node, which has no right child,
// is spliced out instead. Rebalancing starts from the parent of the node
// that was actually unlinked.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Delete(v T) (old T, ok bool) {
	found, t := u.find(v)
	if !found {
		return
	}
	old = t.v
	if t.l != nil && t.r != nil {
		pre := t.l.rightmost()
		t.v = pre.v
		t = pre
	}
	c := t.l
	if c == nil {
		c = t.r
	}
	p := t.p
	u.replace(p, t, c)
	t.p, t.l, t.r = nil, nil, nil
	u.size--
	u.rebalance(p)
	return old, true
}

// Remove [Tree.Remove]. The removed value is dropped; use Delete to get it.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Remove(v T) bool {
	_, ok := u.Delete(v)
	return ok
}

// Clear the tree. Nodes are unlinked bottom up without recursion or extra memory.
// Time: O(n); Space: O(1)
func (u *AVLTree[T]) Clear() {
	for n := u.root; n != nil; {
		if n.l != nil {
			n = n.l
		} else if n.r != nil {
			n = n.r
		} else {
			p := n.p
			if p != nil {
				if p.l == n {
					p.l = nil
				} else {
					p.r = nil
				}
			}
			n.p = nil
			n = p
		}
	}
	u.root, u.size = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// All [Tree.All]
// Time: amortized O(1) per element; Space: O(1)
func (u *AVLTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for n := u.root.leftmost(); n != nil; n = n.next() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Backward is All in descending order.
func (u *AVLTree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for n := u.root.rightmost(); n != nil; n = n.prev() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	var cur *node[T]
	if u.root != nil {
		cur = u.root.leftmost()
	}
	return func() (v T, has bool) {
		if cur == nil {
			return
		}
		v, has = cur.v, true
		cur = cur.next()
		return
	}
}

type levelItem[T any] struct {
	n     *node[T]
	depth int
}

// LevelOrder calls f on every value breadth first, left to right, with the
// depth of its node; the root is at depth 0. Stops when f returns false.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) LevelOrder(f func(v T, depth int) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[T]](uint(u.root.height) + 1)
	q.Push(levelItem[T]{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n.v, it.depth) {
			return
		}
		if it.n.l != nil {
			q.Push(levelItem[T]{it.n.l, it.depth + 1})
		}
		if it.n.r != nil {
			q.Push(levelItem[T]{it.n.r, it.depth + 1})
		}
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(1)
func (u *AVLTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.p != nil {
		return true
	}
	count := 0
	var last *node[T]
	for n := u.root.leftmost(); n != nil; n = n.next() {
		if count++; count > u.size {
			return true
		}
		if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
			return true
		}
		if n.height != max(heightOf(n.l), heightOf(n.r))+1 {
			return true
		}
		if b := n.balance(); b < -1 || b > 1 {
			return true
		}
		if last != nil && u.cmp(last.v, n.v) >= 0 {
			return true
		}
		last = n
	}
	return count != u.size
}
