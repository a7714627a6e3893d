package Trees

// A node in the AVLTree.
// l and r own their subtrees, p is only a back reference used for walking
// upwards. A leaf has height 0; an absent child counts as height -1.
type node[T any] struct {
	v       T
	height  int
	p, l, r *node[T]
}

// heightOf returns -1 for a nil node.
func heightOf[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// setLeft binds c as the left child of u. Heights are left untouched.
// Time: O(1); Space: O(1)
func (u *node[T]) setLeft(c *node[T]) {
	u.l = c
	if c != nil {
		c.p = u
	}
}

// setRight binds c as the right child of u. Heights are left untouched.
// Time: O(1); Space: O(1)
func (u *node[T]) setRight(c *node[T]) {
	u.r = c
	if c != nil {
		c.p = u
	}
}

// updateHeight recomputes the height from the current children. The children
// must already hold correct heights.
func (u *node[T]) updateHeight() {
	u.height = max(heightOf(u.l), heightOf(u.r)) + 1
}

// balance is height(r)-height(l).
func (u *node[T]) balance() int {
	return heightOf(u.r) - heightOf(u.l)
}

// rightmost node of the subtree rooting at u.
func (u *node[T]) rightmost() *node[T] {
	for u.r != nil {
		u = u.r
	}
	return u
}

// leftmost node of the subtree rooting at u.
func (u *node[T]) leftmost() *node[T] {
	for u.l != nil {
		u = u.l
	}
	return u
}

// next returns the in-order successor of u using parent pointers, nil if u is the last node.
// Time: amortized O(1)
func (u *node[T]) next() *node[T] {
	if u.r != nil {
		return u.r.leftmost()
	}
	for u.p != nil && u.p.r == u {
		u = u.p
	}
	return u.p
}

// prev is the mirror of next.
func (u *node[T]) prev() *node[T] {
	if u.l != nil {
		return u.l.rightmost()
	}
	for u.p != nil && u.p.l == u {
		u = u.p
	}
	return u.p
}

// Node is a read only view of a node in the AVLTree, as returned by
// AVLTree.Find. It stays valid until the node is removed from its tree.
// The zero value is meaningless.
type Node[T any] struct {
	n *node[T]
}

func wrap[T any](n *node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{n}
}

// Value held by the node.
func (u *Node[T]) Value() T {
	return u.n.v
}

// Height of the subtree rooting at the node. A leaf is 0.
func (u *Node[T]) Height() int {
	return u.n.height
}

// Balance is the height of the right subtree minus the height of the left subtree.
func (u *Node[T]) Balance() int {
	return u.n.balance()
}

// Left child or nil.
func (u *Node[T]) Left() *Node[T] {
	return wrap(u.n.l)
}

// Right child or nil.
func (u *Node[T]) Right() *Node[T] {
	return wrap(u.n.r)
}

// Parent or nil for the root.
func (u *Node[T]) Parent() *Node[T] {
	return wrap(u.n.p)
}
