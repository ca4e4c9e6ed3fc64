package Trees

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// Node in a RBTree. Nodes are owned by the tree that created them and are only exposed so that
// an Alloc.Source can provide their storage.
// The zero value is an unlinked red node.
type Node[V any] struct {
	color               color
	parent, left, right *Node[V]
	v                   V
}

// isHeader tells the header apart from real nodes. The header is the only red node whose
// grandparent is itself, or the only node without a parent when the tree is empty.
func (n *Node[V]) isHeader() bool {
	return n.color == red && (n.parent == nil || n.parent.parent == n)
}

func isBlack[V any](n *Node[V]) bool {
	return n == nil || n.color == black
}

func minimum[V any](x *Node[V]) *Node[V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func maximum[V any](x *Node[V]) *Node[V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// increment returns the in-order successor of n. The successor of the maximum is the header,
// and the header is its own successor.
// Time: amortized O(1)
func increment[V any](n *Node[V]) *Node[V] {
	if n.isHeader() {
		return n
	}
	if n.right != nil {
		return minimum(n.right)
	}
	y := n.parent
	for n == y.right {
		n, y = y, y.parent
	}
	//when n is the root and the maximum, the loop stops at the header with y as the root.
	if n.right != y {
		n = y
	}
	return n
}

// decrement returns the in-order predecessor of n. The predecessor of the header is the maximum.
// Decrementing the minimum is undefined.
// Time: amortized O(1)
func decrement[V any](n *Node[V]) *Node[V] {
	if n.isHeader() {
		return n.right
	}
	if n.left != nil {
		return maximum(n.left)
	}
	y := n.parent
	for n == y.left {
		n, y = y, y.parent
	}
	return y
}

// rotateLeft around x, whose right child takes its place. root is updated when x is the root.
// Time: O(1); Space: O(1)
func rotateLeft[V any](x *Node[V], root **Node[V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x == *root {
		*root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight around x, whose left child takes its place. root is updated when x is the root.
// Time: O(1); Space: O(1)
func rotateRight[V any](x *Node[V], root **Node[V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x == *root {
		*root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}
