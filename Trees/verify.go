package Trees

import (
	"fmt"

	"github.com/g-m-twostay/go-stl/Queues"
)

// CorruptionError describes the first violated property found by Verify.
type CorruptionError struct {
	Property string
	Detail   string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("corrupt tree: %s: %s", e.Property, e.Detail)
}

func corrupt(property, format string, args ...any) *CorruptionError {
	return &CorruptionError{property, fmt.Sprintf(format, args...)}
}

// Verify checks the red-black properties, the links between nodes, the order of the keys, the
// header's cached minimum and maximum and the element count. It returns a *CorruptionError for
// the first violation found.
// Time: O(n)
func (u *RBTree[K, V]) Verify() error {
	h := u.header
	if h.color != red {
		return corrupt("header", "header isn't red")
	}
	root := h.parent
	if root == nil {
		if h.left != h || h.right != h {
			return corrupt("header", "empty tree must have header as its minimum and maximum")
		}
		if u.count != 0 {
			return corrupt("count", "empty tree has count %d", u.count)
		}
		return nil
	}
	if root.parent != h {
		return corrupt("links", "root's parent isn't the header")
	}
	if root.color != black {
		return corrupt("root", "root is red")
	}
	n, _, err := u.verify(root)
	if err != nil {
		return err
	}
	if n != u.count {
		return corrupt("count", "tree has %d nodes but count is %d", n, u.count)
	}
	if h.left != minimum(root) {
		return corrupt("header", "cached minimum is stale")
	}
	if h.right != maximum(root) {
		return corrupt("header", "cached maximum is stale")
	}
	//order is checked through the iterators, which also exercises increment.
	prev := u.Begin()
	for it := prev.Next(); it.n != h; prev, it = it, it.Next() {
		if u.ord.Less(u.key(it.n), u.key(prev.n)) {
			return corrupt("order", "%v is before %v", prev.n.v, it.n.v)
		}
	}
	return nil
}

// verify the subtree at x, returning its node count and black height. Recursive.
func (u *RBTree[K, V]) verify(x *Node[V]) (n, bh int, err error) {
	if x == nil {
		return 0, 1, nil
	}
	if x.color == red && (!isBlack(x.left) || !isBlack(x.right)) {
		return 0, 0, corrupt("red", "red node %v has a red child", x.v)
	}
	for _, c := range [2]*Node[V]{x.left, x.right} {
		if c != nil && c.parent != x {
			return 0, 0, corrupt("links", "child %v of %v doesn't link back", c.v, x.v)
		}
	}
	ln, lbh, err := u.verify(x.left)
	if err != nil {
		return 0, 0, err
	}
	rn, rbh, err := u.verify(x.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, corrupt("black height", "subtrees of %v have black heights %d and %d", x.v, lbh, rbh)
	}
	if x.color == black {
		lbh++
	}
	return ln + rn + 1, lbh, nil
}

// Corrupt [Tree.Corrupt]
func (u *RBTree[K, V]) Corrupt() bool {
	return u.Verify() != nil
}

// BlackHeight is the number of black nodes on any path from the root down, 0 when empty.
// Time: O(log n)
func (u *RBTree[K, V]) BlackHeight() int {
	n := 0
	for x := u.header.parent; x != nil; x = x.left {
		if x.color == black {
			n++
		}
	}
	return n
}

// Height is the number of nodes on the longest path from the root down. Recursive.
// Time: O(n)
func (u *RBTree[K, V]) Height() int {
	var height func(*Node[V]) int
	height = func(x *Node[V]) int {
		if x == nil {
			return 0
		}
		return max(height(x.left), height(x.right)) + 1
	}
	return height(u.header.parent)
}

type levelItem[V any] struct {
	n     *Node[V]
	depth int
}

// LevelOrder calls f on each value breadth first, with its depth (the root is 0) and color,
// until f returns false.
// Time: O(n); Space: O(width)
func (u *RBTree[K, V]) LevelOrder(f func(depth int, v *V, isRed bool) bool) {
	if u.header.parent == nil {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[V]](uint(u.count/2 + 1))
	q.Push(levelItem[V]{u.header.parent, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.depth, &it.n.v, it.n.color == red) {
			return
		}
		if it.n.left != nil {
			q.Push(levelItem[V]{it.n.left, it.depth + 1})
		}
		if it.n.right != nil {
			q.Push(levelItem[V]{it.n.right, it.depth + 1})
		}
	}
}
