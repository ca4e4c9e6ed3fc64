package Trees

// insertFixup restores the red-black properties after x was attached as a leaf.
// x is colored red; if its parent is red too, the violation is either pushed up by recoloring
// (red uncle) or resolved by at most two rotations (black or missing uncle).
// Time: O(log n)
func insertFixup[V any](x *Node[V], root **Node[V]) {
	x.color = red
	for x != *root && x.parent.color == red {
		xp := x.parent
		g := xp.parent
		if xp == g.left {
			if y := g.right; y != nil && y.color == red {
				xp.color, y.color, g.color = black, black, red
				x = g
			} else {
				if x == xp.right {
					x = xp
					rotateLeft(x, root)
				}
				x.parent.color = black
				x.parent.parent.color = red
				rotateRight(x.parent.parent, root)
			}
		} else {
			if y := g.left; y != nil && y.color == red {
				xp.color, y.color, g.color = black, black, red
				x = g
			} else {
				if x == xp.left {
					x = xp
					rotateRight(x, root)
				}
				x.parent.color = black
				x.parent.parent.color = red
				rotateLeft(x.parent.parent, root)
			}
		}
	}
	(*root).color = black
}

// eraseRebalance unlinks y, which has at most one child, from the tree anchored at header h,
// keeps the cached minimum and maximum up to date, and restores the red-black properties.
func eraseRebalance[V any](y, h *Node[V]) {
	root := &h.parent
	x := y.left
	if x == nil {
		x = y.right
	}
	xp := y.parent
	if x != nil {
		x.parent = xp
	}
	if y == *root {
		*root = x
	} else if y == xp.left {
		xp.left = x
	} else {
		xp.right = x
	}
	//y can't have a left child when it's the minimum, nor a right child when it's the maximum.
	if h.left == y {
		if x == nil {
			h.left = xp
		} else {
			h.left = minimum(x)
		}
	}
	if h.right == y {
		if x == nil {
			h.right = xp
		} else {
			h.right = maximum(x)
		}
	}
	if y.color == black {
		eraseFixup(x, xp, root)
	}
}

// eraseFixup restores the black height after a black node was removed above x. x may be nil,
// so its parent xp is tracked separately. A red x simply absorbs the missing black.
// Time: O(log n), with at most three rotations.
func eraseFixup[V any](x, xp *Node[V], root **Node[V]) {
	for x != *root && isBlack(x) {
		if x == xp.left {
			w := xp.right
			if w.color == red {
				w.color, xp.color = black, red
				rotateLeft(xp, root)
				w = xp.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x, xp = xp, xp.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color, w.color = black, red
				rotateRight(w, root)
				w = xp.right
			}
			w.color, xp.color = xp.color, black
			if w.right != nil {
				w.right.color = black
			}
			rotateLeft(xp, root)
			break
		} else {
			w := xp.left
			if w.color == red {
				w.color, xp.color = black, red
				rotateRight(xp, root)
				w = xp.left
			}
			if isBlack(w.right) && isBlack(w.left) {
				w.color = red
				x, xp = xp, xp.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color, w.color = black, red
				rotateLeft(w, root)
				w = xp.left
			}
			w.color, xp.color = xp.color, black
			if w.left != nil {
				w.left.color = black
			}
			rotateRight(xp, root)
			break
		}
	}
	if x != nil {
		x.color = black
	}
}
