package componenttree

// Prune returns a new Tree, structurally copied from tree (sharing the same
// ConnectedComponent values), with every node whose height exceeds
// maxHeight discarded; that node's own kept children are re-attached
// directly to the output tree's root as siblings, rather than lost along
// with their discarded parent.
//
// Height is computed post-order: a leaf has height 0; an internal node's
// height is 1 + max(height of its kept children). The root itself is
// never discarded, regardless of its own height, since there is no
// shallower root to promote it to.
//
// Complexity: O(N).
func Prune(tree *Tree, maxHeight int) *Tree {
	out := NewTree()
	root := tree.Root()
	if root == nil {
		return out
	}

	newRoot := &Node{Component: root.Component}
	for _, child := range root.Children() {
		clone, _ := pruneNode(child, maxHeight, newRoot)
		if clone != nil {
			newRoot.addChild(clone)
		}
	}
	out.SetRoot(newRoot)

	return out
}

// pruneNode processes n and its subtree. It returns n's clone (nil if n's
// own height exceeds maxHeight, in which case n is discarded and its kept
// children have already been attached directly to root) and n's height.
func pruneNode(n *Node, maxHeight int, root *Node) (*Node, int) {
	height := 0
	var kept []*Node
	for _, child := range n.children {
		clone, childHeight := pruneNode(child, maxHeight, root)
		if clone == nil {
			continue
		}
		kept = append(kept, clone)
		if 1+childHeight > height {
			height = 1 + childHeight
		}
	}

	if height > maxHeight {
		for _, child := range kept {
			root.addChild(child)
		}
		return nil, height
	}

	clone := &Node{Component: n.Component}
	for _, child := range kept {
		clone.addChild(child)
	}
	return clone, height
}
