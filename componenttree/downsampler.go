package componenttree

// DownSample returns a new Tree with every maximal chain of unary internal
// nodes collapsed to its last node (the node at which real branching, or a
// leaf, resumes). The root is always preserved as-is, even if it has
// exactly one child — only chains strictly below the root are collapsed.
// A node is walked forward while it has exactly one child, and the
// resulting clone takes the component of the chain's end, not its start,
// so a chain a -> b -> c collapses to a single node carrying c's component.
//
// Complexity: O(N).
func DownSample(tree *Tree) *Tree {
	out := NewTree()
	root := tree.Root()
	if root == nil {
		return out
	}

	newRoot := &Node{Component: root.Component}
	for _, child := range root.Children() {
		newRoot.addChild(downsampleNode(child))
	}
	out.SetRoot(newRoot)

	return out
}

func downsampleNode(n *Node) *Node {
	cur := n
	for len(cur.children) == 1 {
		cur = cur.children[0]
	}

	clone := &Node{Component: cur.Component}
	for _, child := range cur.children {
		clone.addChild(downsampleNode(child))
	}
	return clone
}
