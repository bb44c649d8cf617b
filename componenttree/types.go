package componenttree

import (
	"github.com/funkey/imageprocessing/component"
	"github.com/funkey/imageprocessing/geom"
)

// Node is one node of a Tree: a ConnectedComponent plus its position in
// the tree. parent is a non-owning back reference; children are owned by
// the node and ordered by insertion.
type Node struct {
	Component *component.ConnectedComponent

	parent   *Node
	children []*Node
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// addChild appends child to n's children and sets child's parent to n.
func (n *Node) addChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Tree is a rooted tree of Nodes, owning every Node reachable from its
// root. The bounding box is the union of every node's component's bounding
// box, computed lazily and cached — the one place this package follows
// volume.Volume's lazy-cache idiom rather than component.ConnectedComponent's
// compute-eagerly one, because a Tree's root can be replaced after
// construction (Pruner, DownSampler each build a new Tree from an existing
// one's nodes) whereas a ConnectedComponent never mutates once built.
type Tree struct {
	root *Node

	bbox      geom.Box2
	bboxValid bool
}

// NewTree returns an empty Tree with no root.
func NewTree() *Tree {
	return &Tree{}
}

// SetRoot replaces the tree's root and invalidates the cached bounding box.
func (t *Tree) SetRoot(root *Node) {
	t.root = root
	t.bboxValid = false
}

// Root returns the tree's root, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}
