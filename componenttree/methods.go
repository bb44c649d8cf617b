package componenttree

import "github.com/funkey/imageprocessing/geom"

// Count returns the number of nodes in the tree.
//
// Complexity: O(N).
func (t *Tree) Count() int {
	if t.root == nil {
		return 0
	}
	return countSubtree(t.root)
}

func countSubtree(n *Node) int {
	count := 1
	for _, c := range n.children {
		count += countSubtree(c)
	}
	return count
}

// BoundingBox returns the union of every node's component's bounding box,
// computing and caching it on first call.
//
// Complexity: O(N) on first call after construction or SetRoot, O(1) after.
func (t *Tree) BoundingBox() geom.Box2 {
	if t.bboxValid {
		return t.bbox
	}
	var bbox geom.Box2
	if t.root != nil {
		bbox = unionSubtree(t.root, bbox)
	}
	t.bbox = bbox
	t.bboxValid = true
	return bbox
}

func unionSubtree(n *Node, bbox geom.Box2) geom.Box2 {
	bbox = bbox.Union(n.Component.BoundingBox())
	for _, c := range n.children {
		bbox = unionSubtree(c, bbox)
	}
	return bbox
}

// Clone returns a new Tree with the same structure as t, sharing the same
// underlying ConnectedComponent values: a shallow, structural copy that
// duplicates nodes but not the components they reference.
//
// Complexity: O(N).
func (t *Tree) Clone() *Tree {
	out := NewTree()
	if t.root != nil {
		out.SetRoot(cloneSubtree(t.root))
	}
	return out
}

func cloneSubtree(n *Node) *Node {
	clone := &Node{Component: n.Component}
	for _, c := range n.children {
		clone.addChild(cloneSubtree(c))
	}
	return clone
}

// Walk performs a depth-first traversal of the tree, calling visit(node)
// for every node in pre-order.
//
// Complexity: O(N).
func (t *Tree) Walk(visit func(*Node)) {
	if t.root != nil {
		walkSubtree(t.root, visit)
	}
}

func walkSubtree(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		walkSubtree(c, visit)
	}
}

// Visitor generalizes Walk with pre/post hooks for both nodes and the
// parent-child edges connecting them. All methods are optional: a Visitor
// that leaves a hook nil simply skips it.
type Visitor struct {
	VisitNode func(n *Node)
	LeaveNode func(n *Node)
	VisitEdge func(parent, child *Node)
	LeaveEdge func(parent, child *Node)
}

// Accept drives v over the tree in depth-first order: VisitNode(n), then
// for each child VisitEdge(n, child), Accept(child), LeaveEdge(n, child),
// finally LeaveNode(n).
//
// Complexity: O(N).
func (t *Tree) Accept(v Visitor) {
	if t.root != nil {
		acceptSubtree(t.root, v)
	}
}

func acceptSubtree(n *Node, v Visitor) {
	if v.VisitNode != nil {
		v.VisitNode(n)
	}
	for _, c := range n.children {
		if v.VisitEdge != nil {
			v.VisitEdge(n, c)
		}
		acceptSubtree(c, v)
		if v.LeaveEdge != nil {
			v.LeaveEdge(n, c)
		}
	}
	if v.LeaveNode != nil {
		v.LeaveNode(n)
	}
}
