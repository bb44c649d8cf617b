// Package componenttree provides Tree, the rooted tree of
// component.ConnectedComponent values produced by an ImageLevelParser
// sweep, plus the Extractor visitor that assembles one while driving the
// parser, and the Pruner/DownSampler tree transforms.
//
// A node's parent is a non-owning back reference, and its children are an
// ordered, tree-owned list. Nodes are addressed directly by pointer rather
// than through an ID-indexed arena: a plain *Node already gets arena-style
// safe sharing from the garbage collector, so a second indirection through
// an ID would add nothing.
package componenttree
