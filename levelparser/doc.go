// Package levelparser implements the image level parser: a single sweep
// over a discretized grayscale image that visits, for every threshold
// level and every connected component of the sub-level set at that
// threshold, the component's pixel range exactly once, in an order
// consistent with the component-containment relation (a component is
// finalized only after every component it contains has been finalized).
//
// Parser.fillLevel drives an explicit stack of resumable frames (see
// fillFrame) rather than recursing directly on the host call stack, since
// the recursion depth is bounded only by the number of distinct intensity
// levels between the image's minimum and maximum, which a caller-supplied
// image can make arbitrarily deep.
package levelparser
