package componenttree

import (
	"github.com/funkey/imageprocessing/component"
	"github.com/funkey/imageprocessing/levelparser"
	"github.com/funkey/imageprocessing/pixellist"
)

// ExtractorParams filters which levelparser-reported components become
// tree nodes.
type ExtractorParams struct {
	// MinSize rejects components smaller than this many pixels. Zero
	// means no minimum.
	MinSize int

	// MaxSize rejects components with this many pixels or more. Zero
	// means unbounded.
	MaxSize int
}

// DefaultExtractorParams returns MinSize 0, MaxSize unbounded.
func DefaultExtractorParams() ExtractorParams {
	return ExtractorParams{}
}

// Extractor implements levelparser.Visitor, assembling a Tree from the
// finalized components of one parser sweep. Construct one with NewExtractor,
// drive it with a levelparser.Parser's Parse method, then read the result
// with Tree.
//
// Each finalized component becomes the parent of every currently open root
// node whose pixel range it contains, then itself becomes a root; the one
// root left standing once parsing ends is the tree's root.
type Extractor struct {
	params    ExtractorParams
	imageSize int

	list *pixellist.PixelList

	haveLast  bool
	lastRange pixellist.Range

	// roots holds the currently open top-level nodes, i.e. nodes not yet
	// known to be any other node's child. A finalized component becomes
	// the parent of every root whose range it contains, then itself
	// becomes a (the, once parsing ends) root.
	roots []*Node
}

// NewExtractor returns an Extractor for an image of imageSize total pixels
// (the length of the list a levelparser.Parser will report ranges into —
// use the spaced-edge condensed count when parsing a spaced-edge image).
func NewExtractor(imageSize int, params ExtractorParams) *Extractor {
	return &Extractor{params: params, imageSize: imageSize}
}

// SetPixelList implements levelparser.Visitor.
func (e *Extractor) SetPixelList(list *pixellist.PixelList) {
	e.list = list
}

// NewChildComponent implements levelparser.Visitor. Tree assembly happens
// entirely in FinalizeComponent, once a component's full pixel range is
// known, so descent notifications need no action here.
func (e *Extractor) NewChildComponent(value float64) {}

// FinalizeComponent implements levelparser.Visitor.
func (e *Extractor) FinalizeComponent(value float64, rng pixellist.Range) {
	if e.haveLast && rng == e.lastRange {
		// This level added no new pixels over the previous one.
		return
	}
	e.lastRange = rng
	e.haveLast = true

	size := rng.Len()
	wholeImage := size == e.imageSize
	inSizeRange := size >= e.params.MinSize && (e.params.MaxSize == 0 || size < e.params.MaxSize)
	if !inSizeRange && !wholeImage {
		return
	}

	node := &Node{Component: component.New(e.list, rng, float32(value))}

	kept := e.roots[:0]
	for _, r := range e.roots {
		if rangeContains(rng, r.Component.Range()) {
			node.addChild(r)
		} else {
			kept = append(kept, r)
		}
	}
	e.roots = append(kept, node)
}

// Tree returns the assembled tree. Call only after the driving parser's
// Parse has returned; the single remaining open root becomes the tree's
// root.
func (e *Extractor) Tree() *Tree {
	t := NewTree()
	if len(e.roots) > 0 {
		t.SetRoot(e.roots[len(e.roots)-1])
	}
	return t
}

func rangeContains(outer, inner pixellist.Range) bool {
	return inner.Begin >= outer.Begin && inner.End <= outer.End
}

// PreprocessSameIntensity implements same-intensity component mode: any
// pixel whose right or down neighbor is non-zero and differs in value is
// zeroed, which breaks the level sweep's fill step at every intensity
// boundary so the resulting tree contains only flat, same-intensity region
// nodes. Mutates img in place; callers that need the original should pass a
// copy.
func PreprocessSameIntensity(img *levelparser.Image) {
	out := make([]float64, len(img.Pixels))
	copy(out, img.Pixels)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v := img.At(x, y)
			if v == 0 {
				continue
			}
			if x+1 < img.Width {
				r := img.At(x+1, y)
				if r != 0 && r != v {
					out[y*img.Width+x] = 0
					continue
				}
			}
			if y+1 < img.Height {
				d := img.At(x, y+1)
				if d != 0 && d != v {
					out[y*img.Width+x] = 0
				}
			}
		}
	}

	copy(img.Pixels, out)
}
