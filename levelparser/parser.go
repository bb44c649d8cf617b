package levelparser

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/pixellist"
)

const (
	dirLeft = iota
	dirUp
	dirRight
	dirDown
)

// maxValue returns the largest value representable by P.
func maxValue[P Precision]() P {
	return ^P(0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type componentBegin struct {
	level int
	begin int
}

// Parser sweeps a discretized image, level by level, invoking a Visitor
// with the pixel range of every connected component at every threshold.
// A Parser is single-use: construct one with New, call Parse once.
type Parser[P Precision] struct {
	params Parameters

	width, height int
	discretized   []P
	visitedArr    []bool

	pixelList          *pixellist.PixelList
	condensedPixelList *pixellist.PixelList

	boundary [][]geom.Point2

	begins          []componentBegin
	condensedBegins []componentBegin

	current      geom.Point2
	currentLevel int

	min, max float64
}

// New discretizes img according to params and returns a Parser ready to
// be driven by Parse. Returns ErrInvalidInput for a zero-size image or
// explicit min/max bounds with min > max, or if the resulting intensity
// range does not fit in P.
func New[P Precision](img *Image, params Parameters) (*Parser[P], error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: image has zero size", ErrInvalidInput)
	}
	autoScan := params.MinIntensity == 0 && params.MaxIntensity == 0
	if !autoScan && params.MinIntensity > params.MaxIntensity {
		return nil, fmt.Errorf("%w: min_intensity %g > max_intensity %g", ErrInvalidInput, params.MinIntensity, params.MaxIntensity)
	}

	pmax := int(maxValue[P]())

	p := &Parser[P]{
		params:     params,
		width:      img.Width,
		height:     img.Height,
		discretized: make([]P, img.Width*img.Height),
		visitedArr: make([]bool, img.Width*img.Height),
		pixelList:  pixellist.New(img.Width * img.Height),
		boundary:   make([][]geom.Point2, pmax+1),
	}
	if params.SpacedEdgeImage {
		p.condensedPixelList = pixellist.New((img.Width * img.Height) / 4)
	}

	if err := p.discretize(img, autoScan); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser[P]) discretize(img *Image, autoScan bool) error {
	if autoScan {
		p.min, p.max = floats.Min(img.Pixels), floats.Max(img.Pixels)
	} else {
		p.min, p.max = p.params.MinIntensity, p.params.MaxIntensity
	}
	if p.max-p.min == 0 {
		p.min, p.max = 0, 1
	}

	pmaxF := float64(maxValue[P]())
	if p.max-p.min > pmaxF {
		return fmt.Errorf("%w: intensity range %g does not fit in precision (max %g)", ErrInvalidInput, p.max-p.min, pmaxF)
	}

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			v := img.At(x, y)
			var d float64
			if p.params.DarkToBright {
				d = (v - p.min) / (p.max - p.min) * pmaxF
			} else {
				d = pmaxF - (v-p.min)/(p.max-p.min)*pmaxF
			}
			d = clamp(d, 0, pmaxF)
			p.discretized[y*p.width+x] = P(d)
		}
	}
	return nil
}

// originalValue maps a discretized level back to the image's original
// intensity domain, inverting the discretization formula in New.
func (p *Parser[P]) originalValue(level int) float64 {
	pmaxF := float64(maxValue[P]())
	if p.params.DarkToBright {
		return (float64(level)/pmaxF)*(p.max-p.min) + p.min
	}
	return (float64(int(maxValue[P]())-level)/pmaxF)*(p.max-p.min) + p.min
}

// Parse drives the sweep, invoking visitor's callbacks, and returns once
// every level of every component has been visited. A Parser is single-use;
// calling Parse more than once produces undefined results.
func (p *Parser[P]) Parse(visitor Visitor) error {
	if p.params.SpacedEdgeImage {
		visitor.SetPixelList(p.condensedPixelList)
	} else {
		visitor.SetPixelList(p.pixelList)
	}

	pmax := int(maxValue[P]())
	p.currentLevel = pmax + 1

	if err := p.gotoLocation(geom.Point2{}, visitor); err != nil {
		return err
	}

	for {
		if err := p.fillLevel(visitor); err != nil {
			return err
		}
		more, err := p.gotoHigherLevel(visitor)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// fillFrame is one suspended invocation of fillLevel's recursive descent:
// dir is the next of the four neighbor directions still to be examined at
// the frame's position, and descending/savedPos record a pending "descend
// to a lower level, then come back here" step, equivalent to
// `while (gotoLowerLevel(...)) fillLevel(...); gotoLocation(saved)`.
type fillFrame struct {
	targetLevel int
	dir         int
	descending  bool
	savedPos    geom.Point2
}

// fillLevel fills every pixel reachable from the current position that
// belongs to the current level's connected component, descending into and
// fully exhausting any lower-level regions discovered along the way
// before returning to fill the rest of the current level. The recursive
// descent is expressed as an explicit stack of fillFrame values rather
// than direct recursion, per the package doc.
func (p *Parser[P]) fillLevel(visitor Visitor) error {
	stack := []*fillFrame{{targetLevel: p.currentLevel}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.descending {
			lower, err := p.gotoLowerLevel(f.targetLevel, visitor)
			if err != nil {
				return err
			}
			if lower {
				stack = append(stack, &fillFrame{targetLevel: p.currentLevel})
				continue
			}
			if err := p.gotoLocation(f.savedPos, visitor); err != nil {
				return err
			}
			f.descending = false
		}

		if f.dir < 4 {
			dir := f.dir
			f.dir++

			loc, lvl, ok := p.findNeighbor(dir)
			if !ok {
				continue
			}
			ilvl := int(lvl)
			p.pushBoundary(loc, ilvl)

			if ilvl < f.targetLevel {
				f.savedPos = p.current
				lower, err := p.gotoLowerLevel(f.targetLevel, visitor)
				if err != nil {
					return err
				}
				if lower {
					f.descending = true
					stack = append(stack, &fillFrame{targetLevel: p.currentLevel})
				}
			}
			continue
		}

		// Neighbor scan exhausted for this frame's current position; find
		// the next unvisited boundary location still at this level.
		advanced := false
		for {
			loc, ok := p.popBoundary(f.targetLevel)
			if !ok {
				break
			}
			if p.visitedAt(loc) {
				continue
			}
			if err := p.gotoLocation(loc, visitor); err != nil {
				return err
			}
			f.dir = 0
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// gotoHigherLevel finds the lowest unvisited boundary location strictly
// above the current level and moves there, closing every component
// crossed on the way. If none exists, every remaining open component
// (through the precision's maximum level) is closed and false is
// returned.
func (p *Parser[P]) gotoHigherLevel(visitor Visitor) (bool, error) {
	pmax := int(maxValue[P]())

	for {
		loc, _, ok := p.popHigherBoundaryLocation(p.currentLevel, pmax)
		if !ok {
			break
		}
		if p.visitedAt(loc) {
			continue
		}
		if err := p.gotoLocation(loc, visitor); err != nil {
			return false, err
		}
		return true, nil
	}

	for level := p.currentLevel; ; level++ {
		p.endComponent(level, visitor)
		if level == pmax {
			return false, nil
		}
	}
}

// gotoLowerLevel finds the lowest unvisited boundary location strictly
// below referenceLevel and moves there, opening one component per
// descended level. Returns false if no such location exists.
func (p *Parser[P]) gotoLowerLevel(referenceLevel int, visitor Visitor) (bool, error) {
	for {
		loc, _, ok := p.popLowestBoundaryLocation(referenceLevel)
		if !ok {
			return false, nil
		}
		if p.visitedAt(loc) {
			continue
		}
		if err := p.gotoLocation(loc, visitor); err != nil {
			return false, err
		}
		return true, nil
	}
}

// gotoLocation moves the current position to loc, opening or closing one
// component per level crossed, then records loc as visited (adding it to
// the pixel list, and the condensed list too if it falls on an even
// spaced-edge coordinate) the first time it is reached.
func (p *Parser[P]) gotoLocation(loc geom.Point2, visitor Visitor) error {
	newLevel := int(p.discretized[p.idx(loc)])

	if p.currentLevel > newLevel {
		for level := p.currentLevel - 1; ; level-- {
			p.beginComponent(level, visitor)
			if level == newLevel {
				break
			}
		}
	} else if p.currentLevel < newLevel {
		for level := p.currentLevel; ; level++ {
			p.endComponent(level, visitor)
			if level == newLevel-1 {
				break
			}
		}
	}

	p.current = loc
	p.currentLevel = newLevel

	if !p.visitedAt(loc) {
		p.visitedArr[p.idx(loc)] = true

		if p.params.SpacedEdgeImage && loc.X%2 == 0 && loc.Y%2 == 0 {
			if _, err := p.condensedPixelList.Add(geom.Point2{X: loc.X / 2, Y: loc.Y / 2}); err != nil {
				return err
			}
		}
		if _, err := p.pixelList.Add(loc); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser[P]) beginComponent(level int, visitor Visitor) {
	p.begins = append(p.begins, componentBegin{level: level, begin: p.pixelList.Len()})
	if p.params.SpacedEdgeImage {
		p.condensedBegins = append(p.condensedBegins, componentBegin{level: level, begin: p.condensedPixelList.Len()})
	}
	visitor.NewChildComponent(p.originalValue(level))
}

func (p *Parser[P]) endComponent(level int, visitor Visitor) {
	n := len(p.begins) - 1
	cb := p.begins[n]
	p.begins = p.begins[:n]

	end := p.pixelList.Len()

	if p.params.SpacedEdgeImage {
		cn := len(p.condensedBegins) - 1
		cb = p.condensedBegins[cn]
		p.condensedBegins = p.condensedBegins[:cn]
		end = p.condensedPixelList.Len()
	}

	visitor.FinalizeComponent(p.originalValue(cb.level), pixellist.Range{Begin: cb.begin, End: end})
}

func (p *Parser[P]) idx(pt geom.Point2) int {
	return pt.Y*p.width + pt.X
}

func (p *Parser[P]) visitedAt(pt geom.Point2) bool {
	return p.visitedArr[p.idx(pt)]
}

func (p *Parser[P]) findNeighbor(dir int) (geom.Point2, P, bool) {
	loc := p.current
	switch dir {
	case dirLeft:
		if loc.X == 0 {
			return geom.Point2{}, 0, false
		}
		loc.X--
	case dirUp:
		if loc.Y == 0 {
			return geom.Point2{}, 0, false
		}
		loc.Y--
	case dirRight:
		loc.X++
	case dirDown:
		loc.Y++
	}

	if loc.X >= p.width || loc.Y >= p.height {
		return geom.Point2{}, 0, false
	}
	if p.visitedAt(loc) {
		return geom.Point2{}, 0, false
	}

	return loc, p.discretized[p.idx(loc)], true
}

func (p *Parser[P]) pushBoundary(loc geom.Point2, level int) {
	p.boundary[level] = append(p.boundary[level], loc)
}

func (p *Parser[P]) popBoundary(level int) (geom.Point2, bool) {
	stack := p.boundary[level]
	if len(stack) == 0 {
		return geom.Point2{}, false
	}
	n := len(stack) - 1
	loc := stack[n]
	p.boundary[level] = stack[:n]
	return loc, true
}

func (p *Parser[P]) popLowestBoundaryLocation(level int) (geom.Point2, int, bool) {
	for l := 0; l < level; l++ {
		if loc, ok := p.popBoundary(l); ok {
			return loc, l, true
		}
	}
	return geom.Point2{}, 0, false
}

func (p *Parser[P]) popHigherBoundaryLocation(level, pmax int) (geom.Point2, int, bool) {
	if level == pmax {
		return geom.Point2{}, 0, false
	}
	for l := level + 1; l <= pmax; l++ {
		if loc, ok := p.popBoundary(l); ok {
			return loc, l, true
		}
	}
	return geom.Point2{}, 0, false
}
