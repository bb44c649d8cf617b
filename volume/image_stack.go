package volume

import "github.com/funkey/imageprocessing/geom"

// ImageStack holds an ordered sequence of same-sized 2D sections and the
// resolution/offset that place them in world space; its depth is the
// number of sections. It is the natural representation of a volume loaded
// slice-by-slice, e.g. from a directory of section images, before it is
// thresholded into an ExplicitVolume[uint8] mask.
type ImageStack struct {
	DiscreteVolume
	sections []*Slice
}

// NewImageStack returns an empty stack with unit resolution and zero
// offset.
func NewImageStack() *ImageStack {
	return &ImageStack{DiscreteVolume: NewDiscreteVolume()}
}

// Add appends section as the next (highest-Z) slice of the stack.
func (s *ImageStack) Add(section *Slice) {
	s.sections = append(s.sections, section)
	s.MarkDirty()
}

// Len returns the number of sections, i.e. the stack's depth.
func (s *ImageStack) Len() int { return len(s.sections) }

// At returns the i-th section.
func (s *ImageStack) At(i int) *Slice { return s.sections[i] }

func (s *ImageStack) Width() int {
	if len(s.sections) == 0 {
		return 0
	}
	return s.sections[0].Width
}

func (s *ImageStack) Height() int {
	if len(s.sections) == 0 {
		return 0
	}
	return s.sections[0].Height
}

func (s *ImageStack) Depth() int { return len(s.sections) }

// DiscreteBoundingBox returns [0,0,0) to (width,height,depth) in voxel
// coordinates.
func (s *ImageStack) DiscreteBoundingBox() geom.Box3 {
	return geom.NewBox3(geom.Point3{}, geom.Point3{X: s.Width(), Y: s.Height(), Z: s.Depth()})
}

// BoundingBox returns the cached world-space bounding box.
func (s *ImageStack) BoundingBox() geom.FBox3 {
	return s.Volume.BoundingBox(func() geom.FBox3 {
		return s.WorldBoundingBox(s.DiscreteBoundingBox())
	})
}

// Binarize builds an ExplicitVolume[uint8] from the stack: a voxel becomes
// 1 (object) if its section value is strictly greater than threshold, 0
// (background) otherwise. The result inherits the stack's resolution and
// offset.
func (s *ImageStack) Binarize(threshold float64) *ExplicitVolume[uint8] {
	out := NewExplicitVolume[uint8](s.Width(), s.Height(), s.Depth())
	out.SetResolution(s.Resolution())
	out.SetOffset(s.Offset())
	for z := 0; z < s.Depth(); z++ {
		sec := s.At(z)
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if sec.At(x, y) > threshold {
					out.Set(x, y, z, 1)
				}
			}
		}
	}
	return out
}
