package skeletons

import (
	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/skeleton"
	"github.com/funkey/imageprocessing/volume"
)

// Skeletons is an id-indexed collection of skeleton.Skeleton values, each
// with a display color, preserving insertion order for iteration.
type Skeletons struct {
	volume.Volume

	byID   map[uint64]*skeleton.Skeleton
	colors map[uint64]int
	ids    []uint64
}

// New returns an empty Skeletons collection.
func New() *Skeletons {
	return &Skeletons{
		byID:   make(map[uint64]*skeleton.Skeleton),
		colors: make(map[uint64]int),
	}
}

// Add inserts or replaces the skeleton stored under id. color is the
// display color to associate with it; if color is negative, id itself is
// used as the color. Adding under an id that already exists is
// replacement: the value and color are overwritten and the id keeps its
// original position in insertion order.
func (s *Skeletons) Add(id uint64, sk *skeleton.Skeleton, color int) {
	if _, exists := s.byID[id]; !exists {
		s.ids = append(s.ids, id)
	}
	s.byID[id] = sk
	if color < 0 {
		color = int(id)
	}
	s.colors[id] = color
	s.MarkDirty()
}

// Remove deletes the skeleton stored under id, if any.
func (s *Skeletons) Remove(id uint64) {
	if _, exists := s.byID[id]; !exists {
		return
	}
	delete(s.byID, id)
	delete(s.colors, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	s.MarkDirty()
}

// Get returns the skeleton stored under id, and whether it was found.
func (s *Skeletons) Get(id uint64) (*skeleton.Skeleton, bool) {
	sk, ok := s.byID[id]
	return sk, ok
}

// Color returns the display color associated with id, and whether id is
// present.
func (s *Skeletons) Color(id uint64) (int, bool) {
	c, ok := s.colors[id]
	return c, ok
}

// Contains reports whether id is present in the collection.
func (s *Skeletons) Contains(id uint64) bool {
	_, ok := s.byID[id]
	return ok
}

// Ids returns the stored ids, in the order they were first added.
func (s *Skeletons) Ids() []uint64 {
	return s.ids
}

// Size returns the number of skeletons stored.
func (s *Skeletons) Size() int {
	return len(s.byID)
}

// Clear removes every stored skeleton.
func (s *Skeletons) Clear() {
	s.byID = make(map[uint64]*skeleton.Skeleton)
	s.colors = make(map[uint64]int)
	s.ids = nil
	s.MarkDirty()
}

// BoundingBox returns the cached union of every stored skeleton's
// bounding box.
func (s *Skeletons) BoundingBox() geom.FBox3 {
	return s.Volume.BoundingBox(func() geom.FBox3 {
		var bb geom.FBox3
		for _, id := range s.ids {
			bb = bb.Union(s.byID[id].BoundingBox())
		}
		return bb
	})
}
