package graphvolume

import (
	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/graph"
	"github.com/funkey/imageprocessing/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// NumNeighbors is the size of the 26-voxel neighborhood a fully interior
// node connects to. A node with fewer incident edges than NumNeighbors has
// at least one empty or out-of-volume neighbor, and is therefore a
// boundary node.
const NumNeighbors = 26

// neighborOffsets lists the 26 neighbor directions of a voxel (every
// combination of -1/0/1 on each axis except (0,0,0)).
var neighborOffsets = func() []geom.Point3 {
	offsets := make([]geom.Point3, 0, NumNeighbors)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, geom.Point3{X: dx, Y: dy, Z: dz})
			}
		}
	}
	return offsets
}()

// GraphVolume is a graph of a binary volume's non-zero voxels, with each
// node's discrete voxel position recorded alongside it.
type GraphVolume struct {
	volume.DiscreteVolume

	graph     *graph.Graph
	positions []geom.Point3
	size      geom.Point3 // shape of the source volume, not the node bounding box
}

// FromExplicitVolume builds a GraphVolume from every non-zero voxel of v
// and the 26-neighborhood edges between them, inheriting v's resolution
// and offset.
func FromExplicitVolume[T volume.Numeric](v *volume.ExplicitVolume[T]) *GraphVolume {
	width, height, depth := v.Width(), v.Height(), v.Depth()

	nodeAt := make([]int, width*height*depth)
	for i := range nodeAt {
		nodeAt[i] = -1
	}
	index := func(x, y, z int) int { return z*width*height + y*width + x }

	var positions []geom.Point3
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if v.At(x, y, z) == 0 {
					continue
				}
				nodeAt[index(x, y, z)] = len(positions)
				positions = append(positions, geom.Point3{X: x, Y: y, Z: z})
			}
		}
	}

	g := graph.NewGraph(len(positions))
	for id, p := range positions {
		for _, off := range neighborOffsets {
			np := p.Add(off)
			if np.X < 0 || np.X >= width || np.Y < 0 || np.Y >= height || np.Z < 0 || np.Z >= depth {
				continue
			}
			neighborID := nodeAt[index(np.X, np.Y, np.Z)]
			if neighborID <= id {
				// either empty, or already linked from the other end
				continue
			}
			if _, err := g.AddEdge(graph.Node(id), graph.Node(neighborID), 1); err != nil {
				panic(err) // unreachable: ids are distinct and in range by construction
			}
		}
	}

	gv := &GraphVolume{
		DiscreteVolume: volume.NewDiscreteVolume(),
		graph:          g,
		positions:      positions,
		size:           geom.Point3{X: width, Y: height, Z: depth},
	}
	gv.SetResolution(v.Resolution())
	gv.SetOffset(v.Offset())
	return gv
}

// Graph returns the underlying node/edge graph.
func (gv *GraphVolume) Graph() *graph.Graph { return gv.graph }

// NumNodes returns the number of non-zero voxels the graph was built from.
func (gv *GraphVolume) NumNodes() int { return len(gv.positions) }

// Position returns the discrete voxel coordinate of node n.
func (gv *GraphVolume) Position(n graph.Node) geom.Point3 { return gv.positions[n] }

// WorldPosition returns the world-space position of node n.
func (gv *GraphVolume) WorldPosition(n graph.Node) r3.Vec {
	return gv.DiscreteToWorld(gv.positions[n])
}

// Width, Height, Depth return the shape of the volume the graph was built
// from, not the (possibly tighter) bounding box of its nodes.
func (gv *GraphVolume) Width() int  { return gv.size.X }
func (gv *GraphVolume) Height() int { return gv.size.Y }
func (gv *GraphVolume) Depth() int  { return gv.size.Z }

// DiscreteBoundingBox returns the tight bounding box of the graph's node
// positions, which may be smaller than the source volume's shape.
func (gv *GraphVolume) DiscreteBoundingBox() geom.Box3 {
	var bb geom.Box3
	for _, p := range gv.positions {
		bb = bb.Fit(p)
	}
	return bb
}

// BoundingBox returns the cached world-space bounding box of the graph's
// node positions.
func (gv *GraphVolume) BoundingBox() geom.FBox3 {
	return gv.Volume.BoundingBox(func() geom.FBox3 {
		return gv.WorldBoundingBox(gv.DiscreteBoundingBox())
	})
}

// IsBoundary reports whether node n has fewer than NumNeighbors incident
// edges, i.e. at least one of its 26 neighboring voxels is empty or
// outside the source volume.
func (gv *GraphVolume) IsBoundary(n graph.Node) bool {
	degree, err := gv.graph.Degree(n)
	if err != nil {
		panic(err) // unreachable: n came from this graph
	}
	return degree < NumNeighbors
}
