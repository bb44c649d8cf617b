// Package imageprocessing is a deterministic image- and volume-analysis
// toolkit built around two independent subsystems:
//
//	levelparser/, component/, pixellist/, componenttree/ — a linear-time
//	image level parser that sweeps a grayscale image once and reports its
//	connected components at every possible threshold, assembled into a
//	containment tree by componenttree.Extractor.
//
//	volume/, graphvolume/, skeleton/, skeletonize/, skeletons/ — a
//	TEASAR-style skeletonizer that turns a binary 3D volume into a
//	graph of its non-zero voxels and extracts a tree-structured medial
//	skeleton from it via repeated shortest-path segment extraction.
//
// graph/ and dijkstra/ are the shared graph and shortest-path machinery
// both subsystems build on. geom/ supplies the integer and float 2D/3D
// point and bounding-box types used throughout.
package imageprocessing
