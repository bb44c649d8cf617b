// Package component provides ConnectedComponent, an immutable view of a
// contiguous pixel range inside a shared pixellist.PixelList, plus its
// derived bounding box, center, and bitmap.
//
// The bounding box, center, and bitmap are all computed once, in one pass
// over the pixel range, when the component is created — never lazily,
// unlike volume.Volume's bounding box — because a ConnectedComponent never
// mutates after creation, so there is nothing for a cache to ever
// invalidate.
package component
