// Package pixellist provides an append-only pixel buffer shared by every
// ConnectedComponent produced while parsing one image.
//
// A range already handed out as [begin, end) stays valid as more pixels
// are appended by later components — later appends only move the cursor
// forward, they never reallocate or mutate earlier slots. This is a slice
// pre-allocated to its final capacity via make([]geom.Point2, 0, cap):
// since append never reallocates while len <= cap, an index range taken
// from the slice earlier remains a valid, stable view after later
// appends.
package pixellist
