package filter

// Rect is an axis-aligned rectangle in pixel space, local to this package
// so filters stay decoupled from any particular scene-graph representation.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}
