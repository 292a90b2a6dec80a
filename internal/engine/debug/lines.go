// Package debug provides helpers for visualizing scene state as line
// geometry, e.g. path networks and object markers.
package debug

import (
	"github.com/lowtide/openworld/pkg/math"
)

// LineSet accumulates world-space line segments for one draw. Callers own
// the set and follow a clear-before-fill contract: Reset, fill, draw. No
// state is carried across frames.
type LineSet struct {
	verts []float32
}

// AddLine appends one segment from a to b.
func (s *LineSet) AddLine(a, b math.Vec3) {
	s.verts = append(s.verts,
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
	)
}

// AddMarker appends a vertical tick of the given height rising from p.
func (s *LineSet) AddMarker(p math.Vec3, height float32) {
	s.AddLine(p, math.Vec3{X: p.X, Y: p.Y, Z: p.Z + height})
}

// Vertices returns the packed XYZ vertex positions, two per segment.
// The slice is valid until the next AddLine, AddMarker or Reset.
func (s *LineSet) Vertices() []float32 {
	return s.verts
}

// Reset empties the set, keeping its capacity.
func (s *LineSet) Reset() {
	s.verts = s.verts[:0]
}

// Empty reports whether the set holds no segments.
func (s *LineSet) Empty() bool {
	return len(s.verts) == 0
}
