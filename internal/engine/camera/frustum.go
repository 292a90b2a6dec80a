package camera

import (
	"github.com/lowtide/openworld/pkg/math"
)

// Plane is a half-space ax + by + cz + d = 0 whose normal points inside
// the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// Distance returns the signed distance from a point to the plane.
// Positive means inside the half-space.
func (p Plane) Distance(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of the view volume.
// Update recomputes the planes; it is not safe against concurrent queries.
type Frustum struct {
	// Far is the far clip distance. Weather-dependent; set before Update.
	Far float32

	planes [6]Plane
}

// Update extracts the six clip planes from a projection*view matrix
// (Gribb/Hartmann). Planes are normalized so Distance returns world units.
func (f *Frustum) Update(viewProj math.Mat4) {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	f.planes[0] = normalizePlane(r3.X+r0.X, r3.Y+r0.Y, r3.Z+r0.Z, r3.W+r0.W) // left
	f.planes[1] = normalizePlane(r3.X-r0.X, r3.Y-r0.Y, r3.Z-r0.Z, r3.W-r0.W) // right
	f.planes[2] = normalizePlane(r3.X+r1.X, r3.Y+r1.Y, r3.Z+r1.Z, r3.W+r1.W) // bottom
	f.planes[3] = normalizePlane(r3.X-r1.X, r3.Y-r1.Y, r3.Z-r1.Z, r3.W-r1.W) // top
	f.planes[4] = normalizePlane(r3.X+r2.X, r3.Y+r2.Y, r3.Z+r2.Z, r3.W+r2.W) // near
	f.planes[5] = normalizePlane(r3.X-r2.X, r3.Y-r2.Y, r3.Z-r2.Z, r3.W-r2.W) // far
}

// IntersectsSphere reports whether any part of the world-space sphere lies
// within the view volume. False means the sphere is provably fully outside.
func (f *Frustum) IntersectsSphere(center math.Vec3, radius float32) bool {
	for i := range f.planes {
		if f.planes[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

func normalizePlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}
