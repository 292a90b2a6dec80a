// Package camera provides the view camera and its frustum for visibility queries.
package camera

import (
	"github.com/lowtide/openworld/pkg/math"
)

// Camera holds the per-frame view state consumed by the renderer.
// The world uses a Z-up coordinate system.
type Camera struct {
	// Position is the camera eye in world space.
	Position math.Vec3

	// View is the current view matrix.
	View math.Mat4

	// Projection parameters. Far lives on the Frustum because it changes
	// with the weather every frame.
	FOV    float32 // vertical field of view, radians
	Aspect float32
	Near   float32

	Frustum Frustum
}

// New creates a camera with the given projection parameters.
func New(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		View:   math.Identity(),
	}
	c.Frustum.Far = far
	return c
}

// LookAt positions the camera at eye looking towards target.
func (c *Camera) LookAt(eye, target math.Vec3) {
	c.Position = eye
	c.View = math.LookAt(eye, target, math.Vec3{Z: 1})
}

// Projection returns the current projection matrix.
func (c *Camera) Projection() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Frustum.Far)
}

// UpdateFrustum recomputes the frustum clip planes from the current
// projection and view matrices. Must be called once per frame, after the far
// clip distance is set, before any visibility query.
func (c *Camera) UpdateFrustum() {
	c.Frustum.Update(c.Projection().Mul(c.View))
}
