// Package world holds the scene state the renderer traverses each frame:
// object collections, the game clock, the weather table, and the water grids.
//
// The renderer borrows object references for the duration of one frame; it
// never owns or mutates them. Physics and animation are external collaborators
// reached through the interfaces below.
package world

import (
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/pkg/math"
)

// Animator evaluates blended local transforms for animated frames.
// alpha is the interpolation fraction between the last two simulation ticks;
// fixed disables interpolation for objects whose pose is frozen.
type Animator interface {
	FrameTransform(frame int, alpha float32, fixed bool) math.Mat4
}

// PhysicsBody supplies a world transform for physics-driven instances.
type PhysicsBody interface {
	WorldTransform() math.Mat4
}

// VehiclePhysics exposes the per-wheel state the renderer needs from the
// vehicle simulation.
type VehiclePhysics interface {
	WheelCount() int
	// WheelTransform returns the wheel's world transform for this frame.
	WheelTransform(i int) math.Mat4
	// WheelConnection returns the wheel's chassis connection point in
	// chassis space. A negative X marks the opposite chassis side.
	WheelConnection(i int) math.Vec3
}

// Object is what the scene walker needs from any scene entity. A nil Object
// means "always visible, no animation" and is used for LOD substitute draws.
type Object interface {
	Animator() Animator
	PoseFixed() bool
	FrameVisible(frame int) bool
}

// LiveryColors is implemented by objects that repaint livery-flagged
// materials, i.e. vehicles.
type LiveryColors interface {
	// LiveryColor returns the primary or secondary paint color.
	LiveryColor(primary bool) [3]float32
}

// FrameVisibility tracks per-frame hidden sub-parts of an object, e.g. a
// detached vehicle panel. The zero value shows every frame.
type FrameVisibility struct {
	hidden map[int]struct{}
}

// SetFrameHidden hides or shows a single frame of the object's model.
func (v *FrameVisibility) SetFrameHidden(frame int, hide bool) {
	if hide {
		if v.hidden == nil {
			v.hidden = make(map[int]struct{})
		}
		v.hidden[frame] = struct{}{}
		return
	}
	delete(v.hidden, frame)
}

// FrameVisible reports whether the given frame should be drawn.
func (v *FrameVisibility) FrameVisible(frame int) bool {
	_, hidden := v.hidden[frame]
	return !hidden
}

// Character is a skeletally-animated scene entity.
type Character struct {
	FrameVisibility

	Position math.Vec3
	Rotation math.Quat
	Model    *model.Model

	Anim Animator
	// FixedPose freezes animation interpolation, e.g. for stopped characters.
	FixedPose bool
}

// Animator implements Object.
func (c *Character) Animator() Animator { return c.Anim }

// PoseFixed implements Object.
func (c *Character) PoseFixed() bool { return c.FixedPose }

// WorldTransform composes the character's placement matrix.
func (c *Character) WorldTransform() math.Mat4 {
	return math.Translate(c.Position).Mul(c.Rotation.ToMat4())
}

// ObjectInfo is the shared type metadata for placed instances.
type ObjectInfo struct {
	ModelName string
	// ClumpCount is the number of detail tiers encoded in the model.
	ClumpCount int
	// DrawDistance holds per-tier draw distances, monotonically increasing
	// from highest to lowest detail tier.
	DrawDistance [2]float32
	// TimeOn/TimeOff bound the hours the instance is shown; equal values
	// mean always shown.
	TimeOn  int
	TimeOff int
	// IsLOD marks instances that only exist as a lower-detail substitute
	// for another instance.
	IsLOD bool
}

// Instance is a placed static or dynamic model instance.
type Instance struct {
	FrameVisibility

	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Model    *model.Model

	// Body, when non-nil, overrides the stored placement with the physics
	// body's world transform.
	Body PhysicsBody

	Info *ObjectInfo
	// LOD links a lower-detail substitute instance.
	LOD *Instance
}

// Animator implements Object; instances are never animated.
func (in *Instance) Animator() Animator { return nil }

// PoseFixed implements Object.
func (in *Instance) PoseFixed() bool { return false }

// WorldTransform returns the instance's placement, preferring the physics
// body when one is attached.
func (in *Instance) WorldTransform() math.Mat4 {
	if in.Body != nil {
		return in.Body.WorldTransform()
	}
	scale := in.Scale
	if scale == (math.Vec3{}) {
		scale = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return math.Translate(in.Position).
		Mul(math.Scale(scale.X, scale.Y, scale.Z)).
		Mul(in.Rotation.ToMat4())
}

// ShownAt reports whether the instance is visible at the given hour,
// honoring its TimeOn/TimeOff window.
func (in *Instance) ShownAt(hour int) bool {
	if in.Info == nil || in.Info.TimeOn == in.Info.TimeOff {
		return true
	}
	return hour >= in.Info.TimeOn || hour <= in.Info.TimeOff
}

// Vehicle is a drivable scene entity with articulated wheels.
type Vehicle struct {
	FrameVisibility

	Position math.Vec3
	Rotation math.Quat
	Model    *model.Model

	ColorPrimary   [3]float32
	ColorSecondary [3]float32

	Physics VehiclePhysics
	// WheelModel is the shared model containing wheel meshes.
	WheelModel *model.Model
	// WheelFrame names the frame within WheelModel to draw per wheel.
	WheelFrame string
	WheelScale float32
}

// Animator implements Object; vehicle animation is handled by physics.
func (v *Vehicle) Animator() Animator { return nil }

// PoseFixed implements Object.
func (v *Vehicle) PoseFixed() bool { return false }

// WorldTransform composes the vehicle's chassis placement matrix.
func (v *Vehicle) WorldTransform() math.Mat4 {
	return math.Translate(v.Position).Mul(v.Rotation.ToMat4())
}

// LiveryColor implements LiveryColors.
func (v *Vehicle) LiveryColor(primary bool) [3]float32 {
	if primary {
		return v.ColorPrimary
	}
	return v.ColorSecondary
}
