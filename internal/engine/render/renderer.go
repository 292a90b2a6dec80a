package render

import (
	"go.uber.org/zap"

	"github.com/lowtide/openworld/internal/engine/camera"
	"github.com/lowtide/openworld/internal/engine/debug"
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/texture"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// Renderer drives one complete frame per RenderWorld call. It owns the
// camera's frustum state and the transparency queue; scene objects and
// models are borrowed read-only for the duration of the call.
//
// Not safe for concurrent use; one frame is a single synchronous pass.
type Renderer struct {
	backend  Backend
	camera   *camera.Camera
	world    *world.World
	textures *texture.Registry
	log      *zap.Logger

	// alpha is the simulation interpolation fraction for the current frame.
	alpha float32

	transparent []transparentEntry

	rendered int
	culled   int
	hidden   int
}

// New creates a renderer drawing the given world through the backend.
// A nil log disables logging.
func New(backend Backend, cam *camera.Camera, w *world.World, textures *texture.Registry, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		backend:  backend,
		camera:   cam,
		world:    w,
		textures: textures,
		log:      log,
	}
}

// Rendered returns the number of geometry parts drawn last frame.
func (r *Renderer) Rendered() int { return r.rendered }

// Culled returns the number of geometry parts frustum- or LOD-culled last frame.
func (r *Renderer) Culled() int { return r.culled }

// Hidden returns the number of geometry parts skipped by the per-frame
// visibility gate last frame.
func (r *Renderer) Hidden() int { return r.hidden }

// RenderWorld produces one complete frame. alpha in [0, 1] is the fraction
// between the last two simulation ticks, used to blend animation poses.
//
// The pass order is fixed: environment and frustum update, opaque traversal
// of characters, instances and vehicles, transparency flush, water, sky.
// Only a corrupt multi-tier model asset aborts the frame with an error;
// missing models are logged and skipped.
func (r *Renderer) RenderWorld(alpha float32) error {
	r.alpha = alpha

	// Weather drives the lighting, fog, sky and the far clip distance,
	// which must land on the frustum before any visibility query.
	hour := r.world.Clock.Hour()
	weather := r.world.Weather.Lookup(hour)
	r.camera.Frustum.Far = weather.FarClip

	env := Environment{
		Ambient:      Color{weather.Ambient[0], weather.Ambient[1], weather.Ambient[2], 1},
		DirectLight:  Color{weather.DirectLight[0], weather.DirectLight[1], weather.DirectLight[2], 1},
		SunDirection: world.SunDirection(r.world.Clock.TimeOfDay()),
		FogStart:     weather.FogStart,
		FogEnd:       weather.FarClip,
		Horizon:      Color{weather.SkyBottom[0], weather.SkyBottom[1], weather.SkyBottom[2], 1},
	}
	r.backend.BeginFrame(r.camera.View, r.camera.Projection(), env)
	r.camera.UpdateFrustum()

	r.rendered, r.culled, r.hidden = 0, 0, 0

	for _, c := range r.world.Characters {
		if c.Model == nil {
			r.log.Warn("character model missing, skipping",
				zap.Float32("x", c.Position.X), zap.Float32("y", c.Position.Y))
			continue
		}
		r.renderModel(c.Model, c.WorldTransform(), c)
	}

	wholeHour := int(hour)
	for _, in := range r.world.Instances {
		if err := r.renderInstance(in, wholeHour); err != nil {
			return err
		}
	}

	for _, v := range r.world.Vehicles {
		r.renderVehicle(v)
	}

	r.flushTransparency()

	r.renderWater()

	r.backend.DrawSky(
		Color{weather.SkyTop[0], weather.SkyTop[1], weather.SkyTop[2], 1},
		Color{weather.SkyBottom[0], weather.SkyBottom[1], weather.SkyBottom[2], 1},
	)

	r.backend.EndFrame()
	return nil
}

// renderInstance applies the time-of-day gate and LOD selection, then
// traverses the chosen representation.
func (r *Renderer) renderInstance(in *world.Instance, hour int) error {
	if !in.ShownAt(hour) {
		return nil
	}
	if in.Model == nil {
		if in.Info != nil {
			r.log.Warn("instance model not loaded, skipping",
				zap.String("model", in.Info.ModelName))
		}
		return nil
	}

	transform := in.WorldTransform()
	decision, err := selectInstanceLOD(in, transform, r.camera.Position)
	if err != nil {
		return err
	}

	switch decision.choice {
	case lodSkip:
	case lodCull:
		r.culled += len(in.Model.Geometries)
	case lodFull:
		r.renderModel(in.Model, transform, in)
	case lodLinked:
		if in.LOD.Model == nil {
			r.log.Warn("linked detail substitute not loaded, skipping",
				zap.String("model", in.LOD.Info.ModelName))
			return nil
		}
		// The substitute draws at the parent's transform with no live
		// object, so every sub-part is treated as visible.
		r.renderModel(in.LOD.Model, transform, nil)
	case lodClump:
		// Cancel the clump frame's own bind transform so the subtree
		// lands exactly at the instance's placement.
		f := &in.Model.Frames[decision.frame]
		r.renderFrame(in.Model, decision.frame, transform.Mul(f.Transform.Inverse()), in, true)
	}
	return nil
}

// renderVehicle draws the chassis model, then one wheel per physics wheel at
// the transform the simulation reports, mirrored across X for wheels whose
// chassis connection point sits on the negative side.
func (r *Renderer) renderVehicle(v *world.Vehicle) {
	if v.Model == nil {
		r.log.Warn("vehicle model not loaded, skipping",
			zap.Float32("x", v.Position.X), zap.Float32("y", v.Position.Y))
		return
	}

	r.renderModel(v.Model, v.WorldTransform(), v)

	if v.Physics == nil || v.WheelModel == nil {
		return
	}
	scale := v.WheelScale
	if scale == 0 {
		scale = 1
	}
	for w := 0; w < v.Physics.WheelCount(); w++ {
		wheelTf := v.Physics.WheelTransform(w).Mul(math.Scale(scale, scale, scale))
		if v.Physics.WheelConnection(w).X < 0 {
			wheelTf = wheelTf.Mul(math.Scale(-1, 1, 1))
		}
		r.renderWheel(v.WheelModel, wheelTf, v.WheelFrame)
	}
}

// renderWheel draws the geometry of the named wheel frame's first child at
// the given transform. Wheel models pack several wheel variants as named
// frames each holding detail children, highest detail first.
func (r *Renderer) renderWheel(m *model.Model, transform math.Mat4, name string) {
	frame := m.FindFrame(name)
	if frame < 0 {
		r.log.Warn("wheel frame not found", zap.String("frame", name))
		return
	}
	children := m.Frames[frame].Children
	if len(children) == 0 {
		return
	}
	firstLod := children[0]
	for _, g := range m.Frames[firstLod].Geometries {
		r.renderGeometry(m, g, transform, nil, true)
	}
}

// RenderDebugLines draws a caller-owned line set in a single color. The set
// is filled fresh by the caller each frame; nothing is retained between calls.
func (r *Renderer) RenderDebugLines(lines *debug.LineSet, c Color) {
	if lines.Empty() {
		return
	}
	r.backend.DrawLines(lines.Vertices(), c)
}

// flushTransparency drains the queue in insertion order, rebinding each
// entry's transform and baseline color, with deferral disabled so every
// entry resolves and draws. The queue is cleared even when empty.
func (r *Renderer) flushTransparency() {
	for i := range r.transparent {
		e := &r.transparent[i]
		r.backend.SetModelMatrix(e.matrix)
		r.backend.SetColor(White)
		r.renderSubgeometry(e.model, e.geometry, e.subgeom, e.object, false)
	}
	r.transparent = r.transparent[:0]
}
