// Package render implements the per-frame scene traversal and draw-decision
// engine: frustum culling, distance-based LOD selection, recursive frame-tree
// traversal, two-pass opaque/transparent ordering, the water tile passes and
// the sky pass.
//
// The package decides what gets drawn, in what order, and with which
// transform and material. GPU submission itself happens behind the Backend
// interface so the decision logic stays testable off-GPU.
package render

import (
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/pkg/math"
)

// Color is an RGBA color with channels in [0, 1].
type Color [4]float32

// White is the baseline draw color; textures pass through unmodulated.
var White = Color{1, 1, 1, 1}

// Environment carries the time-of-day derived frame parameters handed to the
// backend once per frame.
type Environment struct {
	Ambient      Color
	DirectLight  Color
	SunDirection math.Vec3

	FogStart float32
	FogEnd   float32

	// Horizon is the sky bottom color, also used to clear the frame.
	Horizon Color
}

// Backend submits resolved draws to the GPU. Calls arrive single-threaded in
// the fixed order of a frame: BeginFrame, the opaque and transparency draws,
// BeginWaterPass and its tiles, DrawSky, debug lines, EndFrame. State set by
// one call (bound texture, model matrix, color) persists until the next call
// that replaces it.
type Backend interface {
	// BeginFrame clears the targets with the environment's horizon color
	// and installs the view/projection and lighting state.
	BeginFrame(view, proj math.Mat4, env Environment)

	SetModelMatrix(m math.Mat4)
	SetColor(c Color)
	SetMaterialIntensity(diffuse, ambient float32)
	// BindTexture binds the texture for subsequent draws; zero binds none.
	BindTexture(handle uint32)
	// DrawSubgeometry draws one subgeometry index range of a model
	// geometry with the currently installed state.
	DrawSubgeometry(m *model.Model, geometry, subgeom int)

	// BeginWaterPass switches to the water pipeline with the given texture.
	BeginWaterPass(texture uint32)
	// DrawWaterTile draws the shared unit water plane translated to the
	// tile corner (x, y), scaled to size, at the given surface height.
	DrawWaterTile(x, y, size, height float32)

	// DrawSky draws the skydome with a vertical top/bottom gradient.
	DrawSky(top, bottom Color)

	// DrawLines draws a debug line list of packed XYZ vertex positions.
	DrawLines(vertices []float32, c Color)

	EndFrame()
}
