package render

import (
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// submitResult tags the outcome of submitting one subgeometry.
type submitResult int

const (
	// submitDrawn means the subgeometry was drawn immediately.
	submitDrawn submitResult = iota
	// submitDeferred means the subgeometry is transparent and must be
	// re-submitted during the transparency flush.
	submitDeferred
)

// transparentEntry is a draw postponed to the transparency flush.
type transparentEntry struct {
	model    *model.Model
	geometry int
	subgeom  int
	matrix   math.Mat4
	object   world.Object
}

// renderModel starts a depth-first traversal of the model's frame tree at
// its root, with the object's world transform as the incoming matrix.
func (r *Renderer) renderModel(m *model.Model, transform math.Mat4, obj world.Object) {
	r.renderFrame(m, m.RootFrame, transform, obj, true)
}

// renderFrame walks one frame node: composes the local transform (blended by
// the object's animator when one is attached), applies the per-frame
// visibility gate, draws attached geometry, then recurses into children.
// Deferral at the subgeometry level never aborts sibling or child traversal.
func (r *Renderer) renderFrame(m *model.Model, frame int, incoming math.Mat4, obj world.Object, queueTransparent bool) {
	f := &m.Frames[frame]

	local := f.Transform
	if obj != nil {
		if anim := obj.Animator(); anim != nil {
			local = anim.FrameTransform(frame, r.alpha, obj.PoseFixed())
		}
	}
	worldMatrix := incoming.Mul(local)

	// Hidden frames skip their own geometry but children still draw.
	if obj == nil || obj.FrameVisible(frame) {
		for _, g := range f.Geometries {
			r.renderGeometry(m, g, worldMatrix, obj, queueTransparent)
		}
	} else {
		r.hidden += len(f.Geometries)
	}

	for _, c := range f.Children {
		r.renderFrame(m, c, worldMatrix, obj, queueTransparent)
	}
}

// renderGeometry culls one geometry against the frustum and submits its
// subgeometries, queueing any that resolve transparent.
func (r *Renderer) renderGeometry(m *model.Model, g int, worldMatrix math.Mat4, obj world.Object, queueTransparent bool) {
	geom := m.Geometries[g]

	center := worldMatrix.TransformPoint(geom.Bounds.Center)
	if !r.camera.Frustum.IntersectsSphere(center, geom.Bounds.Radius) {
		r.culled++
		return
	}
	r.rendered++

	r.backend.SetModelMatrix(worldMatrix)
	if geom.Flags&model.GeomMaterialColor == 0 {
		r.backend.SetColor(White)
	}

	for sg := range geom.Subgeoms {
		if r.renderSubgeometry(m, g, sg, obj, queueTransparent) == submitDeferred {
			r.transparent = append(r.transparent, transparentEntry{
				model:    m,
				geometry: g,
				subgeom:  sg,
				matrix:   worldMatrix,
				object:   obj,
			})
		}
	}
}

// renderSubgeometry resolves one subgeometry's material and either draws it
// or signals deferral. During the transparency flush queueTransparent is
// false, so the same subgeometry resolves and draws.
func (r *Renderer) renderSubgeometry(m *model.Model, g, sg int, obj world.Object, queueTransparent bool) submitResult {
	geom := m.Geometries[g]
	sub := &geom.Subgeoms[sg]
	mat := &geom.Materials[sub.Material]

	// An unregistered or absent texture draws untextured.
	var handle uint32
	if len(mat.Textures) > 0 {
		if tex, ok := r.textures.Lookup(mat.Textures[0]); ok {
			if tex.Transparent && queueTransparent {
				return submitDeferred
			}
			handle = tex.Handle
		}
	}
	r.backend.BindTexture(handle)

	if geom.Flags&model.GeomMaterialColor != 0 {
		r.backend.SetColor(resolveColor(mat, obj))
	}
	r.backend.SetMaterialIntensity(mat.DiffuseIntensity, mat.AmbientIntensity)

	r.backend.DrawSubgeometry(m, g, sg)
	return submitDrawn
}

// resolveColor picks the draw color for a material: the owning object's
// livery paint when the material is flagged as a livery zone and the object
// carries paint colors, otherwise the material's stored color normalized
// from 8-bit channels.
func resolveColor(mat *model.Material, obj world.Object) Color {
	if lc, ok := obj.(world.LiveryColors); ok {
		if mat.Flags&model.MatPrimaryColor != 0 {
			rgb := lc.LiveryColor(true)
			return Color{rgb[0], rgb[1], rgb[2], 1}
		}
		if mat.Flags&model.MatSecondaryColor != 0 {
			rgb := lc.LiveryColor(false)
			return Color{rgb[0], rgb[1], rgb[2], 1}
		}
	}
	return Color{
		float32(mat.Color[0]) / 255,
		float32(mat.Color[1]) / 255,
		float32(mat.Color[2]) / 255,
		float32(mat.Color[3]) / 255,
	}
}
