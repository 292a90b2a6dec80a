// Package model defines the immutable model asset consumed by the renderer:
// geometry parts with bounding spheres and materials, and a hierarchical
// frame tree stored as an arena of index-addressed nodes.
//
// Models are shared read-only across all scene objects referencing them and
// must outlive any frame that draws them. The renderer never mutates a Model.
package model

import (
	"github.com/lowtide/openworld/pkg/math"
)

// Geometry flags.
const (
	// GeomMaterialColor marks geometry whose per-material color is
	// significant; without it draws are forced to full white.
	GeomMaterialColor uint32 = 1 << 0
)

// Material flags.
const (
	// MatPrimaryColor marks a livery zone painted with the owning
	// vehicle's primary color.
	MatPrimaryColor uint32 = 1 << 0
	// MatSecondaryColor marks a livery zone painted with the owning
	// vehicle's secondary color.
	MatSecondaryColor uint32 = 1 << 1
)

// Model is an immutable model asset.
type Model struct {
	Geometries []*Geometry
	// Frames is the frame arena; node links are indices into this slice.
	Frames []Frame
	// RootFrame is the index of the designated root frame.
	RootFrame int
}

// Frame is a node in the model's rigid hierarchy. Frames are static for a
// given model and never mutated during rendering.
type Frame struct {
	Name string
	// Transform is the local-space bind transform.
	Transform math.Mat4
	// Parent is the parent frame index, or -1 for the root.
	Parent int
	// Geometries indexes into Model.Geometries.
	Geometries []int
	// Children holds child frame indices in traversal order.
	Children []int
}

// Geometry is one drawable part of a model.
type Geometry struct {
	// Bounds is the frame-local bounding sphere.
	Bounds math.Sphere
	Flags  uint32

	Materials []Material
	Subgeoms  []Subgeometry
}

// Subgeometry is a contiguous index range drawn with one material.
type Subgeometry struct {
	Start      int
	IndexCount int
	// Material indexes into the geometry's Materials.
	Material int
}

// Material describes how a subgeometry is shaded.
type Material struct {
	// Textures holds texture names; the first one is bound for drawing.
	// Empty means the subgeometry draws untextured.
	Textures []string
	// Color is the stored base color in 8-bit channel encoding.
	Color [4]uint8
	Flags uint32

	DiffuseIntensity float32
	AmbientIntensity float32
}

// New creates a model with a single root frame carrying the given transform.
func New() *Model {
	return &Model{
		Frames: []Frame{{
			Name:      "root",
			Transform: math.Identity(),
			Parent:    -1,
		}},
		RootFrame: 0,
	}
}

// AddFrame appends a frame under the given parent and returns its index.
func (m *Model) AddFrame(parent int, f Frame) int {
	idx := len(m.Frames)
	f.Parent = parent
	m.Frames = append(m.Frames, f)
	m.Frames[parent].Children = append(m.Frames[parent].Children, idx)
	return idx
}

// AddGeometry appends a geometry and returns its index.
func (m *Model) AddGeometry(g *Geometry) int {
	m.Geometries = append(m.Geometries, g)
	return len(m.Geometries) - 1
}

// AttachGeometry attaches an existing geometry index to a frame.
func (m *Model) AttachGeometry(frame, geometry int) {
	m.Frames[frame].Geometries = append(m.Frames[frame].Geometries, geometry)
}

// RootChildren returns the child indices of the root frame.
func (m *Model) RootChildren() []int {
	return m.Frames[m.RootFrame].Children
}

// FindFrame returns the index of the first frame with the given name,
// or -1 if no frame matches.
func (m *Model) FindFrame(name string) int {
	for i := range m.Frames {
		if m.Frames[i].Name == name {
			return i
		}
	}
	return -1
}
