package render

import (
	gomath "math"

	"github.com/lowtide/openworld/internal/engine/camera"
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/texture"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// drawRecord captures one subgeometry draw with the state installed at the
// time of the call.
type drawRecord struct {
	model    *model.Model
	geometry int
	subgeom  int
	matrix   math.Mat4
	color    Color
	texture  uint32
}

type tileRecord struct {
	x, y, size, height float32
}

// fakeBackend records every submission so tests can assert on draw content
// and pass ordering without a GPU.
type fakeBackend struct {
	ops []string

	matrix  math.Mat4
	color   Color
	texture uint32

	draws []drawRecord
	tiles []tileRecord

	waterTexture uint32
	skyTop       Color
	skyBottom    Color
	lineVerts    []float32
}

func (b *fakeBackend) BeginFrame(view, proj math.Mat4, env Environment) {
	b.ops = append(b.ops, "begin")
}

func (b *fakeBackend) SetModelMatrix(m math.Mat4) { b.matrix = m }
func (b *fakeBackend) SetColor(c Color)           { b.color = c }

func (b *fakeBackend) SetMaterialIntensity(diffuse, ambient float32) {}

func (b *fakeBackend) BindTexture(handle uint32) { b.texture = handle }

func (b *fakeBackend) DrawSubgeometry(m *model.Model, geometry, subgeom int) {
	b.ops = append(b.ops, "draw")
	b.draws = append(b.draws, drawRecord{
		model:    m,
		geometry: geometry,
		subgeom:  subgeom,
		matrix:   b.matrix,
		color:    b.color,
		texture:  b.texture,
	})
}

func (b *fakeBackend) BeginWaterPass(tex uint32) {
	b.ops = append(b.ops, "water")
	b.waterTexture = tex
}

func (b *fakeBackend) DrawWaterTile(x, y, size, height float32) {
	b.tiles = append(b.tiles, tileRecord{x: x, y: y, size: size, height: height})
}

func (b *fakeBackend) DrawSky(top, bottom Color) {
	b.ops = append(b.ops, "sky")
	b.skyTop, b.skyBottom = top, bottom
}

func (b *fakeBackend) DrawLines(verts []float32, c Color) {
	b.ops = append(b.ops, "lines")
	b.lineVerts = append(b.lineVerts[:0], verts...)
}

func (b *fakeBackend) EndFrame() { b.ops = append(b.ops, "end") }

// constWeather returns the same weather at every hour.
type constWeather struct {
	w world.Weather
}

func (c constWeather) Lookup(hour float32) world.Weather { return c.w }

// newTestScene builds an empty world with fixed weather (far clip 1000) and
// a renderer whose camera sits at the origin looking down -Y, Z up.
func newTestScene() (*Renderer, *fakeBackend, *world.World, *texture.Registry) {
	w := world.New()
	w.Weather = constWeather{w: world.Weather{
		SkyTop:    [3]float32{0.2, 0.4, 0.8},
		SkyBottom: [3]float32{0.7, 0.8, 0.9},
		FogStart:  50,
		FarClip:   1000,
	}}

	cam := camera.New(float32(gomath.Pi/2), 1, 0.1, 1000)
	cam.LookAt(math.Vec3{}, math.Vec3{Y: -1})

	backend := &fakeBackend{}
	reg := texture.NewRegistry()
	return New(backend, cam, w, reg, nil), backend, w, reg
}

// flatModel builds a model with one geometry under one child frame. The
// geometry carries a single subgeometry referencing material 0.
func flatModel(mat model.Material, flags uint32, radius float32) *model.Model {
	m := model.New()
	g := &model.Geometry{
		Bounds:    math.Sphere{Radius: radius},
		Flags:     flags,
		Materials: []model.Material{mat},
		Subgeoms:  []model.Subgeometry{{Start: 0, IndexCount: 36, Material: 0}},
	}
	gi := m.AddGeometry(g)
	f := m.AddFrame(m.RootFrame, model.Frame{Name: "body", Transform: math.Identity()})
	m.AttachGeometry(f, gi)
	return m
}
