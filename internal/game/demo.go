package game

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/render/glbackend"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// buildDemoWorld constructs a small demonstration scene: a ground slab, a
// ring of two-tier buildings, one vehicle with wheels, and a water patch.
// All geometry is generated and uploaded here so the viewer runs without
// external assets.
func (g *Game) buildDemoWorld(startHour float32) (*world.World, error) {
	w := world.New()
	w.Clock = world.NewClock(startHour)

	g.loadDemoTextures()

	ground, err := g.buildBoxModel(math.Vec3{X: 80, Y: 80, Z: 0.5}, "concrete", [4]uint8{180, 180, 180, 255})
	if err != nil {
		return nil, err
	}
	w.Instances = append(w.Instances, &world.Instance{
		Position: math.Vec3{Z: -0.5},
		Rotation: math.QuatIdentity(),
		Model:    ground,
		Info:     &world.ObjectInfo{ModelName: "ground", ClumpCount: 1, DrawDistance: [2]float32{500, 0}},
	})

	building, err := g.buildTwoTierBuilding()
	if err != nil {
		return nil, err
	}
	for i := 0; i < 6; i++ {
		angle := float32(i) * gomath.Pi / 3
		w.Instances = append(w.Instances, &world.Instance{
			Position: math.Vec3{
				X: 40 * float32(gomath.Cos(float64(angle))),
				Y: 40 * float32(gomath.Sin(float64(angle))),
			},
			Rotation: math.QuatFromAxisAngle(math.Vec3{Z: 1}, angle),
			Model:    building,
			Info: &world.ObjectInfo{
				ModelName:    "tower",
				ClumpCount:   2,
				DrawDistance: [2]float32{120, 300},
			},
		})
	}

	vehicle, wheels, err := g.buildVehicleModels()
	if err != nil {
		return nil, err
	}
	w.Vehicles = append(w.Vehicles, &world.Vehicle{
		Position:       math.Vec3{X: 10, Z: 0.6},
		Rotation:       math.QuatIdentity(),
		Model:          vehicle,
		ColorPrimary:   [3]float32{0.8, 0.1, 0.1},
		ColorSecondary: [3]float32{0.9, 0.9, 0.9},
		Physics:        parkedWheels{chassis: math.Vec3{X: 10, Z: 0.6}},
		WheelModel:     wheels,
		WheelFrame:     "wheel_std",
		WheelScale:     0.4,
	})

	w.Water = world.NewWaterGrids()
	w.Water.Heights = []float32{0.1}
	for x := 70; x < 80; x++ {
		for y := 60; y < 70; y++ {
			w.Water.SetHQ(x, y, 0)
		}
	}
	for x := 35; x < 40; x++ {
		for y := 30; y < 35; y++ {
			w.Water.SetLQ(x, y, 0)
		}
	}

	return w, nil
}

// loadDemoTextures registers small generated textures so material lookups
// succeed without asset files.
func (g *Game) loadDemoTextures() {
	solid := func(c color.NRGBA) image.Image {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
		return img
	}

	g.backend.LoadTexture(g.textures, "concrete", solid(color.NRGBA{R: 200, G: 200, B: 200, A: 255}))
	g.backend.LoadTexture(g.textures, "brick", solid(color.NRGBA{R: 160, G: 90, B: 60, A: 255}))
	g.backend.LoadTexture(g.textures, "glass", solid(color.NRGBA{R: 120, G: 160, B: 200, A: 120}))
	g.backend.LoadTexture(g.textures, "rubber", solid(color.NRGBA{R: 30, G: 30, B: 30, A: 255}))
	g.backend.LoadTexture(g.textures, "water_old", solid(color.NRGBA{R: 40, G: 90, B: 140, A: 255}))
}

// buildBoxModel creates a single-geometry box model and uploads its mesh.
func (g *Game) buildBoxModel(half math.Vec3, tex string, col [4]uint8) (*model.Model, error) {
	m := model.New()
	geom := &model.Geometry{
		Bounds: math.Sphere{Radius: half.Length()},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{tex},
			Color:            col,
			DiffuseIntensity: 0.9,
			AmbientIntensity: 0.1,
		}},
	}
	verts, indices := boxMesh(half)
	geom.Subgeoms = []model.Subgeometry{{Start: 0, IndexCount: len(indices), Material: 0}}

	gi := m.AddGeometry(geom)
	f := m.AddFrame(m.RootFrame, model.Frame{Name: "box", Transform: math.Identity()})
	m.AttachGeometry(f, gi)

	if err := g.backend.UploadGeometry(m, gi, verts, indices); err != nil {
		return nil, err
	}
	return m, nil
}

// buildTwoTierBuilding creates a model with two detail clumps under the
// root: a plain far shell and a near tier with a glass band.
func (g *Game) buildTwoTierBuilding() (*model.Model, error) {
	m := model.New()

	addClump := func(name string, geoms []*model.Geometry) error {
		f := m.AddFrame(m.RootFrame, model.Frame{Name: name, Transform: math.Identity()})
		for _, geom := range geoms {
			gi := m.AddGeometry(geom)
			m.AttachGeometry(f, gi)
			verts, indices := boxMesh(math.Vec3{X: 4, Y: 4, Z: 8})
			geom.Subgeoms = []model.Subgeometry{{Start: 0, IndexCount: len(indices), Material: 0}}
			if err := g.backend.UploadGeometry(m, gi, verts, indices); err != nil {
				return err
			}
		}
		return nil
	}

	shell := &model.Geometry{
		Bounds: math.Sphere{Center: math.Vec3{Z: 8}, Radius: 10},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{"brick"},
			Color:            [4]uint8{255, 255, 255, 255},
			DiffuseIntensity: 0.9,
			AmbientIntensity: 0.1,
		}},
	}
	// Far tier first, near tier last: the traversal picks the last root
	// child for close range.
	if err := addClump("tower_l1", []*model.Geometry{shell}); err != nil {
		return nil, err
	}

	body := &model.Geometry{
		Bounds: math.Sphere{Center: math.Vec3{Z: 8}, Radius: 10},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{"brick"},
			Color:            [4]uint8{255, 255, 255, 255},
			DiffuseIntensity: 0.9,
			AmbientIntensity: 0.1,
		}},
	}
	windows := &model.Geometry{
		Bounds: math.Sphere{Center: math.Vec3{Z: 8}, Radius: 10},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{"glass"},
			Color:            [4]uint8{255, 255, 255, 200},
			DiffuseIntensity: 0.7,
			AmbientIntensity: 0.2,
		}},
	}
	if err := addClump("tower_l0", []*model.Geometry{body, windows}); err != nil {
		return nil, err
	}

	return m, nil
}

// buildVehicleModels creates a chassis model with livery-flagged paint zones
// and a wheel collection model.
func (g *Game) buildVehicleModels() (*model.Model, *model.Model, error) {
	chassis := m4chassis()
	verts, indices := boxMesh(math.Vec3{X: 2, Y: 1, Z: 0.6})
	chassis.Geometries[0].Subgeoms = []model.Subgeometry{{Start: 0, IndexCount: len(indices), Material: 0}}
	if err := g.backend.UploadGeometry(chassis, 0, verts, indices); err != nil {
		return nil, nil, err
	}

	wheels := model.New()
	named := wheels.AddFrame(wheels.RootFrame, model.Frame{Name: "wheel_std", Transform: math.Identity()})
	lod := wheels.AddFrame(named, model.Frame{Name: "wheel_std_l0", Transform: math.Identity()})
	wheelGeom := &model.Geometry{
		Bounds: math.Sphere{Radius: 1},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{"rubber"},
			Color:            [4]uint8{255, 255, 255, 255},
			DiffuseIntensity: 0.8,
			AmbientIntensity: 0.2,
		}},
	}
	wi := wheels.AddGeometry(wheelGeom)
	wheels.AttachGeometry(lod, wi)
	wverts, windices := boxMesh(math.Vec3{X: 0.3, Y: 1, Z: 1})
	wheelGeom.Subgeoms = []model.Subgeometry{{Start: 0, IndexCount: len(windices), Material: 0}}
	if err := g.backend.UploadGeometry(wheels, wi, wverts, windices); err != nil {
		return nil, nil, err
	}

	return chassis, wheels, nil
}

func m4chassis() *model.Model {
	m := model.New()
	geom := &model.Geometry{
		Bounds: math.Sphere{Radius: 2.5},
		Flags:  model.GeomMaterialColor,
		Materials: []model.Material{{
			Textures:         []string{"concrete"},
			Color:            [4]uint8{255, 255, 255, 255},
			Flags:            model.MatPrimaryColor,
			DiffuseIntensity: 0.9,
			AmbientIntensity: 0.1,
		}},
	}
	gi := m.AddGeometry(geom)
	f := m.AddFrame(m.RootFrame, model.Frame{Name: "chassis", Transform: math.Identity()})
	m.AttachGeometry(f, gi)
	return m
}

// parkedWheels is a static stand-in for a vehicle simulation: four wheels at
// fixed chassis offsets, two per side.
type parkedWheels struct {
	chassis math.Vec3
}

var wheelOffsets = [4]math.Vec3{
	{X: 1.4, Y: 1.4, Z: -0.4},
	{X: 1.4, Y: -1.4, Z: -0.4},
	{X: -1.4, Y: 1.4, Z: -0.4},
	{X: -1.4, Y: -1.4, Z: -0.4},
}

func (p parkedWheels) WheelCount() int { return len(wheelOffsets) }

func (p parkedWheels) WheelTransform(i int) math.Mat4 {
	return math.Translate(p.chassis.Add(wheelOffsets[i]))
}

func (p parkedWheels) WheelConnection(i int) math.Vec3 {
	return wheelOffsets[i]
}

// boxMesh builds an axis-aligned box centered at the origin with the given
// half extents, flat normals, white vertex colors and per-face UVs.
func boxMesh(half math.Vec3) ([]glbackend.Vertex, []uint32) {
	type face struct {
		normal  [3]float32
		corners [4]math.Vec3
	}
	h := half
	faces := []face{
		{[3]float32{0, 0, 1}, [4]math.Vec3{{-h.X, -h.Y, h.Z}, {h.X, -h.Y, h.Z}, {h.X, h.Y, h.Z}, {-h.X, h.Y, h.Z}}},
		{[3]float32{0, 0, -1}, [4]math.Vec3{{-h.X, h.Y, -h.Z}, {h.X, h.Y, -h.Z}, {h.X, -h.Y, -h.Z}, {-h.X, -h.Y, -h.Z}}},
		{[3]float32{1, 0, 0}, [4]math.Vec3{{h.X, -h.Y, -h.Z}, {h.X, h.Y, -h.Z}, {h.X, h.Y, h.Z}, {h.X, -h.Y, h.Z}}},
		{[3]float32{-1, 0, 0}, [4]math.Vec3{{-h.X, h.Y, -h.Z}, {-h.X, -h.Y, -h.Z}, {-h.X, -h.Y, h.Z}, {-h.X, h.Y, h.Z}}},
		{[3]float32{0, 1, 0}, [4]math.Vec3{{h.X, h.Y, -h.Z}, {-h.X, h.Y, -h.Z}, {-h.X, h.Y, h.Z}, {h.X, h.Y, h.Z}}},
		{[3]float32{0, -1, 0}, [4]math.Vec3{{-h.X, -h.Y, -h.Z}, {h.X, -h.Y, -h.Z}, {h.X, -h.Y, h.Z}, {-h.X, -h.Y, h.Z}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []glbackend.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(verts))
		for i, c := range f.corners {
			verts = append(verts, glbackend.Vertex{
				Position: [3]float32{c.X, c.Y, c.Z},
				Normal:   f.normal,
				Color:    [4]uint8{255, 255, 255, 255},
				TexCoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}
