package render

import (
	"testing"

	"github.com/lowtide/openworld/internal/engine/debug"
	"github.com/lowtide/openworld/internal/engine/model"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

func TestInstanceInRangeDraws(t *testing.T) {
	r, backend, w, _ := newTestScene()

	m := flatModel(model.Material{}, 0, 1)
	in := &world.Instance{
		Position: math.Vec3{Y: -30},
		Rotation: math.QuatIdentity(),
		Model:    m,
		Info:     &world.ObjectInfo{ClumpCount: 1, DrawDistance: [2]float32{50, 100}},
	}
	w.Instances = append(w.Instances, in)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}

	if len(backend.draws) == 0 {
		t.Error("expected the instance to draw")
	}
	if r.Culled() != 0 {
		t.Errorf("culled = %d, want 0", r.Culled())
	}
}

func TestInstanceOutOfRangeCulls(t *testing.T) {
	r, backend, w, _ := newTestScene()

	m := flatModel(model.Material{}, 0, 1)
	in := &world.Instance{
		Position: math.Vec3{Y: -150},
		Rotation: math.QuatIdentity(),
		Model:    m,
		Info:     &world.ObjectInfo{ClumpCount: 1, DrawDistance: [2]float32{50, 100}},
	}
	w.Instances = append(w.Instances, in)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}

	if len(backend.draws) != 0 {
		t.Errorf("draw calls = %d, want 0", len(backend.draws))
	}
	if r.Culled() < 1 {
		t.Errorf("culled = %d, want at least 1", r.Culled())
	}
}

func TestInstanceTimeGate(t *testing.T) {
	r, backend, w, _ := newTestScene()
	w.Clock = world.NewClock(12)

	m := flatModel(model.Material{}, 0, 1)
	// Streetlight-style window: on 20:00, off 06:00 — hidden at noon.
	in := &world.Instance{
		Position: math.Vec3{Y: -30},
		Rotation: math.QuatIdentity(),
		Model:    m,
		Info:     &world.ObjectInfo{ClumpCount: 1, DrawDistance: [2]float32{100, 0}, TimeOn: 20, TimeOff: 6},
	}
	w.Instances = append(w.Instances, in)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}
	if len(backend.draws) != 0 {
		t.Errorf("noon draw calls = %d, want 0", len(backend.draws))
	}

	w.Clock = world.NewClock(23)
	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}
	if len(backend.draws) != 1 {
		t.Errorf("night draw calls = %d, want 1", len(backend.draws))
	}
}

func TestInstanceCorruptAssetFails(t *testing.T) {
	r, _, w, _ := newTestScene()

	// Two clumps declared, but the root has a single child.
	m := flatModel(model.Material{}, 0, 1)
	in := &world.Instance{
		Position: math.Vec3{Y: -30},
		Rotation: math.QuatIdentity(),
		Model:    m,
		Info:     &world.ObjectInfo{ModelName: "broken", ClumpCount: 2, DrawDistance: [2]float32{50, 100}},
	}
	w.Instances = append(w.Instances, in)

	if err := r.RenderWorld(0); err == nil {
		t.Fatal("expected an asset-integrity error")
	}
}

func TestMissingModelSkipped(t *testing.T) {
	r, backend, w, _ := newTestScene()

	w.Instances = append(w.Instances, &world.Instance{
		Position: math.Vec3{Y: -30},
		Rotation: math.QuatIdentity(),
		Info:     &world.ObjectInfo{ModelName: "pending", ClumpCount: 1, DrawDistance: [2]float32{100, 0}},
	})
	w.Characters = append(w.Characters, &world.Character{Position: math.Vec3{Y: -20}})
	w.Vehicles = append(w.Vehicles, &world.Vehicle{Position: math.Vec3{Y: -25}})

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}
	if len(backend.draws) != 0 {
		t.Errorf("draw calls = %d, want 0", len(backend.draws))
	}
}

// wheelModel builds a wheel collection model: a named frame whose first
// child carries the wheel geometry.
func wheelModel(name string) *model.Model {
	m := model.New()
	named := m.AddFrame(m.RootFrame, model.Frame{Name: name, Transform: math.Identity()})
	lod := m.AddFrame(named, model.Frame{Name: name + "_l0", Transform: math.Identity()})
	gi := m.AddGeometry(&model.Geometry{
		Bounds:    math.Sphere{Radius: 1},
		Subgeoms:  []model.Subgeometry{{IndexCount: 3}},
		Materials: []model.Material{{}},
	})
	m.AttachGeometry(lod, gi)
	return m
}

type fourWheels struct {
	transforms  [4]math.Mat4
	connections [4]math.Vec3
}

func (p fourWheels) WheelCount() int                 { return 4 }
func (p fourWheels) WheelTransform(i int) math.Mat4  { return p.transforms[i] }
func (p fourWheels) WheelConnection(i int) math.Vec3 { return p.connections[i] }

func TestVehicleWheelMirroring(t *testing.T) {
	r, backend, w, _ := newTestScene()

	chassis := flatModel(model.Material{}, 0, 2)
	wheels := wheelModel("wheel_rim")

	phys := fourWheels{}
	for i := range phys.transforms {
		phys.transforms[i] = math.Translate(math.Vec3{Y: -10})
		phys.connections[i] = math.Vec3{X: 1}
	}
	// Wheel 2 connects on the opposite chassis side.
	phys.connections[2] = math.Vec3{X: -1}

	v := &world.Vehicle{
		Position:   math.Vec3{Y: -10},
		Rotation:   math.QuatIdentity(),
		Model:      chassis,
		Physics:    phys,
		WheelModel: wheels,
		WheelFrame: "wheel_rim",
		WheelScale: 1,
	}
	w.Vehicles = append(w.Vehicles, v)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}

	var wheelDraws []drawRecord
	for _, d := range backend.draws {
		if d.model == wheels {
			wheelDraws = append(wheelDraws, d)
		}
	}
	if len(wheelDraws) != 4 {
		t.Fatalf("wheel draws = %d, want 4", len(wheelDraws))
	}

	probe := math.Vec3{X: 1}
	for i, d := range wheelDraws {
		p := d.matrix.TransformPoint(probe)
		if i == 2 {
			if p.X != -1 {
				t.Errorf("wheel 2 probe X = %v, want -1 (mirrored)", p.X)
			}
		} else if p.X != 1 {
			t.Errorf("wheel %d probe X = %v, want 1", i, p.X)
		}
	}
}

func TestVehicleLiveryColorSubstitution(t *testing.T) {
	r, backend, w, _ := newTestScene()

	m := flatModel(model.Material{
		Color: [4]uint8{10, 20, 30, 255},
		Flags: model.MatPrimaryColor,
	}, model.GeomMaterialColor, 2)

	v := &world.Vehicle{
		Position:     math.Vec3{Y: -10},
		Rotation:     math.QuatIdentity(),
		Model:        m,
		ColorPrimary: [3]float32{0.9, 0.1, 0.1},
	}
	w.Vehicles = append(w.Vehicles, v)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}

	if len(backend.draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(backend.draws))
	}
	want := Color{0.9, 0.1, 0.1, 1}
	if backend.draws[0].color != want {
		t.Errorf("draw color = %v, want primary paint %v", backend.draws[0].color, want)
	}
}

func TestRenderDebugLines(t *testing.T) {
	r, backend, _, _ := newTestScene()

	var lines debug.LineSet
	r.RenderDebugLines(&lines, White)
	if len(backend.ops) != 0 {
		t.Error("empty line set should not draw")
	}

	lines.AddLine(math.Vec3{}, math.Vec3{Z: 1})
	r.RenderDebugLines(&lines, Color{1, 0, 0, 1})
	if len(backend.lineVerts) != 6 {
		t.Errorf("line vertices = %d, want 6", len(backend.lineVerts))
	}
}
