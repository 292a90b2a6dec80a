package world

import (
	gomath "math"
	"testing"

	"github.com/lowtide/openworld/pkg/math"
)

func TestClockWrap(t *testing.T) {
	tests := []struct {
		name    string
		start   float32
		advance float32
		wantTOD float32
	}{
		{"noon start", 12, 0, 720},
		{"advance within day", 12, 90, 810},
		{"wrap past midnight", 23, 120, 60},
		{"wrap multiple days", 0, 3 * minutesPerDay, 0},
		{"negative time", 0, -60, minutesPerDay - 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(tt.start)
			c.Advance(tt.advance)
			if got := c.TimeOfDay(); got != tt.wantTOD {
				t.Errorf("TimeOfDay() = %v, want %v", got, tt.wantTOD)
			}
			if got := c.Hour(); got != tt.wantTOD/60 {
				t.Errorf("Hour() = %v, want %v", got, tt.wantTOD/60)
			}
		})
	}
}

func TestWeatherTableInterpolation(t *testing.T) {
	var entries [24]Weather
	entries[6] = Weather{FarClip: 100, FogStart: 10, SkyTop: [3]float32{0, 0, 0}}
	entries[7] = Weather{FarClip: 300, FogStart: 30, SkyTop: [3]float32{1, 1, 1}}
	table := NewWeatherTable(entries)

	got := table.Lookup(6.5)
	if got.FarClip != 200 {
		t.Errorf("FarClip = %v, want 200", got.FarClip)
	}
	if got.FogStart != 20 {
		t.Errorf("FogStart = %v, want 20", got.FogStart)
	}
	if got.SkyTop != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("SkyTop = %v, want {0.5 0.5 0.5}", got.SkyTop)
	}

	// Exactly on a keyframe returns it unchanged.
	if got := table.Lookup(6); got.FarClip != 100 {
		t.Errorf("Lookup(6).FarClip = %v, want 100", got.FarClip)
	}
}

func TestWeatherTableWrapsMidnight(t *testing.T) {
	var entries [24]Weather
	entries[23] = Weather{FarClip: 100}
	entries[0] = Weather{FarClip: 200}
	table := NewWeatherTable(entries)

	if got := table.Lookup(23.5); got.FarClip != 150 {
		t.Errorf("Lookup(23.5).FarClip = %v, want 150", got.FarClip)
	}
	// Out-of-range hours are normalized.
	if got := table.Lookup(47.5); got.FarClip != 150 {
		t.Errorf("Lookup(47.5).FarClip = %v, want 150", got.FarClip)
	}
	if got := table.Lookup(-0.5); got.FarClip != 150 {
		t.Errorf("Lookup(-0.5).FarClip = %v, want 150", got.FarClip)
	}
}

func TestSunDirection(t *testing.T) {
	noon := SunDirection(720)
	if gomath.Abs(float64(noon.Z-1)) > 1e-5 {
		t.Errorf("noon sun Z = %v, want 1", noon.Z)
	}
	midnight := SunDirection(0)
	if gomath.Abs(float64(midnight.Z+1)) > 1e-5 {
		t.Errorf("midnight sun Z = %v, want -1", midnight.Z)
	}
	if l := SunDirection(400).Length(); gomath.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("sun direction length = %v, want 1", l)
	}
}

func TestInstanceShownAt(t *testing.T) {
	tests := []struct {
		name           string
		timeOn, timeOff int
		hour           int
		want           bool
	}{
		{"always when equal", 0, 0, 12, true},
		{"night lamp on at night", 20, 6, 23, true},
		{"night lamp on past midnight", 20, 6, 3, true},
		{"night lamp off at noon", 20, 6, 12, false},
		{"edge of on window", 20, 6, 20, true},
		{"edge of off window", 20, 6, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Instance{Info: &ObjectInfo{TimeOn: tt.timeOn, TimeOff: tt.timeOff}}
			if got := in.ShownAt(tt.hour); got != tt.want {
				t.Errorf("ShownAt(%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}

	// No type info means always shown.
	if !(&Instance{}).ShownAt(12) {
		t.Error("instance without info should always be shown")
	}
}

type fixedBody struct {
	transform math.Mat4
}

func (b fixedBody) WorldTransform() math.Mat4 { return b.transform }

func TestInstanceWorldTransform(t *testing.T) {
	in := &Instance{Position: math.Vec3{X: 3, Y: 4, Z: 5}, Rotation: math.QuatIdentity()}
	if got := in.WorldTransform().Translation(); got != (math.Vec3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("translation = %v, want {3 4 5}", got)
	}

	// A physics body overrides the stored placement entirely.
	in.Body = fixedBody{transform: math.Translate(math.Vec3{X: -1, Y: -2, Z: -3})}
	if got := in.WorldTransform().Translation(); got != (math.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Errorf("body translation = %v, want {-1 -2 -3}", got)
	}
}

func TestInstanceWorldTransformScale(t *testing.T) {
	in := &Instance{
		Position: math.Vec3{X: 0, Y: 0, Z: 0},
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 2, Y: 2, Z: 2},
	}
	p := in.WorldTransform().TransformPoint(math.Vec3{X: 1, Y: 0, Z: 0})
	if p.X != 2 {
		t.Errorf("scaled point X = %v, want 2", p.X)
	}

	// Zero scale is treated as unit scale.
	in.Scale = math.Vec3{}
	p = in.WorldTransform().TransformPoint(math.Vec3{X: 1, Y: 0, Z: 0})
	if p.X != 1 {
		t.Errorf("unit-scaled point X = %v, want 1", p.X)
	}
}

func TestFrameVisibility(t *testing.T) {
	var v FrameVisibility
	if !v.FrameVisible(3) {
		t.Error("zero value should show every frame")
	}
	v.SetFrameHidden(3, true)
	if v.FrameVisible(3) {
		t.Error("frame 3 should be hidden")
	}
	if !v.FrameVisible(4) {
		t.Error("frame 4 should stay visible")
	}
	v.SetFrameHidden(3, false)
	if !v.FrameVisible(3) {
		t.Error("frame 3 should be visible again")
	}
}

func TestVehicleLiveryColor(t *testing.T) {
	v := &Vehicle{
		ColorPrimary:   [3]float32{1, 0, 0},
		ColorSecondary: [3]float32{0, 0, 1},
	}
	if got := v.LiveryColor(true); got != [3]float32{1, 0, 0} {
		t.Errorf("primary = %v", got)
	}
	if got := v.LiveryColor(false); got != [3]float32{0, 0, 1} {
		t.Errorf("secondary = %v", got)
	}
}

func TestWaterGridDefaults(t *testing.T) {
	w := NewWaterGrids()
	for i, v := range w.HQ {
		if v != NoWaterIndex {
			t.Fatalf("HQ[%d] = %d, want dry", i, v)
		}
	}
	w.SetHQ(3, 7, 2)
	if w.HQ[3*WaterHQSize+7] != 2 {
		t.Error("SetHQ did not store the sample index")
	}
	w.SetLQ(1, 1, 0)
	if w.LQ[1*WaterLQSize+1] != 0 {
		t.Error("SetLQ did not store the sample index")
	}
}
