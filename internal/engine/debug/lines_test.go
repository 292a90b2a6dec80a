package debug

import (
	"testing"

	"github.com/lowtide/openworld/pkg/math"
)

func TestLineSet(t *testing.T) {
	var s LineSet
	if !s.Empty() {
		t.Error("new set should be empty")
	}

	s.AddLine(math.Vec3{X: 1}, math.Vec3{Y: 2})
	want := []float32{1, 0, 0, 0, 2, 0}
	got := s.Vertices()
	if len(got) != len(want) {
		t.Fatalf("vertex count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	s.AddMarker(math.Vec3{Z: 5}, 2)
	if len(s.Vertices()) != 12 {
		t.Fatalf("vertex count after marker = %d, want 12", len(s.Vertices()))
	}
	if top := s.Vertices()[11]; top != 7 {
		t.Errorf("marker top Z = %v, want 7", top)
	}

	s.Reset()
	if !s.Empty() {
		t.Error("set should be empty after Reset")
	}
}
