package render

import (
	"testing"

	"github.com/lowtide/openworld/internal/engine/texture"
	"github.com/lowtide/openworld/internal/engine/world"
)

func TestWaterBandSelection(t *testing.T) {
	const farClip = float32(450)

	tests := []struct {
		name   string
		dist   float32
		wantHQ bool
		wantLQ bool
	}{
		{"at camera", 0, true, false},
		{"inner band", 100, true, false},
		{"handover band", 150, true, true},
		{"outer band", 300, false, true},
		{"near far clip", farClip + waterLQTileSize/2, false, true},
		{"beyond far clip", farClip + waterLQTileSize, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hqTileVisible(tt.dist); got != tt.wantHQ {
				t.Errorf("hqTileVisible(%v) = %v, want %v", tt.dist, got, tt.wantHQ)
			}
			if got := lqTileVisible(tt.dist, farClip); got != tt.wantLQ {
				t.Errorf("lqTileVisible(%v) = %v, want %v", tt.dist, got, tt.wantLQ)
			}
		})
	}
}

func TestWaterBandsDisjointOutsideHandover(t *testing.T) {
	const farClip = float32(450)

	// Strictly inside the high-quality cutoff and strictly beyond the far
	// clip, no distance may satisfy both rules.
	for d := float32(0); d < world.WaterHQDistance; d += 8 {
		if hqTileVisible(d) && lqTileVisible(d, farClip) {
			t.Fatalf("distance %v selected by both grids inside the HQ cutoff", d)
		}
	}
	for d := farClip + waterLQTileSize; d < farClip+512; d += 8 {
		if hqTileVisible(d) || lqTileVisible(d, farClip) {
			t.Fatalf("distance %v selected beyond the far clip", d)
		}
	}
}

func TestRenderWaterTiles(t *testing.T) {
	r, backend, w, reg := newTestScene()
	reg.Add("water_old", texture.Texture{Handle: 9})

	w.Water = world.NewWaterGrids()
	w.Water.Heights = []float32{5, -2}

	// One wet HQ cell at the camera and one beyond the HQ band; the far
	// cell stays dry to the HQ pass but wet for LQ.
	hx, hy := world.WaterHQSize/2, world.WaterHQSize/2
	w.Water.SetHQ(hx, hy, 0)

	lx := world.WaterLQSize/2 + 5 // ~320 units out on X
	w.Water.SetLQ(lx, world.WaterLQSize/2, 1)

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}

	if backend.waterTexture != 9 {
		t.Errorf("water texture = %d, want 9", backend.waterTexture)
	}
	if len(backend.tiles) != 2 {
		t.Fatalf("water tiles drawn = %d, want 2", len(backend.tiles))
	}

	hq := backend.tiles[0]
	if hq.size != waterHQTileSize {
		t.Errorf("first tile size = %v, want HQ size %v", hq.size, waterHQTileSize)
	}
	if hq.height != 5 {
		t.Errorf("HQ tile height = %v, want 5", hq.height)
	}

	lq := backend.tiles[1]
	if lq.size != waterLQTileSize {
		t.Errorf("second tile size = %v, want LQ size %v", lq.size, waterLQTileSize)
	}
	if lq.height != -2 {
		t.Errorf("LQ tile height = %v, want -2", lq.height)
	}
}

func TestRenderWaterSkipsDryCells(t *testing.T) {
	r, backend, w, _ := newTestScene()

	w.Water = world.NewWaterGrids()
	w.Water.Heights = []float32{0}

	if err := r.RenderWorld(0); err != nil {
		t.Fatalf("RenderWorld: %v", err)
	}
	if len(backend.tiles) != 0 {
		t.Errorf("water tiles drawn = %d, want 0 for all-dry grids", len(backend.tiles))
	}
}
