package render

import (
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/pkg/math"
)

// Water tile sizes in world units, derived from the fixed grid resolutions.
const (
	waterHQTileSize = world.WaterWorldSize / world.WaterHQSize
	waterLQTileSize = world.WaterWorldSize / world.WaterLQSize
)

// hqTileVisible reports whether a high-quality tile is close enough to draw.
// dist is the flat (XY) distance from the eye to the tile center.
func hqTileVisible(dist float32) bool {
	return dist-waterHQTileSize < world.WaterHQDistance
}

// lqTileVisible reports whether a low-quality tile draws: outside an inner
// exclusion radius slightly past the high-quality band, and within the far
// clip. The bands deliberately overlap; the HQ pass draws first and denser.
func lqTileVisible(dist, farClip float32) bool {
	if dist-waterHQTileSize/4 < world.WaterHQDistance {
		return false
	}
	return dist-waterLQTileSize/2 <= farClip
}

// renderWater draws both water grids: the dense near-field pass, then the
// coarse far-field pass. Cells carrying the dry sentinel are skipped.
func (r *Renderer) renderWater() {
	w := r.world.Water
	if w == nil {
		return
	}

	var handle uint32
	if tex, ok := r.textures.Lookup(w.TextureName); ok {
		handle = tex.Handle
	}
	r.backend.BeginWaterPass(handle)

	eye := r.camera.Position.XY()
	const offset = -world.WaterWorldSize / 2

	for x := 0; x < world.WaterHQSize; x++ {
		for y := 0; y < world.WaterHQSize; y++ {
			corner := math.Vec2{
				X: offset + waterHQTileSize*float32(x),
				Y: offset + waterHQTileSize*float32(y),
			}
			center := corner.Add(math.Vec2{X: waterHQTileSize / 2, Y: waterHQTileSize / 2})
			if !hqTileVisible(eye.Distance(center)) {
				continue
			}
			sample := w.HQ[x*world.WaterHQSize+y]
			if sample >= world.NoWaterIndex {
				continue
			}
			r.backend.DrawWaterTile(corner.X, corner.Y, waterHQTileSize, w.Heights[sample])
		}
	}

	for x := 0; x < world.WaterLQSize; x++ {
		for y := 0; y < world.WaterLQSize; y++ {
			corner := math.Vec2{
				X: offset + waterLQTileSize*float32(x),
				Y: offset + waterLQTileSize*float32(y),
			}
			center := corner.Add(math.Vec2{X: waterLQTileSize / 2, Y: waterLQTileSize / 2})
			if !lqTileVisible(eye.Distance(center), r.camera.Frustum.Far) {
				continue
			}
			sample := w.LQ[x*world.WaterLQSize+y]
			if sample >= world.NoWaterIndex {
				continue
			}
			r.backend.DrawWaterTile(corner.X, corner.Y, waterLQTileSize, w.Heights[sample])
		}
	}
}
