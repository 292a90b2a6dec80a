package world

// Water grid constants. The world's water surface is described by two fixed
// square grids covering the same area: a dense near-field grid and a coarse
// far-field grid.
const (
	// WaterWorldSize is the world-space extent covered by both grids.
	WaterWorldSize float32 = 4096

	// WaterHQSize is the cell count per side of the high-quality grid.
	WaterHQSize = 128
	// WaterLQSize is the cell count per side of the low-quality grid.
	WaterLQSize = 64

	// WaterHQDistance is the radius around the camera inside which
	// high-quality tiles are drawn.
	WaterHQDistance float32 = 128

	// NoWaterIndex is the sentinel marking a dry cell; any index at or
	// above it carries no water.
	NoWaterIndex = 0x80
)

// WaterGrids maps grid cells to water height samples. Grids are read-only
// during a frame; the height values are supplied externally.
type WaterGrids struct {
	// HQ and LQ map cell (x, y) -> Heights index via x*size + y.
	HQ []uint8
	LQ []uint8
	// Heights holds the water surface heights referenced by the grids.
	Heights []float32
	// TextureName names the water surface texture in the registry.
	TextureName string
}

// NewWaterGrids creates grids with every cell dry.
func NewWaterGrids() *WaterGrids {
	w := &WaterGrids{
		HQ:          make([]uint8, WaterHQSize*WaterHQSize),
		LQ:          make([]uint8, WaterLQSize*WaterLQSize),
		TextureName: "water_old",
	}
	for i := range w.HQ {
		w.HQ[i] = NoWaterIndex
	}
	for i := range w.LQ {
		w.LQ[i] = NoWaterIndex
	}
	return w
}

// SetHQ assigns the height sample index for a high-quality cell.
func (w *WaterGrids) SetHQ(x, y int, sample uint8) {
	w.HQ[x*WaterHQSize+y] = sample
}

// SetLQ assigns the height sample index for a low-quality cell.
func (w *WaterGrids) SetLQ(x, y int, sample uint8) {
	w.LQ[x*WaterLQSize+y] = sample
}
