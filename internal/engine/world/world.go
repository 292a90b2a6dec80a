package world

// World aggregates the scene collections and environment state the renderer
// traverses. Collections are stable for the duration of one frame.
type World struct {
	Characters []*Character
	Instances  []*Instance
	Vehicles   []*Vehicle

	Clock   *Clock
	Weather WeatherProvider
	Water   *WaterGrids
}

// New creates an empty world with a default clock and weather cycle.
func New() *World {
	return &World{
		Clock:   NewClock(12),
		Weather: DefaultWeatherTable(),
	}
}
