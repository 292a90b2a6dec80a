package world

import (
	gomath "math"

	"github.com/lowtide/openworld/pkg/math"
)

// Weather holds the time-of-day derived rendering parameters.
type Weather struct {
	SkyTop      [3]float32
	SkyBottom   [3]float32
	Ambient     [3]float32
	DirectLight [3]float32
	// FogStart is the distance where fog begins; fog ends at the far clip.
	FogStart float32
	// FarClip is the weather-dependent far clipping distance.
	FarClip float32
}

// WeatherProvider resolves weather parameters for a time of day.
type WeatherProvider interface {
	// Lookup returns the weather for the given fractional hour in [0, 24).
	Lookup(hour float32) Weather
}

// WeatherTable interpolates linearly between hourly weather keyframes,
// wrapping around midnight.
type WeatherTable struct {
	entries [24]Weather
}

// NewWeatherTable builds a table from 24 hourly keyframes.
func NewWeatherTable(entries [24]Weather) *WeatherTable {
	return &WeatherTable{entries: entries}
}

// Lookup implements WeatherProvider.
func (t *WeatherTable) Lookup(hour float32) Weather {
	for hour < 0 {
		hour += 24
	}
	for hour >= 24 {
		hour -= 24
	}

	i := int(hour)
	j := (i + 1) % 24
	frac := hour - float32(i)

	a, b := t.entries[i], t.entries[j]
	return Weather{
		SkyTop:      lerp3(a.SkyTop, b.SkyTop, frac),
		SkyBottom:   lerp3(a.SkyBottom, b.SkyBottom, frac),
		Ambient:     lerp3(a.Ambient, b.Ambient, frac),
		DirectLight: lerp3(a.DirectLight, b.DirectLight, frac),
		FogStart:    a.FogStart + frac*(b.FogStart-a.FogStart),
		FarClip:     a.FarClip + frac*(b.FarClip-a.FarClip),
	}
}

func lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// SunDirection returns the normalized sun direction for a time of day given
// in minutes. The sun traverses the XZ plane over one day, peaking at noon.
func SunDirection(timeOfDayMinutes float32) math.Vec3 {
	theta := (float64(timeOfDayMinutes)/minutesPerDay - 0.5) * 2 * gomath.Pi
	return math.Vec3{
		X: float32(gomath.Sin(theta)),
		Y: 0,
		Z: float32(gomath.Cos(theta)),
	}.Normalize()
}

// DefaultWeatherTable returns a plausible clear-day cycle: dark blue nights,
// warm dawn/dusk, bright noon, with the far clip pulled in at night.
func DefaultWeatherTable() *WeatherTable {
	night := Weather{
		SkyTop:      [3]float32{0.02, 0.03, 0.08},
		SkyBottom:   [3]float32{0.05, 0.06, 0.12},
		Ambient:     [3]float32{0.10, 0.10, 0.16},
		DirectLight: [3]float32{0.15, 0.15, 0.25},
		FogStart:    40,
		FarClip:     180,
	}
	dawn := Weather{
		SkyTop:      [3]float32{0.25, 0.25, 0.45},
		SkyBottom:   [3]float32{0.90, 0.55, 0.35},
		Ambient:     [3]float32{0.35, 0.30, 0.30},
		DirectLight: [3]float32{0.90, 0.70, 0.50},
		FogStart:    60,
		FarClip:     250,
	}
	day := Weather{
		SkyTop:      [3]float32{0.25, 0.45, 0.85},
		SkyBottom:   [3]float32{0.70, 0.80, 0.95},
		Ambient:     [3]float32{0.55, 0.55, 0.55},
		DirectLight: [3]float32{1.00, 0.98, 0.90},
		FogStart:    90,
		FarClip:     450,
	}
	dusk := Weather{
		SkyTop:      [3]float32{0.20, 0.18, 0.40},
		SkyBottom:   [3]float32{0.85, 0.45, 0.30},
		Ambient:     [3]float32{0.30, 0.26, 0.28},
		DirectLight: [3]float32{0.80, 0.55, 0.40},
		FogStart:    60,
		FarClip:     250,
	}

	var entries [24]Weather
	for h := 0; h < 24; h++ {
		switch {
		case h < 5 || h >= 22:
			entries[h] = night
		case h < 8:
			entries[h] = dawn
		case h < 19:
			entries[h] = day
		default:
			entries[h] = dusk
		}
	}
	return NewWeatherTable(entries)
}
