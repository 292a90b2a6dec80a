package world

const minutesPerDay = 24 * 60

// Clock tracks game time as minutes since the start of day zero.
type Clock struct {
	minutes float32
}

// NewClock creates a clock starting at the given hour of day.
func NewClock(hour float32) *Clock {
	return &Clock{minutes: hour * 60}
}

// Advance moves the clock forward by the given number of game minutes.
func (c *Clock) Advance(minutes float32) {
	c.minutes += minutes
}

// TimeOfDay returns the minutes elapsed in the current day, in [0, 1440).
func (c *Clock) TimeOfDay() float32 {
	tod := c.minutes
	for tod >= minutesPerDay {
		tod -= minutesPerDay
	}
	for tod < 0 {
		tod += minutesPerDay
	}
	return tod
}

// Hour returns the time of day in fractional hours, in [0, 24).
func (c *Clock) Hour() float32 {
	return c.TimeOfDay() / 60
}
