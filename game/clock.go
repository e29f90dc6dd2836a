package game

import "time"

// Clock owns the day counter and the in-game calendar date. The
// simulation has no background ticking; the clock advances only when
// the engine processes a travel action.
type Clock struct {
	state *State
}

// NewClock wraps the shared state's day counter.
func NewClock(state *State) *Clock {
	return &Clock{state: state}
}

// Day returns the current in-game day, starting at 1.
func (c *Clock) Day() int { return c.state.Day }

// Date returns the in-game calendar date for the current day.
func (c *Clock) Date() string { return c.state.Date }

// Advance moves the game forward one day.
func (c *Clock) Advance() {
	c.state.Day++
	if d, err := time.Parse("2006-01-02", c.state.Date); err == nil {
		c.state.Date = d.AddDate(0, 0, 1).Format("2006-01-02")
	}
}
