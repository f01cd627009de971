package timer

// CountdownState names the phases of the countdown timer.
type CountdownState string

const (
	StateIdle       CountdownState = "idle"
	StateConfigured CountdownState = "configured"
	StateRunning    CountdownState = "running"
	StatePaused     CountdownState = "paused"
	StateFinished   CountdownState = "finished"
)

// Chime is invoked once when the countdown reaches zero. Implementations live
// in the presentation layer (the TUI rings the terminal bell).
type Chime interface {
	Play()
}

// Countdown is a single-session countdown timer. It is not persisted; the
// owner drives it with one Tick per second while running.
type Countdown struct {
	state     CountdownState
	total     int
	remaining int
	chime     Chime
}

func NewCountdown(chime Chime) *Countdown {
	return &Countdown{state: StateIdle, chime: chime}
}

// Configure sets the budget from hours/minutes/seconds, each clamped to its
// natural range (hours 0-23, minutes and seconds 0-59). A zero budget leaves
// the timer idle.
func (c *Countdown) Configure(hours, minutes, seconds int) {
	hours = clamp(hours, 0, 23)
	minutes = clamp(minutes, 0, 59)
	seconds = clamp(seconds, 0, 59)

	total := hours*3600 + minutes*60 + seconds
	if total == 0 {
		c.state = StateIdle
		c.total = 0
		c.remaining = 0
		return
	}
	c.state = StateConfigured
	c.total = total
	c.remaining = total
}

// Start begins or resumes the countdown. Without a configured budget it does
// nothing.
func (c *Countdown) Start() {
	if c.state == StateConfigured || c.state == StatePaused {
		c.state = StateRunning
	}
}

// Pause stops advancing while retaining the remaining value.
func (c *Countdown) Pause() {
	if c.state == StateRunning {
		c.state = StatePaused
	}
}

// Tick advances the countdown by one second. On reaching zero the timer
// enters the terminal finished state and the chime plays once.
func (c *Countdown) Tick() {
	if c.state != StateRunning {
		return
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = StateFinished
		if c.chime != nil {
			c.chime.Play()
		}
	}
}

// Reset returns to idle from any state.
func (c *Countdown) Reset() {
	c.state = StateIdle
	c.total = 0
	c.remaining = 0
}

func (c *Countdown) State() CountdownState { return c.state }
func (c *Countdown) Remaining() int        { return c.remaining }
func (c *Countdown) Total() int            { return c.total }

// Progress reports the consumed fraction of the budget in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.total-c.remaining) / float64(c.total)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
