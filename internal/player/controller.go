// Package player implements the playback state machine driving the
// animation: play/pause/finished states, loop policy, fps, and time-driven
// frame advancement.
package player

import "time"

// State is the playback state.
type State int

// Playback states. A controller starts Paused; Finished is only reachable
// by ticking past the last frame in Once mode.
const (
	Paused State = iota
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "paused"
	}
}

// LoopMode selects what happens when playback crosses the last frame.
type LoopMode int

// Loop wraps back to the first frame; Once clamps and finishes.
const (
	Loop LoopMode = iota
	Once
)

func (m LoopMode) String() string {
	if m == Once {
		return "once"
	}
	return "loop"
}

// TickResult reports what a Tick call did.
type TickResult int

const (
	// TickUnchanged: nothing moved (paused, finished, or no frames).
	TickUnchanged TickResult = iota
	// TickAdvanced: the frame index moved (including a loop wrap to 0).
	TickAdvanced
	// TickFinished: this tick crossed the last frame in Once mode and
	// playback just transitioned to Finished.
	TickFinished
)

// Controller is the animation playback state machine. It never fails at
// runtime: every input is clamped or saturated rather than rejected. It is
// not safe for concurrent use; the event loop owns it exclusively.
type Controller struct {
	fps        int
	frameCount int
	current    int
	state      State
	loopMode   LoopMode
}

// New creates a paused controller with the given fps (floored at 1) and
// looping playback. The frame count is attached after loading.
func New(fps int) *Controller {
	c := &Controller{state: Paused, loopMode: Loop}
	c.SetFPS(fps)
	return c
}

// SetFrameCount attaches the loaded sequence length and clamps the current
// index into the new range.
func (c *Controller) SetFrameCount(count int) {
	if count < 0 {
		count = 0
	}
	c.frameCount = count
	c.current = c.clampIndex(c.current)
}

// Play starts playback. Called while Finished it restarts from the first
// frame rather than resuming on the clamped last index.
func (c *Controller) Play() {
	if c.state == Finished {
		c.current = 0
	}
	c.state = Playing
}

// Toggle flips between Playing and Paused. From Finished it behaves like
// Play, restarting from the first frame.
func (c *Controller) Toggle() {
	switch c.state {
	case Playing:
		c.state = Paused
	default:
		c.Play()
	}
}

// StepForward moves one frame forward, clamped at the last frame. The
// playback state is unchanged.
func (c *Controller) StepForward() {
	c.current = c.clampIndex(c.current + 1)
}

// StepBackward moves one frame back, clamped at the first frame. The
// playback state is unchanged.
func (c *Controller) StepBackward() {
	c.current = c.clampIndex(c.current - 1)
}

// SetCurrentFrame jumps to the given index, clamped into range.
func (c *Controller) SetCurrentFrame(index int) {
	c.current = c.clampIndex(index)
}

// SetFPS updates the playback rate, saturating at a minimum of 1.
func (c *Controller) SetFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	c.fps = fps
}

// SetLoopMode updates the loop policy; it takes effect on the next
// boundary crossing.
func (c *Controller) SetLoopMode(mode LoopMode) {
	c.loopMode = mode
}

// Tick advances playback by one frame interval. On crossing past the last
// index, Loop mode wraps to 0 and keeps playing; Once mode clamps to the
// last index and transitions to Finished.
func (c *Controller) Tick() TickResult {
	if c.state != Playing || c.frameCount == 0 {
		return TickUnchanged
	}
	if c.current+1 < c.frameCount {
		c.current++
		return TickAdvanced
	}
	if c.loopMode == Loop {
		c.current = 0
		return TickAdvanced
	}
	c.state = Finished
	return TickFinished
}

// CurrentFrame returns the current frame index (0 when no frames are loaded).
func (c *Controller) CurrentFrame() int {
	return c.current
}

// FrameCount returns the loaded sequence length.
func (c *Controller) FrameCount() int {
	return c.frameCount
}

// FPS returns the playback rate.
func (c *Controller) FPS() int {
	return c.fps
}

// State returns the playback state.
func (c *Controller) State() State {
	return c.state
}

// LoopMode returns the loop policy.
func (c *Controller) LoopMode() LoopMode {
	return c.loopMode
}

// IsPlaying reports whether playback is running.
func (c *Controller) IsPlaying() bool {
	return c.state == Playing
}

// IntervalMS returns the frame interval in whole milliseconds. At very
// high fps integer division can yield 0; callers treat that as "redraw as
// fast as polled".
func (c *Controller) IntervalMS() int {
	return 1000 / c.fps
}

// Interval returns the frame interval as a duration.
func (c *Controller) Interval() time.Duration {
	return time.Duration(c.IntervalMS()) * time.Millisecond
}

func (c *Controller) clampIndex(index int) int {
	if c.frameCount == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= c.frameCount {
		return c.frameCount - 1
	}
	return index
}
