package player_test

import (
	"testing"

	"github.com/cascii/cascii-terminal-decorator/internal/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, fps, frames int) *player.Controller {
	t.Helper()
	c := player.New(fps)
	c.SetFrameCount(frames)
	return c
}

func TestInitialState(t *testing.T) {
	c := player.New(24)
	assert.Equal(t, player.Paused, c.State())
	assert.Equal(t, player.Loop, c.LoopMode())
	assert.Equal(t, 24, c.FPS())
	assert.Equal(t, 0, c.CurrentFrame())
	assert.Equal(t, 0, c.FrameCount())
	assert.False(t, c.IsPlaying())
}

func TestPlayAndToggle(t *testing.T) {
	c := newController(t, 24, 3)

	c.Play()
	assert.True(t, c.IsPlaying())

	c.Toggle()
	assert.Equal(t, player.Paused, c.State())

	c.Toggle()
	assert.Equal(t, player.Playing, c.State())
}

func TestStepClamping(t *testing.T) {
	c := newController(t, 24, 5)

	// Interior: forward then backward returns to the original index
	c.SetCurrentFrame(2)
	c.StepForward()
	c.StepBackward()
	assert.Equal(t, 2, c.CurrentFrame())

	// Clamped at both boundaries, idempotently
	c.SetCurrentFrame(0)
	c.StepBackward()
	c.StepBackward()
	assert.Equal(t, 0, c.CurrentFrame())

	c.SetCurrentFrame(4)
	c.StepForward()
	c.StepForward()
	assert.Equal(t, 4, c.CurrentFrame())

	// Stepping never disturbs the playback state
	assert.Equal(t, player.Paused, c.State())
}

func TestSetCurrentFrameClamping(t *testing.T) {
	c := newController(t, 24, 4)

	c.SetCurrentFrame(99)
	assert.Equal(t, 3, c.CurrentFrame())
	c.SetCurrentFrame(-5)
	assert.Equal(t, 0, c.CurrentFrame())

	empty := player.New(24)
	empty.SetCurrentFrame(7)
	assert.Equal(t, 0, empty.CurrentFrame())
}

func TestFPSSaturation(t *testing.T) {
	c := player.New(24)

	c.SetFPS(0)
	assert.Equal(t, 1, c.FPS())
	c.SetFPS(-3)
	assert.Equal(t, 1, c.FPS())

	c.SetFPS(1)
	assert.Equal(t, 1000, c.IntervalMS())
	c.SetFPS(24)
	assert.Equal(t, 41, c.IntervalMS())
	c.SetFPS(2000)
	assert.Equal(t, 0, c.IntervalMS())
}

func TestLoopModeTicking(t *testing.T) {
	c := newController(t, 24, 3)
	c.Play()

	// Cycles 0 -> 1 -> 2 -> 0 without ever leaving Playing
	want := []int{1, 2, 0, 1, 2, 0}
	for i, expected := range want {
		require.Equal(t, player.TickAdvanced, c.Tick(), "tick %d", i)
		assert.Equal(t, expected, c.CurrentFrame())
		assert.Equal(t, player.Playing, c.State())
	}
}

func TestOnceModeTicking(t *testing.T) {
	c := newController(t, 24, 3)
	c.SetLoopMode(player.Once)
	c.Play()

	assert.Equal(t, player.TickAdvanced, c.Tick())
	assert.Equal(t, player.TickAdvanced, c.Tick())
	assert.Equal(t, 2, c.CurrentFrame())

	// Boundary crossing clamps and finishes
	assert.Equal(t, player.TickFinished, c.Tick())
	assert.Equal(t, player.Finished, c.State())
	assert.Equal(t, 2, c.CurrentFrame())

	// Further ticks report no change
	assert.Equal(t, player.TickUnchanged, c.Tick())
	assert.Equal(t, 2, c.CurrentFrame())
}

func TestTickWhilePausedOrEmpty(t *testing.T) {
	c := newController(t, 24, 3)
	assert.Equal(t, player.TickUnchanged, c.Tick())
	assert.Equal(t, 0, c.CurrentFrame())

	empty := player.New(24)
	empty.Play()
	assert.Equal(t, player.TickUnchanged, empty.Tick())
}

func TestResumeFromFinishedRestarts(t *testing.T) {
	run := func(t *testing.T, resume func(c *player.Controller)) {
		c := newController(t, 24, 2)
		c.SetLoopMode(player.Once)
		c.Play()
		c.Tick()
		require.Equal(t, player.TickFinished, c.Tick())
		require.Equal(t, player.Finished, c.State())

		resume(c)
		assert.Equal(t, player.Playing, c.State())
		assert.Equal(t, 0, c.CurrentFrame())
	}

	t.Run("play", func(t *testing.T) { run(t, (*player.Controller).Play) })
	t.Run("toggle", func(t *testing.T) { run(t, (*player.Controller).Toggle) })
}

func TestLoopModeSwitchTakesEffectOnBoundary(t *testing.T) {
	c := newController(t, 24, 2)
	c.Play()

	// Looping past the boundary first
	c.Tick()
	assert.Equal(t, player.TickAdvanced, c.Tick())
	assert.Equal(t, 0, c.CurrentFrame())

	// Switching to Once changes only the next boundary crossing
	c.SetLoopMode(player.Once)
	assert.Equal(t, player.TickAdvanced, c.Tick())
	assert.Equal(t, player.TickFinished, c.Tick())
	assert.Equal(t, player.Finished, c.State())
}

func TestSetFrameCountClampsCurrent(t *testing.T) {
	c := newController(t, 24, 10)
	c.SetCurrentFrame(9)

	c.SetFrameCount(4)
	assert.Equal(t, 3, c.CurrentFrame())

	c.SetFrameCount(0)
	assert.Equal(t, 0, c.CurrentFrame())
}

func TestStateStrings(t *testing.T) {
	c := newController(t, 24, 1)
	assert.Equal(t, "paused", c.State().String())
	c.Play()
	assert.Equal(t, "playing", c.State().String())
	assert.Equal(t, "loop", c.LoopMode().String())
	c.SetLoopMode(player.Once)
	assert.Equal(t, "once", c.LoopMode().String())
}
