// Package motion drives enter and exit transitions with damped springs.
//
// A Transition is a value: Step returns the next frame and leaves the
// receiver untouched, so components can keep one per animated element and
// replace it on every FrameMsg.
package motion

import (
	"math"
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFPS is the frame rate used by components that do not pick one.
	DefaultFPS = 60
	// DefaultFrequency is the angular frequency of the reveal spring.
	DefaultFrequency = 7.0
	// DefaultDamping gives a quick reveal with a slight overshoot.
	DefaultDamping = 0.8

	epsilon = 0.01
)

var lastID int64

// NextID returns a process-unique animation id.
func NextID() string {
	return "motion-" + strconv.FormatInt(atomic.AddInt64(&lastID, 1), 10)
}

// FrameMsg asks the animation with the matching ID to advance one frame.
// Animations ignore frames addressed to other IDs.
type FrameMsg struct {
	ID   string
	Time time.Time
}

// Tick schedules the next FrameMsg for id at the given frame rate.
func Tick(id string, fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Transition animates a value in [0,1] toward a target.
type Transition struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewTransition builds a settled transition at 0.
func NewTransition(fps int, frequency, damping float64) Transition {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Transition{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Default returns a transition using the package defaults.
func Default() Transition {
	return NewTransition(DefaultFPS, DefaultFrequency, DefaultDamping)
}

// SetTarget points the transition at target, clamped to [0,1].
func (t Transition) SetTarget(target float64) Transition {
	t.target = clamp(target)
	return t
}

// Snap jumps straight to target without animating.
func (t Transition) Snap(target float64) Transition {
	t.target = clamp(target)
	t.position = t.target
	t.velocity = 0
	return t
}

// Step advances one frame. Once settled the position locks onto the target.
func (t Transition) Step() Transition {
	if t.Settled() {
		t.position = t.target
		t.velocity = 0
		return t
	}
	t.position, t.velocity = t.spring.Update(t.position, t.velocity, t.target)
	if math.Abs(t.position-t.target) < epsilon && math.Abs(t.velocity) < epsilon {
		t.position = t.target
		t.velocity = 0
	}
	return t
}

// Value returns the current position clamped to [0,1].
func (t Transition) Value() float64 {
	return clamp(t.position)
}

// Target returns the value the transition is moving toward.
func (t Transition) Target() float64 {
	return t.target
}

// Settled reports whether the transition has reached its target.
func (t Transition) Settled() bool {
	return math.Abs(t.position-t.target) < epsilon && math.Abs(t.velocity) < epsilon
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
