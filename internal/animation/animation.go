// Package animation describes the hero entrance effects: a one-shot intro sequence and a
// scroll-bound scrub. Tweening itself happens in the browser; registrations here are
// handed to it as a manifest.
package animation

import (
	"errors"
	"fmt"
	"time"
)

// MaxIntro bounds the whole one-shot intro.
const MaxIntro = 1500 * time.Millisecond

var (
	ErrIntroTooLong = errors.New("intro exceeds maximum duration")
	ErrNoTargets    = errors.New("no animation targets")
)

// Tween is a visual state. Y is a vertical offset in pixels.
type Tween struct {
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
}

// Rest is the resting state every effect ends in.
var Rest = Tween{Y: 0, Opacity: 1, Scale: 1}

// Step animates one target from From to Rest. Overlap starts the step that long before
// the previous one ends.
type Step struct {
	Target   string
	From     Tween
	Duration time.Duration
	Overlap  time.Duration
}

// ScrollEffect interpolates From to To while the trigger scrolls between Start and End.
type ScrollEffect struct {
	Start string
	End   string
	From  Tween
	To    Tween
}

// At returns the state at progress p, clamped to [0, 1].
func (e ScrollEffect) At(p float64) Tween {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return Tween{
		Y:       lerp(e.From.Y, e.To.Y, p),
		Opacity: lerp(e.From.Opacity, e.To.Opacity, p),
		Scale:   lerp(e.From.Scale, e.To.Scale, p),
	}
}

func lerp(a, b, p float64) float64 { return a + (b-a)*p }

// Handle releases one registration. Release is idempotent.
type Handle interface {
	Release()
}

// Controller is the capability the page uses to register effects.
type Controller interface {
	Intro(steps ...Step) (Handle, error)
	Scrub(target string, effect ScrollEffect) (Handle, error)
}

// Schedule is a step placed on the intro timeline.
type Schedule struct {
	Step
	Offset time.Duration
}

// Plan places steps in sequence and returns the total running time.
func Plan(steps []Step) ([]Schedule, time.Duration, error) {
	if len(steps) == 0 {
		return nil, 0, ErrNoTargets
	}
	out := make([]Schedule, 0, len(steps))
	var cursor, total time.Duration
	for _, s := range steps {
		if s.Target == "" {
			return nil, 0, ErrNoTargets
		}
		if s.Duration <= 0 {
			return nil, 0, fmt.Errorf("step %q: duration must be positive", s.Target)
		}
		start := cursor - s.Overlap
		if start < 0 {
			start = 0
		}
		cursor = start + s.Duration
		total = max(total, cursor)
		out = append(out, Schedule{Step: s, Offset: start})
	}
	if total >= MaxIntro {
		return nil, 0, fmt.Errorf("%w: %s", ErrIntroTooLong, total)
	}
	return out, total, nil
}
