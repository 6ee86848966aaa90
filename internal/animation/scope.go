package animation

import (
	"sync"
	"time"
)

// Scope owns the handles acquired while a view is mounted and releases them together.
type Scope struct {
	ctrl    Controller
	mu      sync.Mutex
	handles []Handle
	closed  bool
}

func NewScope(c Controller) *Scope {
	return &Scope{ctrl: c}
}

// Intro registers a one-shot intro owned by the scope.
func (s *Scope) Intro(steps ...Step) error {
	h, err := s.ctrl.Intro(steps...)
	if err != nil {
		return err
	}
	s.keep(h)
	return nil
}

// Scrub registers a scroll-bound effect owned by the scope.
func (s *Scope) Scrub(target string, effect ScrollEffect) error {
	h, err := s.ctrl.Scrub(target, effect)
	if err != nil {
		return err
	}
	s.keep(h)
	return nil
}

func (s *Scope) keep(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		h.Release()
		return
	}
	s.handles = append(s.handles, h)
}

// Close releases every handle, newest first. Later calls do nothing.
func (s *Scope) Close() {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.closed = true
	s.mu.Unlock()

	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Release()
	}
}

// Element ids the hero effects target.
const (
	HeroTarget     = "#hero"
	HeadlineTarget = "#hero-headline"
	CTATarget      = "#hero-cta"
)

// HeroIntro is the headline-then-CTA entrance sequence.
func HeroIntro() []Step {
	return []Step{
		{Target: HeadlineTarget, From: Tween{Y: 30, Opacity: 0, Scale: 1}, Duration: 800 * time.Millisecond},
		{Target: CTATarget, From: Tween{Y: 20, Opacity: 0, Scale: 1}, Duration: 600 * time.Millisecond, Overlap: 400 * time.Millisecond},
	}
}

// HeroScrub fades and shrinks the hero slightly while it scrolls out of view.
func HeroScrub() ScrollEffect {
	return ScrollEffect{
		Start: "top top",
		End:   "bottom top",
		From:  Tween{Y: 0, Opacity: 0.7, Scale: 0.98},
		To:    Rest,
	}
}

// MountHero registers both hero effects on s.
func MountHero(s *Scope) error {
	if err := s.Intro(HeroIntro()...); err != nil {
		return err
	}
	return s.Scrub(HeroTarget, HeroScrub())
}
