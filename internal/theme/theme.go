// Package theme is the page-wide light/dark mode flag.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the presentation mode.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Default is the mode a new visitor sees.
const Default = Dark

// ParseMode accepts "dark" or "light" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("unknown theme mode %q", s)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Class is the marker applied to the page root for this mode.
func (m Mode) Class() string {
	return "theme-" + string(m)
}

// Markers names the two mutually exclusive page markers.
type Markers struct {
	Active   string
	Inactive string
}

// Settings is the explicit settings context handed to the render tree. Toggle is
// its only mutator.
type Settings struct {
	mode Mode
}

// NewSettings starts in mode m; anything other than Light starts dark.
func NewSettings(m Mode) *Settings {
	if m != Light {
		m = Dark
	}
	return &Settings{mode: m}
}

func (s *Settings) Mode() Mode { return s.mode }

// Toggle flips the mode and returns the new one.
func (s *Settings) Toggle() Mode {
	s.mode = s.mode.Opposite()
	return s.mode
}

// Markers returns the marker to apply and the one to remove.
func (s *Settings) Markers() Markers {
	return Markers{Active: s.mode.Class(), Inactive: s.mode.Opposite().Class()}
}

// IsDark is a template convenience.
func (s *Settings) IsDark() bool { return s.mode == Dark }
