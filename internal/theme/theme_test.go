package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_DefaultsDark(t *testing.T) {
	s := NewSettings(Default)
	assert.Equal(t, Dark, s.Mode())
	assert.True(t, s.IsDark())
	assert.Equal(t, Markers{Active: "theme-dark", Inactive: "theme-light"}, s.Markers())

	assert.Equal(t, Dark, NewSettings("").Mode())
}

func TestSettings_ToggleTwiceIsIdentity(t *testing.T) {
	for _, start := range []Mode{Dark, Light} {
		s := NewSettings(start)
		s.Toggle()
		assert.NotEqual(t, start, s.Mode())
		s.Toggle()
		assert.Equal(t, start, s.Mode())
	}
}

func TestSettings_MarkersAreExclusive(t *testing.T) {
	s := NewSettings(Dark)
	before := s.Markers()
	for i := 0; i < 4; i++ {
		got := s.Toggle()
		m := s.Markers()
		assert.Equal(t, got.Class(), m.Active)
		assert.NotEqual(t, m.Active, m.Inactive)
		assert.Equal(t, before.Active, m.Inactive)
		assert.Equal(t, before.Inactive, m.Active)
		before = m
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Light ")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	m, err = ParseMode("DARK")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	_, err = ParseMode("sepia")
	assert.Error(t, err)
}
