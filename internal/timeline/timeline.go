// Package timeline lays out the merged experience list as an alternating vertical
// timeline anchored by a present marker.
package timeline

import "github.com/mahdifarro/portfolio/internal/content"

// Side is the rail an entry renders on.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Layout is the renderable timeline.
type Layout struct {
	PresentMarker string
	Entries       []Entry
}

// Entry is one positioned experience.
type Entry struct {
	Index        int
	Side         Side
	Title        string
	Organization string
	Badge        string
	DateRange    string
	Bullets      []string
	Category     content.Category
	Logo         string
}

// IsLeft reports whether the entry renders on the left rail.
func (e Entry) IsLeft() bool { return e.Side == Left }

// Build positions entries in the given order. Sides alternate strictly by index.
func Build(experiences []content.Experience) Layout {
	entries := make([]Entry, 0, len(experiences))
	for i, exp := range experiences {
		entries = append(entries, Entry{
			Index:        i,
			Side:         SideFor(i),
			Title:        exp.Title,
			Organization: exp.Organization,
			Badge:        exp.Start.String(),
			DateRange:    FormatRange(exp.Start, exp.End),
			Bullets:      exp.Bullets,
			Category:     exp.Category,
			Logo:         exp.Logo,
		})
	}
	return Layout{PresentMarker: content.PresentLabel, Entries: entries}
}

// SideFor returns Left for even positions and Right for odd ones.
func SideFor(index int) Side {
	if index%2 == 0 {
		return Left
	}
	return Right
}

// FormatRange renders "Start – End", with an open end shown as Present.
func FormatRange(start content.Month, end content.EndDate) string {
	return start.String() + " – " + end.String()
}
