package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdifarro/portfolio/internal/content"
)

func TestBuild_AlternatesByPosition(t *testing.T) {
	exps := []content.Experience{
		{Title: "a", Category: content.CategoryAcademic, Start: content.MustParseMonth("Oct 2025")},
		{Title: "b", Category: content.CategoryAcademic, Start: content.MustParseMonth("Sep 2023")},
		{Title: "c", Category: content.CategoryIndustry, Start: content.MustParseMonth("May 2022")},
		{Title: "d", Category: content.CategoryIndustry, Start: content.MustParseMonth("May 2022")},
		{Title: "e", Category: content.CategoryAcademic, Start: content.MustParseMonth("Jan 2020")},
	}

	layout := Build(exps)
	require.Len(t, layout.Entries, 5)
	want := []Side{Left, Right, Left, Right, Left}
	for i, e := range layout.Entries {
		assert.Equal(t, want[i], e.Side, "entry %d", i)
		assert.Equal(t, i, e.Index)
		assert.Equal(t, exps[i].Title, e.Title)
	}
	assert.True(t, layout.Entries[0].IsLeft())
	assert.False(t, layout.Entries[1].IsLeft())
}

func TestBuild_PresentMarkerWithoutData(t *testing.T) {
	layout := Build(nil)
	assert.Equal(t, "Present", layout.PresentMarker)
	assert.Empty(t, layout.Entries)
}

func TestBuild_DatesAndBullets(t *testing.T) {
	layout := Build([]content.Experience{
		{
			Title:        "Open",
			Organization: "Lab",
			Start:        content.MustParseMonth("Sep 2023"),
			End:          content.Present(),
			Bullets:      []string{"first", "second"},
		},
		{
			Title: "Closed",
			Start: content.MustParseMonth("Feb 2021"),
			End:   content.Until(content.MustParseMonth("Aug 2021")),
		},
	})

	open := layout.Entries[0]
	assert.Equal(t, "Sep 2023", open.Badge)
	assert.Equal(t, "Sep 2023 – Present", open.DateRange)
	assert.Equal(t, []string{"first", "second"}, open.Bullets)

	closed := layout.Entries[1]
	assert.Equal(t, "Feb 2021 – Aug 2021", closed.DateRange)
	assert.Empty(t, closed.Bullets)
}
