package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMonth_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want Month
	}{
		{"Oct 2025", Month{2025, time.October}},
		{"October 2025", Month{2025, time.October}},
		{"Sept 2019", Month{2019, time.September}},
		{"sep 2019", Month{2019, time.September}},
		{"  May   2024 ", Month{2024, time.May}},
		{"2021-02", Month{2021, time.February}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "Someday", "13/2020", "Oct"} {
		_, err := ParseMonth(in)
		assert.Error(t, err, in)
	}
}

func TestMonth_CompareAndString(t *testing.T) {
	oct := MustParseMonth("Oct 2025")
	may := MustParseMonth("May 2024")
	dec := MustParseMonth("Dec 2024")

	assert.True(t, oct.After(may))
	assert.True(t, may.Before(dec))
	assert.Equal(t, 0, oct.Compare(MustParseMonth("October 2025")))
	assert.Equal(t, "Oct 2025", oct.String())
	assert.Equal(t, "", Month{}.String())
}

func TestEndDate_YAML(t *testing.T) {
	var v struct {
		A EndDate `yaml:"a"`
		B EndDate `yaml:"b"`
		C EndDate `yaml:"c"`
	}
	err := yaml.Unmarshal([]byte("a: present\nb: Aug 2023\n"), &v)
	require.NoError(t, err)

	assert.True(t, v.A.IsPresent())
	assert.Equal(t, PresentLabel, v.A.String())
	assert.False(t, v.B.IsPresent())
	assert.Equal(t, "Aug 2023", v.B.String())
	assert.True(t, v.C.IsPresent(), "omitted end is present")
}

func TestMonth_YAMLError(t *testing.T) {
	var v struct {
		Start Month `yaml:"start"`
	}
	err := yaml.Unmarshal([]byte("start: whenever\n"), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized month")
}
