package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5:30 pm", 17},
		{"5:30 p.m.", 17},
		{"5:30 P. M.", 17},
		{"9:15 am", 9},
		{"12:00 am", 0},
		{"12:00 pm", 12},
		{"7 pm", 19},
		{"08:45", 8},
		{"21:10", 21},
		{"21:10:59", 21},
		{"17:33:00 am", 17},
		{"13:00 pm", 13},
		{"9", 9},
		{" 06:00 ", 6},
		{"7.30 pm", 19},
		{"7.30 p.m.", 19},
		{"7.30", 7},
		{"07.30", 7},
		{"19.45", 19},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseHour(tc.in)
			assert.True(t, got.Known, "expected a known hour")
			assert.Equal(t, tc.want, got.Value)
		})
	}
}

func TestParseHourUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "mediodia", "99:00", "por la tarde"} {
		assert.Equal(t, UnknownHour, ParseHour(in), "input %q", in)
	}
}
