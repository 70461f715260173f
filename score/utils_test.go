package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type trendTestCase struct {
	new           int
	old           int
	expectedTrend float64
}

func TestTrendPersen(t *testing.T) {
	cases := []trendTestCase{
		{0, 0, 0},
		{10, 10, 0},
		{0, 10, -100},
		{10, 0, 0},
		{3, 5, -40},
		{3, 2, 50},
		{1, 3, -66.7},
		{17, 16, 6.2},
		{19, 16, 18.8},
	}
	for _, c := range cases {
		assert.Equal(t, c.expectedTrend, TrendPersen(c.new, c.old), "new: %d, old: %d", c.new, c.old)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.57, Round(0.5678, 2))
	assert.Equal(t, 12.3, Round(12.34, 1))
	assert.Equal(t, -2.4, Round(-2.36, 1))
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 0.2, Round(0.25, 1))
	assert.Equal(t, 1.2, Round(1.25, 1))
	assert.Equal(t, -1.2, Round(-1.25, 1))
	assert.Equal(t, 2.0, Round(2.5, 0))
	assert.Equal(t, 4.0, Round(3.5, 0))
}
