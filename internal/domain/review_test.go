package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStars(t *testing.T) {
	for stars := MinStars; stars <= MaxStars; stars++ {
		assert.True(t, ValidStars(stars))
	}
	assert.False(t, ValidStars(0))
	assert.False(t, ValidStars(6))
	assert.False(t, ValidStars(-1))
}

func TestRoundRating(t *testing.T) {
	cases := []struct {
		name  string
		sum   float64
		count int
		want  float64
	}{
		{"no reviews", 0, 0, 0},
		{"single review", 5, 1, 5.0},
		{"exact average", 8, 2, 4.0},
		{"rounds up", 14, 3, 4.7},  // 4.666...
		{"rounds down", 13, 3, 4.3}, // 4.333...
		{"half rounds up", 9, 2, 4.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, RoundRating(tc.sum, tc.count), 1e-9)
		})
	}
}
