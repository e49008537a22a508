package stars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRating(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   Breakdown
	}{
		{"zero", 0, Breakdown{Full: 0, Half: false, Empty: 5}},
		{"perfect", 5, Breakdown{Full: 5, Half: false, Empty: 0}},
		{"half", 3.5, Breakdown{Full: 3, Half: true, Empty: 1}},
		{"below half rounds down", 3.4, Breakdown{Full: 3, Half: false, Empty: 2}},
		{"just under five keeps half star", 4.99, Breakdown{Full: 4, Half: true, Empty: 0}},
		{"exact integer", 4, Breakdown{Full: 4, Half: false, Empty: 1}},
		{"low fraction", 0.5, Breakdown{Full: 0, Half: true, Empty: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForRating(tt.rating))
		})
	}
}

func TestForRatingAlwaysSumsToFive(t *testing.T) {
	for r := 0.0; r <= 5.0; r += 0.01 {
		b := ForRating(r)
		total := b.Full + b.Empty
		if b.Half {
			total++
		}
		assert.Equal(t, 5, total, "rating %.2f", r)
	}
}
