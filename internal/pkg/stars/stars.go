// Package stars maps an average rating onto the five-star display used
// across course cards and review rows.
package stars

import "math"

// Breakdown is the discrete star rendering of an average rating.
// Full + Empty plus one for Half always totals five.
type Breakdown struct {
	Full  int  `json:"full_stars"`
	Half  bool `json:"has_half_star"`
	Empty int  `json:"empty_stars"`
}

// ForRating converts an average rating into a star breakdown. The caller
// guarantees 0 <= rating <= 5; out-of-range input must be clamped before
// calling. A fractional part of at least 0.5 earns a half star, so 4.99
// renders as four and a half stars rather than five.
func ForRating(rating float64) Breakdown {
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}

	return Breakdown{
		Full:  full,
		Half:  half,
		Empty: empty,
	}
}
