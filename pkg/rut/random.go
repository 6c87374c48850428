package rut

import "math/rand"

// Default bounds for Random, covering a realistic slice of the personal
// numbering range.
const (
	DefaultRandomMin uint64 = 10_000_000
	DefaultRandomMax uint64 = 25_000_000
)

// Random returns a syntactically valid RUT in canonical dotted form,
// with a body drawn uniformly from [DefaultRandomMin, DefaultRandomMax].
// It is meant for generating test fixtures: the output is
// mathematically valid but not tied to any real person, and the
// pseudo-random source is not cryptographic — do not use it where
// collision resistance or unpredictability matters.
func Random() string {
	return RandomIn(DefaultRandomMin, DefaultRandomMax)
}

// RandomIn is Random with explicit inclusive body bounds. Swapped
// bounds are tolerated.
func RandomIn(min, max uint64) string {
	if max < min {
		min, max = max, min
	}
	body := min
	if span := max - min + 1; span != 0 {
		body += rand.Uint64() % span //nolint:gosec // fixtures don't need crypto rand
	} else {
		// min..max covers the whole uint64 range
		body = rand.Uint64() //nolint:gosec // fixtures don't need crypto rand
	}
	return New(body).String()
}
