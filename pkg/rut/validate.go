package rut

// DefaultMinBody is the default lower bound for plausible RUT bodies:
// numbers below roughly a million are not assigned in practice.
const DefaultMinBody uint64 = 1_000_000

// Validate reports whether s parses as a RUT whose check digit matches
// its body. It never returns an error: malformed input is simply
// invalid.
func Validate(s string) bool {
	r, err := Parse(s)
	return err == nil && r.Valid()
}

// ValidateInRange is Validate plus a plausibility check on the body,
// applied only after the checksum passes: the body must be at least min
// and, when max is non-zero, at most max. A zero max means no upper
// bound.
func ValidateInRange(s string, min, max uint64) bool {
	r, err := Parse(s)
	if err != nil || !r.Valid() {
		return false
	}
	return r.inRange(min, max)
}

func (r RUT) inRange(min, max uint64) bool {
	if r.body < min {
		return false
	}
	return max == 0 || r.body <= max
}
