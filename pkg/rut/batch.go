package rut

import "fmt"

// Result is the outcome of validating one element of a batch.
type Result struct {
	// Input is the element exactly as supplied.
	Input string `json:"input"`
	// Formatted is the canonical dotted form, set only when valid.
	Formatted string `json:"formatted,omitempty"`
	// Valid reports whether the element is a well-formed RUT with a
	// matching check digit (and an in-range body, when requested).
	Valid bool `json:"valid"`
	// Reason explains why the element is invalid; empty when valid.
	Reason string `json:"reason,omitempty"`
}

// ValidateAll validates each input independently and returns one Result
// per input, in input order. It never fails as a whole: parse errors,
// checksum mismatches, and range violations are all downgraded to the
// Reason field of the affected element, so one malformed input cannot
// disturb the rest of the batch.
func ValidateAll(inputs []string) []Result {
	return ValidateAllInRange(inputs, 0, 0)
}

// ValidateAllInRange is ValidateAll with the body-range check of
// ValidateInRange applied to each element. min and max both zero
// disables the range check.
func ValidateAllInRange(inputs []string, min, max uint64) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		results[i] = validateOne(in, min, max)
	}
	return results
}

func validateOne(in string, min, max uint64) Result {
	res := Result{Input: in}

	r, err := Parse(in)
	switch {
	case err != nil:
		res.Reason = err.Error()
	case !r.Valid():
		res.Reason = fmt.Sprintf("wrong check digit: expected %q, got %q", CheckDigit(r.body), r.Check())
	case !r.inRange(min, max):
		res.Reason = fmt.Sprintf("body %d is outside the allowed range", r.body)
	default:
		res.Valid = true
		res.Formatted = r.String()
	}
	return res
}
