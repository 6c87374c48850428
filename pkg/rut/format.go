package rut

import (
	"strconv"
	"strings"
)

// Format parses s and renders it canonically. With separators the body
// digits are grouped in threes from the right and joined with dots
// ("12.345.678-5"); without, only the dash before the check digit
// remains ("12345678-5"). The dash is always present. Leading zeros in
// the input are not preserved: the body is re-rendered from its integer
// value.
//
// Format fails with the same FormatError conditions as Parse — it never
// silently accepts malformed input. It does not require the checksum to
// match; use Validate first when that matters.
func Format(s string, separators bool) (string, error) {
	r, err := Parse(s)
	if err != nil {
		return "", err
	}
	return r.Format(separators), nil
}

// Format renders the RUT, optionally with dot group separators.
func (r RUT) Format(separators bool) string {
	body := strconv.FormatUint(r.body, 10)
	if separators {
		body = groupThousands(body)
	}
	return body + "-" + string(r.check)
}

// groupThousands inserts a dot every three digits, counting from the
// right: "1234567" -> "1.234.567".
func groupThousands(digits string) string {
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
