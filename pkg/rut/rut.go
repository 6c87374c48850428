// Package rut validates, formats, and derives check digits for Chilean
// national identification numbers (RUT/RUN).
//
// A RUT is a numeric body plus a single check character in [0-9K],
// computed from the body by a modulo-11 checksum. Accepted input
// formats:
//
//   - with dots and dash: "12.345.678-5"
//   - dash only: "12345678-5"
//   - no separators: "123456785"
//   - "k" or "K" as check digit
//
// Every operation is a pure function of its input; the package holds no
// state and is safe for concurrent use.
package rut

import (
	"strconv"
	"strings"
)

// RUT is a parsed identification number: a numeric body and the check
// character supplied with it. It is a value type constructed via Parse
// or New; the check character is upper-cased on construction. The pair
// is not necessarily consistent — Valid reports whether the check
// character matches the body.
type RUT struct {
	body  uint64
	check byte
}

// New builds a RUT for body with its correct check digit. The result
// always satisfies Valid.
func New(body uint64) RUT {
	return RUT{body: body, check: checkByte(body)}
}

// Parse cleans s and splits it into a RUT. The last character of the
// cleaned input is the check digit; everything before it is the body,
// with leading zeros tolerated ("01234567-4" has body 1234567). Parse
// fails with a FormatError when the cleaned input is empty, shorter
// than two characters, contains a character outside [0-9K], or has a
// body too large to represent.
//
// Parse does not verify the checksum; use Valid or Validate for that.
func Parse(s string) (RUT, error) {
	cleaned, err := Clean(s)
	if err != nil {
		return RUT{}, err
	}
	if len(cleaned) < 2 {
		return RUT{}, newFormatError(CodeTooShort, s, "RUT needs at least one body digit and a check digit")
	}

	bodyStr, check := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1]
	if check != 'K' && (check < '0' || check > '9') {
		return RUT{}, newFormatError(CodeBadCharacter, s, "check digit must be 0-9 or K")
	}
	for i := 0; i < len(bodyStr); i++ {
		if bodyStr[i] < '0' || bodyStr[i] > '9' {
			return RUT{}, newFormatError(CodeBadCharacter, s, "RUT body must contain only digits")
		}
	}

	body, err := strconv.ParseUint(bodyStr, 10, 64)
	if err != nil {
		return RUT{}, newFormatError(CodeBodyOverflow, s, "RUT body has too many digits")
	}
	return RUT{body: body, check: check}, nil
}

// Body returns the numeric body.
func (r RUT) Body() uint64 {
	return r.body
}

// Check returns the check character supplied at construction, "0"-"9"
// or "K".
func (r RUT) Check() string {
	return string(r.check)
}

// Valid reports whether the check character matches the one the
// modulo-11 algorithm derives from the body.
func (r RUT) Valid() bool {
	return r.check == checkByte(r.body)
}

// String returns the canonical dotted form, e.g. "12.345.678-5".
func (r RUT) String() string {
	return r.Format(true)
}

// Clean strips the formatting characters (dots, dashes, whitespace)
// from s and upper-cases the rest. It fails with a FormatError only
// when nothing remains; it does not verify the remaining characters —
// that is Parse's job. Clean is idempotent.
func Clean(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", newFormatError(CodeEmptyInput, s, "RUT cannot be empty")
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range strings.ToUpper(s) {
		switch {
		case c == '.' || c == '-' || c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// formatting characters
		default:
			b.WriteRune(c)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return "", newFormatError(CodeEmptyInput, s, "RUT is empty after cleaning")
	}
	return cleaned, nil
}

// Parts is the structured decomposition of a RUT produced by Extract.
type Parts struct {
	// Body is the numeric body.
	Body uint64 `json:"body"`
	// BodyString is the body's decimal digits, without leading zeros.
	BodyString string `json:"body_string"`
	// Check is the check character, "0"-"9" or "K".
	Check string `json:"check"`
	// Joined is BodyString immediately followed by Check, the
	// unformatted RUT.
	Joined string `json:"joined"`
}

// Extract parses s and returns its parts. It fails under the same
// conditions as Parse.
func Extract(s string) (Parts, error) {
	r, err := Parse(s)
	if err != nil {
		return Parts{}, err
	}
	bodyStr := strconv.FormatUint(r.body, 10)
	return Parts{
		Body:       r.body,
		BodyString: bodyStr,
		Check:      r.Check(),
		Joined:     bodyStr + r.Check(),
	}, nil
}
