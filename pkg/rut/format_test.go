package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		separators bool
		expected   string
	}{
		{
			name:       "with separators",
			input:      "123456785",
			separators: true,
			expected:   "12.345.678-5",
		},
		{
			name:       "without separators",
			input:      "123456785",
			separators: false,
			expected:   "12345678-5",
		},
		{
			name:       "already formatted input",
			input:      "12.345.678-5",
			separators: true,
			expected:   "12.345.678-5",
		},
		{
			name:       "seven digit body",
			input:      "9007890K",
			separators: true,
			expected:   "9.007.890-K",
		},
		{
			name:       "lowercase check upper-cased",
			input:      "9007890k",
			separators: false,
			expected:   "9007890-K",
		},
		{
			name:       "leading zeros dropped",
			input:      "01.234.567-4",
			separators: true,
			expected:   "1.234.567-4",
		},
		{
			name:       "single digit body keeps the dash",
			input:      "1-9",
			separators: true,
			expected:   "1-9",
		},
		{
			name:       "three digit body gets no dot",
			input:      "100-7",
			separators: true,
			expected:   "100-7",
		},
		{
			name:       "four digit body gets one dot",
			input:      "10008",
			separators: true,
			expected:   "1.000-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.input, tt.separators)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_MalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{
			name:     "empty",
			input:    "",
			wantCode: CodeEmptyInput,
		},
		{
			name:     "letters",
			input:    "hello",
			wantCode: CodeBadCharacter,
		},
		{
			name:     "too short",
			input:    "7",
			wantCode: CodeTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.input, true)
			require.Error(t, err)
			assert.True(t, HasCode(err, tt.wantCode))
		})
	}
}

// A checksum-wrong but well-formed RUT still formats; formatting is a
// syntactic operation.
func TestFormat_DoesNotCheckChecksum(t *testing.T) {
	got, err := Format("12.345.678-0", true)
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-0", got)
}

// Round-trip: a consistent (body, check) pair survives format then
// extract unchanged.
func TestFormat_ExtractRoundTrip(t *testing.T) {
	for _, body := range []uint64{1, 100, 999999, 1234567, 12345678, 76123456, 99999999} {
		r := New(body)

		formatted, err := Format(r.Format(false), true)
		require.NoError(t, err)

		parts, err := Extract(formatted)
		require.NoError(t, err)
		assert.Equal(t, body, parts.Body)
		assert.Equal(t, r.Check(), parts.Check)
	}
}
