package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: gallery.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	assert.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sliders[1].step", "step must be positive", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sliders[1].step", validationErr.Field)
	require.Equal(t, "validation error: sliders[1].step: step must be positive", err.Error())

	assert.Equal(t, "validation error: manifest is nil", NewValidationError("", "manifest is nil", nil).Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	assert.Empty(t, parseErr.Error())
	assert.Nil(t, parseErr.Unwrap())
	assert.Empty(t, validationErr.Error())
	assert.Nil(t, validationErr.Unwrap())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "parse", err: NewParseError("a.yaml", 1, nil), want: ExitParse},
		{name: "wrapped validation", err: fmt.Errorf("render: %w", NewValidationError("name", "required", nil)), want: ExitValidation},
		{name: "other", err: stdErrors.New("boom"), want: ExitFailure},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
