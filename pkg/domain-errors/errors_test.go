package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("underlying cause")

func TestError_Message(t *testing.T) {
	t.Run("message wins over cause", func(t *testing.T) {
		err := Wrap(errCause, CodeValidation, "bad value")
		assert.Equal(t, "bad value", err.Error())
	})

	t.Run("cause used when message empty", func(t *testing.T) {
		err := Wrap(errCause, CodeValidation, "")
		assert.Equal(t, "underlying cause", err.Error())
	})

	t.Run("code used when nothing else set", func(t *testing.T) {
		err := &Error{Code: CodeInternal}
		assert.Equal(t, "internal_error", err.Error())
	})
}

func TestWrap_PreservesCause(t *testing.T) {
	err := Wrap(errCause, CodeValidation, "bad value")
	require.ErrorIs(t, err, errCause)

	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeValidation, de.Code)
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"nil error", nil, CodeValidation, false},
		{"plain error", errCause, CodeValidation, false},
		{"matching code", New(CodeInvalidInput, "missing"), CodeInvalidInput, true},
		{"different code", New(CodeInvalidInput, "missing"), CodeValidation, false},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", New(CodeValidation, "bad")), CodeValidation, true},
		{"inner coded error", Wrap(New(CodeInvalidInput, "missing"), CodeInternal, "outer"), CodeInvalidInput, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCode(tt.err, tt.code))
			assert.Equal(t, tt.want, Is(tt.err, tt.code))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errCause))
	assert.Equal(t, CodeInternal, CodeOf(Wrap(New(CodeInvalidInput, "x"), CodeInternal, "y")))
	assert.Equal(t, CodeValidation, CodeOf(fmt.Errorf("ctx: %w", New(CodeValidation, "bad"))))
}
