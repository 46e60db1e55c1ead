package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", E(CodeInvalidArgument, "op", "bad", nil), http.StatusBadRequest},
		{"unauthorized", E(CodeUnauthorized, "op", "nope", nil), http.StatusUnauthorized},
		{"not found", E(CodeNotFound, "op", "gone", nil), http.StatusNotFound},
		{"conflict", E(CodeConflict, "op", "dup", nil), http.StatusConflict},
		{"unavailable", E(CodeUnavailable, "op", "down", nil), http.StatusServiceUnavailable},
		{"internal", E(CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
		{"sentinel not found", ErrNotFound, http.StatusNotFound},
		{"plain error", errors.New("anything"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessageHidesWrappedError(t *testing.T) {
	inner := errors.New("dial tcp 10.0.0.1:27017: connection refused")
	err := E(CodeUnavailable, "SectionService.GetAbout", "profile store unavailable", inner)

	msg := Message(err)
	require.Equal(t, "profile store unavailable", msg)
	assert.NotContains(t, msg, "dial tcp")
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), Message(errors.New("raw")))
}

func TestIsCodeAndUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := E(CodeConflict, "op", "dup", inner)

	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.ErrorIs(t, err, inner)
}
