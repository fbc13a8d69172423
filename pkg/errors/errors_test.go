package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("settings.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "settings.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "settings.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme", "must be auto, light or dark", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be auto, light or dark")
}

func TestProbeErrorIncludesProbeName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("service unavailable")
	err := NewProbeError("screen_reader", underlying)

	var probeErr *ProbeError
	require.ErrorAs(t, err, &probeErr)
	require.Equal(t, "screen_reader", probeErr.Probe)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "screen_reader")
}
