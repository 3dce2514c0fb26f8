package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invalid-argument errors raised at the engine boundary
	ErrUnknownSeriesKey  = errors.New("unknown series key")
	ErrUnknownFillMethod = errors.New("unknown fill method")
	ErrInvalidOutput     = errors.New("invalid output mode")
	ErrUnknownStatistic  = errors.New("unknown statistic")
	ErrUnknownPreset     = errors.New("unknown summary preset")

	// Batch errors
	ErrModelNotFound = errors.New("model not found")
)

// Error constructors with context
func NewUnknownSeriesKeyError(key string) error {
	return fmt.Errorf("%w: no time series with key %q", ErrUnknownSeriesKey, key)
}

func NewUnknownFillMethodError(method string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFillMethod, method)
}

func NewInvalidOutputError(output string) error {
	return fmt.Errorf("%w: %q is not a valid output option", ErrInvalidOutput, output)
}

func NewUnknownStatisticError(op string) error {
	return fmt.Errorf("%w: %q", ErrUnknownStatistic, op)
}

func NewUnknownPresetError(preset string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrUnknownSeriesKey) ||
		errors.Is(err, ErrUnknownFillMethod) ||
		errors.Is(err, ErrInvalidOutput) ||
		errors.Is(err, ErrUnknownStatistic) ||
		errors.Is(err, ErrUnknownPreset)
}

func IsModelNotFound(err error) bool {
	return errors.Is(err, ErrModelNotFound)
}
