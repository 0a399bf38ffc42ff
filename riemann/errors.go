package riemann

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for non-positive densities or pressures,
	// non-finite values, or gamma <= 1. Nothing is solved or evaluated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConvergence is returned when the star pressure iteration fails.
	ErrConvergence = errors.New("star pressure did not converge")

	// ErrRegionClassification is returned when the wave speeds are not ordered
	// head <= tail <= contact <= shock, or when the left wave is not a
	// rarefaction or the right wave is not a shock.
	ErrRegionClassification = errors.New("wave speeds out of order")
)

type ConvergenceError struct {
	Iterations int
	Pressure   float64 // Last iterate
	Residual   float64 // F(Pressure)
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: %s after %d iterations, p = %g, F(p) = %g",
		ErrConvergence, e.Reason, e.Iterations, e.Pressure, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}

// RegionClassificationError carries the offending speeds. The initial
// condition is outside the left rarefaction / right shock configuration.
type RegionClassificationError struct {
	Speeds WaveSpeeds
}

func (e *RegionClassificationError) Error() string {
	s := e.Speeds
	return fmt.Sprintf("%v: head = %g, tail = %g, contact = %g, shock = %g",
		ErrRegionClassification, s.Head, s.Tail, s.Contact, s.Shock)
}

func (e *RegionClassificationError) Unwrap() error {
	return ErrRegionClassification
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
