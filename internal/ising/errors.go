package ising

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidParameter indicates a run parameter outside its valid range.
	ErrInvalidParameter = errors.New("ising: invalid parameter")

	// ErrNumericalAnomaly indicates a NaN energy change or acceptance probability.
	ErrNumericalAnomaly = errors.New("ising: numerical anomaly")
)

// ParameterError names the parameter that failed validation.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("ising: invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// InvalidParameter returns a *ParameterError for field.
func InvalidParameter(field string, value any, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason}
}

// NumericalError wraps ErrNumericalAnomaly with the sweep and site that produced it.
type NumericalError struct {
	Step        int
	Site        Coord
	DeltaE      float64
	Probability float64
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("ising: numerical anomaly at step %d site %v (dE=%g, p=%g)",
		e.Step, e.Site, e.DeltaE, e.Probability)
}

func (e *NumericalError) Unwrap() error {
	return ErrNumericalAnomaly
}
