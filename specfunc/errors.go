// SPDX-License-Identifier: MIT
// Package specfunc: sentinel error set and evaluation status.
// All functions return these sentinels (wrapped with the operation tag via
// %w); tests and callers match them with errors.Is.

package specfunc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/extended"
)

var (
	// ErrDomain is returned when an argument lies outside the function's
	// domain (NaN input, n < 1 for ExprelN). Never retried or corrected.
	ErrDomain = errors.New("specfunc: domain error")

	// ErrOverflow is the extended package's overflow sentinel. The result
	// still carries a best-effort value (±Inf) and StatusOverflow.
	ErrOverflow = extended.ErrOverflow

	// ErrUnderflow is the extended package's underflow sentinel. The result
	// carries Val=0 and StatusUnderflow; it is reported, not fatal.
	ErrUnderflow = extended.ErrUnderflow
)

// Status classifies the outcome of one evaluation.
type Status int

const (
	// StatusSuccess marks a fully valid value and error estimate.
	StatusSuccess Status = iota
	// StatusUnderflow marks a result indistinguishable from zero.
	StatusUnderflow
	// StatusOverflow marks a result beyond the representable range.
	StatusOverflow
	// StatusDomain marks an argument outside the function's domain.
	StatusDomain
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUnderflow:
		return "underflow"
	case StatusOverflow:
		return "overflow"
	case StatusDomain:
		return "domain error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Err maps the status back to its sentinel (nil for StatusSuccess).
func (s Status) Err() error {
	switch s {
	case StatusUnderflow:
		return ErrUnderflow
	case StatusOverflow:
		return ErrOverflow
	case StatusDomain:
		return ErrDomain
	default:
		return nil
	}
}

// funcErrorf wraps a sentinel with the operation tag.
func funcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
