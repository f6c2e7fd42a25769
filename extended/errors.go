// SPDX-License-Identifier: MIT
// Package extended: sentinel error set.
// Callers match these via errors.Is; the specfunc package re-exports them.

package extended

import "errors"

var (
	// ErrOverflow is returned when a value cannot be collapsed into the
	// float64 range. The collapsed value is ±Inf as a best-effort result.
	ErrOverflow = errors.New("extended: overflow")

	// ErrUnderflow is returned when a non-zero value collapses to zero.
	// It is informational: the collapsed value (0) is still usable.
	ErrUnderflow = errors.New("extended: underflow")
)
