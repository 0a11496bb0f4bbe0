// SPDX-License-Identifier: MIT
// Package: specimens/outcome
//
// errors.go - sentinel errors for the outcome package.
//
// All of them signal usage violations and surface as panics.

package outcome

import "errors"

// ErrNotAccepted is raised by MustGet on a Rejected outcome.
var ErrNotAccepted = errors.New("outcome: outcome is not accepted")

// ErrExhaustedStream is raised when a Stream is pulled after it produced the
// Exhausted marker.
var ErrExhaustedStream = errors.New("outcome: pulled from an exhausted stream")

// ErrInvalidThreshold is raised when a Guard is built with a threshold below 1.
var ErrInvalidThreshold = errors.New("outcome: exhaustion threshold must be at least 1")
