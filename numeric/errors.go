// SPDX-License-Identifier: MIT
// Package: specimens/numeric
//
// errors.go - sentinel errors for the numeric package.

package numeric

import "errors"

// ErrInvalidRange indicates a range whose min exceeds its max, or whose
// origin lies outside [min, max]. Range constructors panic with a value
// wrapping it.
var ErrInvalidRange = errors.New("numeric: invalid range")
