// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// errors.go - sentinel errors for the specimens package.
//
// Error policy:
//   - Generators never fail at run time; Rejected and Exhausted are values.
//   - The sentinels below mark usage violations and surface as panics from
//     constructors and option functions. Match them with errors.Is.

package specimens

import "errors"

// ErrInvalidWeight indicates a weighted choice with a weight below 1.
var ErrInvalidWeight = errors.New("specimens: weight must be at least 1")

// ErrInvalidOption indicates an option constructed with a meaningless value
// (nil seed, size outside [0, MaxSize], non-positive counts or thresholds).
var ErrInvalidOption = errors.New("specimens: invalid option")
