// SPDX-License-Identifier: MIT
// Package: specimens/property
//
// errors.go - sentinel errors for the property runner.

package property

import "errors"

// ErrGeneratorExhausted is reported when the generator gave out before a
// single trial could run.
var ErrGeneratorExhausted = errors.New("property: generator exhausted before the first trial")

// ErrInvalidOption indicates an option constructed with a meaningless value.
var ErrInvalidOption = errors.New("property: invalid option")
