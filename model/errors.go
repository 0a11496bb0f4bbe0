// SPDX-License-Identifier: MIT
// Package: specimens/model
//
// errors.go - sentinel errors for the model package.

package model

import "errors"

// ErrNoApplicableAction is raised when, for some state, no definition is
// applicable and none asks to terminate. It points at inconsistent action
// definitions, not at unlucky data.
var ErrNoApplicableAction = errors.New("model: no applicable action and no terminate signal")
