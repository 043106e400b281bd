package models

import "errors"

// ErrValidation marks a malformed payload rejected before any
// persistence call.
var ErrValidation = errors.New("validation failed")
