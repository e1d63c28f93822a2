package conic

import "errors"

// ErrInvalidConfig indicates coefficients that do not describe a parabola.
var ErrInvalidConfig = errors.New("conic: invalid config")
