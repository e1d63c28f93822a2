package label

import "errors"

// ErrDecodeMismatch indicates a string that is not a well-formed label.
var ErrDecodeMismatch = errors.New("label: decode mismatch")
