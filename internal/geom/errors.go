package geom

import "errors"

// ErrInvalidBounds indicates a degenerate or inverted viewing window, or a
// pixel surface without positive area.
var ErrInvalidBounds = errors.New("geom: invalid bounds")
