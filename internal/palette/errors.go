package palette

import "errors"

// ErrUnknownScheme is returned by ParseScheme for names outside the closed set.
var ErrUnknownScheme = errors.New("palette: unknown scheme")
