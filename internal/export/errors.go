package export

import "errors"

// ErrUnknownFormat is returned by ParseFormat for unsupported output formats.
var ErrUnknownFormat = errors.New("export: unknown format")
