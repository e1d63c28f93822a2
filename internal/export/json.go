package export

import (
	"encoding/json"
	"io"

	"github.com/irfansharif/conics/internal/conic"
)

// WriteJSON writes an as indented JSON.
func WriteJSON(w io.Writer, an conic.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(an)
}
