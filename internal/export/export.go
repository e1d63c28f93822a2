// Package export writes analyzed parabolas to files: SVG and PNG drawings of
// a laid out scene, the analysis as JSON, or the plain-text report.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/irfansharif/conics/internal/conic"
	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/scene"
)

// Format is an output format.
type Format int

const (
	SVG Format = iota
	PNG
	JSON
	Text
)

var formatNames = [...]string{SVG: "svg", PNG: "png", JSON: "json", Text: "text"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == Text {
		return ".txt"
	}
	return "." + f.String()
}

// ParseFormat looks a format up by name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(name, n) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Write renders an in the given format. The surface size and options only
// apply to the drawing formats.
func Write(w io.Writer, f Format, an conic.Analysis, rect geom.PixelRect, opts scene.RenderOptions) error {
	switch f {
	case JSON:
		return WriteJSON(w, an)
	case Text:
		_, err := io.WriteString(w, an.Report())
		return err
	case SVG, PNG:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	s, err := scene.Build(an, rect, opts)
	if err != nil {
		return err
	}
	if f == SVG {
		return WriteSVG(w, s)
	}
	return WritePNG(w, s)
}
