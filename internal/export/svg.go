package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"

	"github.com/irfansharif/conics/internal/geom"
	"github.com/irfansharif/conics/internal/scene"
)

// num formats a pixel coordinate with at most two decimals and no redundant
// characters, e.g. 165 or 192.73 or .5.
type num float64

func (f num) String() string {
	v := float64(f)
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	return string(minify.Decimal([]byte(s), 0))
}

var anchors = [...]string{
	scene.AnchorStart:  "start",
	scene.AnchorMiddle: "middle",
	scene.AnchorEnd:    "end",
}

// WriteSVG writes s as a standalone SVG document. Every element carries its
// role as the class attribute.
func WriteSVG(w io.Writer, s scene.Scene) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))
	buf.WriteString("<title>")
	escape(&buf, s.Title)
	buf.WriteString("</title>\n")
	fmt.Fprintf(&buf, `<rect width="%s" height="%s" fill="%s"/>`+"\n", num(s.Width), num(s.Height), s.Background.Hex())

	for _, st := range s.Strokes {
		dash := ""
		if st.Dashed {
			dash = ` stroke-dasharray="6 4"`
		}
		fmt.Fprintf(&buf, `<polyline class="%s" points="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			st.Role, points(st.Points), st.Color.Hex(), num(st.Width), dash)
	}
	for _, m := range s.Markers {
		fmt.Fprintf(&buf, `<circle class="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			m.Role, num(m.Center.X), num(m.Center.Y), num(m.Radius), m.Fill.Hex(), m.Stroke.Hex(), num(m.StrokeWidth))
	}
	for _, t := range s.Texts {
		fmt.Fprintf(&buf, `<text class="%s" x="%s" y="%s" font-family="sans-serif" font-size="%s" fill="%s" text-anchor="%s">`,
			t.Role, num(t.At.X), num(t.At.Y), num(t.Size), t.Color.Hex(), anchors[t.Anchor])
		escape(&buf, t.Content)
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func points(ps []geom.Point) string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X).String())
		sb.WriteByte(',')
		sb.WriteString(num(p.Y).String())
	}
	return sb.String()
}

func escape(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s)) // bytes.Buffer writes never fail
}
