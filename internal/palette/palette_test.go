package palette_test

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/conics/internal/label"
	"github.com/irfansharif/conics/internal/palette"
)

func TestParseScheme(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want palette.Scheme
	}{
		{"default", palette.Default},
		{"mathematical", palette.Mathematical},
		{"Celestial", palette.Celestial},
		{"PRINT", palette.Print},
	} {
		got, err := palette.ParseScheme(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := palette.ParseScheme("neon")
	assert.ErrorIs(t, err, palette.ErrUnknownScheme)
}

func mustParse(t *testing.T, name string) palette.Scheme {
	s, err := palette.ParseScheme(name)
	require.NoError(t, err)
	return s
}

func TestSchemeNext(t *testing.T) {
	s := palette.Default
	seen := map[palette.Scheme]bool{}
	for i := 0; i < 4; i++ {
		seen[s] = true
		s = s.Next()
	}
	assert.Equal(t, palette.Default, s)
	assert.Len(t, seen, 4)
}

func TestColors(t *testing.T) {
	def := palette.Default.Colors()
	assert.Equal(t, "#e74c3c", def.Curve.Hex())
	assert.Equal(t, "#3498db", def.Primary.Hex())
	assert.Equal(t, "#f39c12", def.Secondary.Hex())
	assert.Equal(t, "#2c3e50", def.Accent.Hex())
	assert.Equal(t, "#ffffff", def.Background.Hex())
	assert.Equal(t, "#000000", def.Text.Hex())
	assert.Equal(t, "#e0e0e0", def.Grid.Hex())
	assert.Equal(t, "#666666", def.Axis.Hex())

	pr := palette.Print.Colors()
	assert.Equal(t, "#000000", pr.Curve.Hex())
	assert.Equal(t, "#000000", pr.Primary.Hex())
	assert.Equal(t, "#666666", pr.Secondary.Hex())

	assert.Equal(t, "#4facfe", palette.Celestial.Colors().Curve.Hex())
	assert.Equal(t, "#2c3e50", palette.Mathematical.Colors().Curve.Hex())
	assert.Equal(t, def, palette.Scheme(42).Colors())
}

func TestSwatch(t *testing.T) {
	assert.Len(t, palette.Default.Swatch(), 4)
	sw := palette.Mathematical.Swatch()
	require.Len(t, sw, 5)
	assert.Equal(t, "#3498db", sw[0].Hex())
	assert.Equal(t, "#9b59b6", sw[4].Hex())
	assert.Equal(t, "#cccccc", palette.Print.Swatch()[4].Hex())
}

func TestConicColor(t *testing.T) {
	assert.Equal(t, "#e74c3c", palette.ConicColor(label.Parabola, false).Hex())
	assert.Equal(t, "#3498db", palette.ConicColor(label.Ellipse, false).Hex())
	assert.Equal(t, "#2ecc71", palette.ConicColor(label.Circle, false).Hex())
	assert.Equal(t, "#9b59b6", palette.ConicColor(label.Hyperbola, false).Hex())
	assert.Equal(t, "#000000", palette.ConicColor(label.Circle, true).Hex())
}

func TestParseHex(t *testing.T) {
	c, err := palette.ParseHex("#3498db")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}, palette.RGBA(c))

	short, err := palette.ParseHex("#666")
	require.NoError(t, err)
	assert.Equal(t, "#666666", short.Hex())

	_, err = palette.ParseHex("3498db")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	black, white := "#000000", "#ffffff"
	for _, tc := range []struct {
		bg   string
		want string
	}{
		{"#ffffff", black},
		{"#000000", white},
		{"#f39c12", black}, // yiq 166
		{"#3498db", black}, // yiq 129
		{"#2c3e50", white},
		{"#e0e0e0", black},
		{"#808080", white}, // yiq 128, not above the threshold
	} {
		bg, err := palette.ParseHex(tc.bg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, palette.Contrast(bg).Hex(), "contrast on %s", tc.bg)
	}
}

func TestBrightened(t *testing.T) {
	c := colorful.Hsv(200, 0.5, 0.5)
	_, _, v := palette.Brightened(c, 0.2).Hsv()
	assert.InDelta(t, 0.7, v, 1e-9)
	_, _, v = palette.Brightened(c, 2).Hsv()
	assert.InDelta(t, 1, v, 1e-9)
	_, _, v = palette.Brightened(c, -2).Hsv()
	assert.InDelta(t, 0, v, 1e-9)
}
