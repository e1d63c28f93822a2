package render

import "github.com/irfansharif/conics/internal/geom"

// TransformMatrix computes the complete transformation from canvas
// coordinates to OpenGL NDC for a w×h viewport: zoom around the viewport
// center, then pan, then the flip into clip space.
func TransformMatrix(w, h int, zoom, panX, panY float64) [16]float32 {
	transform := zoomTransform(w, h, zoom).Mul(geom.Identity)
	transform = geom.MakeAffine(1, 0, panX, 0, 1, panY).Mul(transform)
	transform = screenToNDC(w, h).Mul(transform)
	return affineToMatrix4(transform)
}

// zoomTransform scales uniformly around the viewport center.
func zoomTransform(w, h int, zoom float64) geom.Affine {
	cx, cy := float64(w)/2.0, float64(h)/2.0
	translateToOrigin := geom.MakeAffine(1, 0, -cx, 0, 1, -cy)
	uniformScale := geom.MakeAffine(zoom, 0, 0, 0, zoom, 0)
	translateBack := geom.MakeAffine(1, 0, cx, 0, 1, cy)
	return translateBack.Mul(uniformScale.Mul(translateToOrigin))
}

// screenToNDC maps pixels (origin top-left, y down) onto [-1, 1]² with y up.
func screenToNDC(w, h int) geom.Affine {
	return geom.MakeAffine(
		2.0/float64(w), 0, -1,
		0, -2.0/float64(h), 1,
	)
}

// affineToMatrix4 converts an affine transform to a column-major 4x4 matrix.
func affineToMatrix4(t geom.Affine) [16]float32 {
	return [16]float32{
		float32(t.A), float32(t.D), 0, 0,
		float32(t.B), float32(t.E), 0, 0,
		0, 0, 1, 0,
		float32(t.C), float32(t.F), 0, 1,
	}
}
