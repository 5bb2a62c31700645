package render

import "math"

// Vec is a 2D point used to build shapes
type Vec struct {
	X, Y float64
}

// Transform maps art drawn facing up into screen space. The zero value is
// the identity.
type Transform struct {
	CX, CY float64 // pivot
	Angle  float64 // clockwise radians
}

// Apply maps a point through the transform
func (t Transform) Apply(v Vec) Vec {
	if t.Angle == 0 {
		return v
	}
	sin, cos := math.Sincos(t.Angle)
	dx, dy := v.X-t.CX, v.Y-t.CY
	return Vec{X: t.CX + dx*cos - dy*sin, Y: t.CY + dx*sin + dy*cos}
}

// ApplyAll maps every point in place and returns pts
func (t Transform) ApplyAll(pts []Vec) []Vec {
	for i := range pts {
		pts[i] = t.Apply(pts[i])
	}
	return pts
}
