package vmath

import "math"

// AABB is an axis-aligned box given by its min and max corners
type AABB struct {
	Min, Max Vec3F
}

// BoxAt builds a box whose bottom face is centered on base (feet position)
func BoxAt(base Vec3F, width, height, depth float64) AABB {
	hw, hd := width/2, depth/2
	return AABB{
		Min: Vec3F{base.X - hw, base.Y, base.Z - hd},
		Max: Vec3F{base.X + hw, base.Y + height, base.Z + hd},
	}
}

// Overlaps reports strict overlap, touching faces do not count
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// ClosestPoint returns the point inside the box nearest to p
func (a AABB) ClosestPoint(p Vec3F) Vec3F {
	return Vec3F{
		X: Clamp(p.X, a.Min.X, a.Max.X),
		Y: Clamp(p.Y, a.Min.Y, a.Max.Y),
		Z: Clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}

// Center returns the midpoint of the box
func (a AABB) Center() Vec3F {
	return V3FScale(V3FAdd(a.Min, a.Max), 0.5)
}

// Sphere is a collider given by center and radius
type Sphere struct {
	Center Vec3F
	Radius float64
}

// OverlapsBox reports whether the sphere strictly intersects the box
func (s Sphere) OverlapsBox(b AABB) bool {
	d := V3FSub(b.ClosestPoint(s.Center), s.Center)
	return V3FMagSq(d) < s.Radius*s.Radius
}

// ApproxEqual compares floats within eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
