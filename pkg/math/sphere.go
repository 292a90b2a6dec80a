package math

// Sphere is a bounding sphere in model or world space.
type Sphere struct {
	Center Vec3
	Radius float32
}

// Contains reports whether the point lies inside the sphere.
func (s Sphere) Contains(p Vec3) bool {
	return s.Center.Distance(p) <= s.Radius
}
