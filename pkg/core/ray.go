package core

// Delta is the origin offset applied along a surface normal for secondary rays
const Delta = 0.1

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction. The direction must not
// be zero; use NewValidRay when it may be.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewValidRay creates a new ray, rejecting a zero direction
func NewValidRay(origin, direction Vec3) (Ray, error) {
	dir, err := Direction(direction)
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// NewRayWithOffset creates a ray whose origin is moved by Delta along normal,
// towards the side the direction points to. A direction tangent to the
// surface leaves the origin in place.
func NewRayWithOffset(origin, direction, normal Vec3) Ray {
	ray := NewRay(origin, direction)
	nd := AlignZero(ray.Direction.Dot(normal))
	switch {
	case nd > 0:
		ray.Origin = origin.Add(normal.Multiply(Delta))
	case nd < 0:
		ray.Origin = origin.Add(normal.Multiply(-Delta))
	}
	return ray
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	if IsZero(t) {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}
