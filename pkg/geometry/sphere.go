package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over shutter time
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Motion   core.Vec3 // Displacement of the center between time 0 and time 1
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from start at time 0 to end at time 1
func NewMovingSphere(start, end core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(start.Subtract(rvec), start.Add(rvec))
	box1 := core.NewAABBFromPoints(end.Subtract(rvec), end.Add(rvec))
	return &Sphere{
		Center:   start,
		Motion:   end.Subtract(start),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromBoxes(box0, box1),
	}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	// A zero radius sphere has no surface to hit
	if s.Radius <= 0 {
		return nil, false
	}

	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic with b = -2h: a·t² - 2h·t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal has unit length when divided by the radius
	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the box covering the sphere over its whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
