package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a wrapped object about the Y axis.
// Positive angles turn +X toward -Z (right-handed, counter-clockwise seen from +Y).
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	child := object.BoundingBox()
	corners := r3.Box{
		Min: r3.Vec{X: child.X.Min, Y: child.Y.Min, Z: child.Z.Min},
		Max: r3.Vec{X: child.X.Max, Y: child.Y.Max, Z: child.Z.Max},
	}.Vertices()

	bbox := core.EmptyAABB
	for _, corner := range corners {
		p := r.toWorld(core.NewVec3(corner.X, corner.Y, corner.Z))
		bbox = core.NewAABBFromBoxes(bbox, core.AABB{
			X: core.NewInterval(p.X, p.X),
			Y: core.NewInterval(p.Y, p.Y),
			Z: core.NewInterval(p.Z, p.Z),
		})
	}
	r.bbox = core.NewAABB(bbox.X, bbox.Y, bbox.Z)

	return r
}

// toObject rotates a world-space vector by -angle
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit intersects the ray with the object in its unrotated frame
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the world-space box around all eight rotated corners
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
