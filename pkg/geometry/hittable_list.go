package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an ordered collection of objects searched linearly
type HittableList struct {
	objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = core.NewAABBFromBoxes(l.bbox, object.BoundingBox())
}

// Objects returns the objects in insertion order
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit among all objects. Each hit narrows the
// upper bound so later objects can only report closer intersections.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes. An empty list has a
// padded degenerate box at the origin.
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.objects) == 0 {
		return core.NewAABBFromPoints(core.Vec3{}, core.Vec3{})
	}
	return l.bbox
}
