package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox creates a closed axis-aligned box with opposite corners a and b,
// built from six outward-facing quads that share one material
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	minCorner := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	maxCorner := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(maxCorner.X-minCorner.X, 0, 0)
	dy := core.NewVec3(0, maxCorner.Y-minCorner.Y, 0)
	dz := core.NewVec3(0, 0, maxCorner.Z-minCorner.Z)

	sides := NewHittableList()
	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), dx, dy, mat))          // front
	sides.Add(NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, maxCorner.Z), dz.Negate(), dy, mat)) // right
	sides.Add(NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), dx.Negate(), dy, mat)) // back
	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dz, dy, mat))          // left
	sides.Add(NewQuad(core.NewVec3(minCorner.X, maxCorner.Y, maxCorner.Z), dx, dz.Negate(), mat)) // top
	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dx, dz, mat))          // bottom

	return sides
}
