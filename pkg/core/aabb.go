package core

// minAxisThickness is the smallest extent any AABB axis may have
const minAxisThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB contains no points and is never hit
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB contains every point
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates a new AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB with a and b as opposite corners
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(min(a.X, b.X), max(a.X, b.X)),
		NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	)
}

// NewAABBFromBoxes returns an AABB that bounds both a and b
func NewAABBFromBoxes(a, b AABB) AABB {
	return AABB{
		X: MergeIntervals(a.X, b.X),
		Y: MergeIntervals(a.Y, b.Y),
		Z: MergeIntervals(a.Z, b.Z),
	}
}

// padToMinimums widens any axis thinner than minAxisThickness so flat
// primitives still have a volume the slab test can hit
func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < minAxisThickness {
		aabb.X = aabb.X.Expand(minAxisThickness)
	}
	if aabb.Y.Size() < minAxisThickness {
		aabb.Y = aabb.Y.Expand(minAxisThickness)
	}
	if aabb.Z.Size() < minAxisThickness {
		aabb.Z = aabb.Z.Expand(minAxisThickness)
	}
}

// AxisInterval returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// A zero direction component divides to ±Inf, which leaves that axis unconstrained
// when the origin lies inside the slab and rejects the ray otherwise.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max
	for axis := 0; axis < 3; axis++ {
		interval := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (interval.Min - origin) * invDirection
		t1 := (interval.Max - origin) * invDirection

		// Swap on direction sign rather than comparing t0 and t1, so an
		// empty axis (Min=+Inf, Max=-Inf) always yields an empty span
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		// NaN (origin exactly on a slab plane with zero direction) fails both tests
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Add returns the box translated by offset
func (aabb AABB) Add(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}
