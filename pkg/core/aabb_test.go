package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	forward := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), forward, true},
		{"negative direction component", NewRay(NewVec3(5, 0.5, 0.5), NewVec3(-1, 0, 0)), forward, true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), forward, true},
		{"miss to the side", NewRay(NewVec3(0, 3, 5), NewVec3(0, 0, -1)), forward, false},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), forward, false},
		{"inside pointing out", NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), forward, true},
		{"inside pointing out negative", NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(-1, -1, 0)), forward, true},
		{"box beyond tMax", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), NewInterval(0.001, 3), false},
		{"box before tMin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), NewInterval(7, 100), false},
		{"axis parallel inside slabs", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), forward, true},
		{"axis parallel outside slab", NewRay(NewVec3(1.5, 0.5, 5), NewVec3(0, 0, -1)), forward, false},
		{"negative zero direction", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(math.Copysign(0, -1), 0, -1)), forward, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.rayT); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitOnSlabBoundaryDoesNotPanic(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	// Origin exactly on the x=0 plane with zero x direction gives 0 * Inf = NaN
	ray := NewRay(NewVec3(0, 0.5, 5), NewVec3(0, 0, -1))
	_ = box.Hit(ray, NewInterval(0.001, math.Inf(1)))

	// Zero direction everywhere
	still := NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(0, 0, 0))
	_ = box.Hit(still, NewInterval(0.001, math.Inf(1)))
}

// TestAABB_HitMatchesBruteForce compares the slab test against marching along the ray
func TestAABB_HitMatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := NewRandomSampler(random)
	box := NewAABBFromPoints(NewVec3(-1, -0.5, -2), NewVec3(1.5, 0.5, 1))

	for i := 0; i < 500; i++ {
		origin := RandomVec3Range(sampler, -4, 4)
		target := RandomVec3Range(sampler, -1.5, 1.5)
		ray := NewRay(origin, target.Subtract(origin))

		expected := false
		for step := 1; step <= 4000; step++ {
			p := ray.At(float64(step) / 1000.0)
			if box.X.Surrounds(p.X) && box.Y.Surrounds(p.Y) && box.Z.Surrounds(p.Z) {
				expected = true
				break
			}
		}

		got := box.Hit(ray, NewInterval(0.001, 4))
		// Marching can only miss thin grazing segments, never invent a hit
		if expected && !got {
			t.Fatalf("Ray %v crosses the box but slab test missed it", ray)
		}
	}
}

func TestAABB_PadsFlatAxes(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(-1, 2, -1), NewVec3(1, 2, 1))

	if math.Abs(flat.Y.Size()-minAxisThickness) > 1e-12 {
		t.Errorf("Expected y axis padded to %g, got %g", minAxisThickness, flat.Y.Size())
	}
	if !flat.Y.Surrounds(2) {
		t.Errorf("Padded axis %v should still contain the plane", flat.Y)
	}

	// A ray perpendicular to a flat box must still hit it
	ray := NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0))
	if !flat.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Expected perpendicular ray to hit padded flat box")
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		max      Vec3
		expected int
	}{
		{"x longest", NewVec3(3, 1, 1), 0},
		{"y longest", NewVec3(1, 3, 1), 1},
		{"z longest", NewVec3(1, 1, 3), 2},
		{"all equal", NewVec3(1, 1, 1), 2},
		{"x equals y, z shorter", NewVec3(2, 2, 1), 1},
		{"x equals z, y shorter", NewVec3(2, 1, 2), 2},
		{"y equals z, x shorter", NewVec3(1, 2, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABBFromPoints(NewVec3(0, 0, 0), tt.max)
			if got := box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAABB_MergeAndTranslate(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, -1, 0.5), NewVec3(3, 0.5, 4))

	merged := NewAABBFromBoxes(a, b)
	if !merged.Min().Equals(NewVec3(0, -1, 0)) || !merged.Max().Equals(NewVec3(3, 1, 4)) {
		t.Errorf("Unexpected merged box %v", merged)
	}

	if fromEmpty := NewAABBFromBoxes(EmptyAABB, a); fromEmpty != a {
		t.Errorf("Merging with empty box should be identity, got %v", fromEmpty)
	}

	moved := a.Add(NewVec3(1, 2, 3))
	if !moved.Min().Equals(NewVec3(1, 2, 3)) || !moved.Max().Equals(NewVec3(2, 3, 4)) {
		t.Errorf("Unexpected translated box %v", moved)
	}
}

func TestAABB_EmptyNeverHit(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	if EmptyAABB.Hit(ray, UniverseInterval) {
		t.Error("Empty box should never be hit")
	}
	if !UniverseAABB.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Universe box should always be hit")
	}
}
