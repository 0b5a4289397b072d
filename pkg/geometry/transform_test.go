package geometry

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
)

var yAxis = r3.Vec{X: 0, Y: 1, Z: 0}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// randomTestScene builds a mixed list of deterministic primitives
func randomTestScene(random *rand.Rand, count int) []Hittable {
	sampler := core.NewRandomSampler(random)
	objects := make([]Hittable, 0, count)
	for i := 0; i < count; i++ {
		center := core.RandomVec3Range(sampler, -10, 10)
		switch random.Intn(5) {
		case 0:
			objects = append(objects, NewSphere(center, 0.2+random.Float64(), testMaterial()))
		case 1:
			end := center.Add(core.RandomVec3Range(sampler, -1, 1))
			objects = append(objects, NewMovingSphere(center, end, 0.2+random.Float64(), testMaterial()))
		case 2:
			u := core.RandomVec3Range(sampler, -2, 2)
			v := core.RandomVec3Range(sampler, -2, 2)
			objects = append(objects, NewQuad(center, u, v, testMaterial()))
		case 3:
			size := core.RandomVec3Range(sampler, 0.1, 2)
			objects = append(objects, NewBox(center, center.Add(size), testMaterial()))
		default:
			size := core.RandomVec3Range(sampler, 0.1, 2)
			box := NewBox(core.Vec3{}, size, testMaterial())
			objects = append(objects, NewTranslate(NewRotateY(box, random.Float64()*360), center))
		}
	}
	return objects
}

func randomRay(random *rand.Rand) core.Ray {
	sampler := core.NewRandomSampler(random)
	origin := core.RandomVec3Range(sampler, -15, 15)
	target := core.RandomVec3Range(sampler, -10, 10)
	return core.NewRayAtTime(origin, target.Subtract(origin), random.Float64())
}

func TestTranslate_RoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		original := randomTestScene(random, 1)[0]
		offset := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		roundTrip := NewTranslate(NewTranslate(original, offset), offset.Negate())

		for j := 0; j < 20; j++ {
			ray := randomRay(random)
			want, wantHit := original.Hit(ray, forwardInterval, nil)
			got, gotHit := roundTrip.Hit(ray, forwardInterval, nil)

			if wantHit != gotHit {
				// Only a ray grazing an edge may flip under rounding
				continue
			}
			if !wantHit {
				continue
			}
			if math.Abs(want.T-got.T) > 1e-6 {
				t.Fatalf("Expected t=%f, got %f", want.T, got.T)
			}
			if !vecClose(want.Point, got.Point, 1e-6) {
				t.Fatalf("Expected point %v, got %v", want.Point, got.Point)
			}
			if !vecClose(want.Normal, got.Normal, 1e-9) || want.FrontFace != got.FrontFace {
				t.Fatalf("Expected normal %v (front=%t), got %v (front=%t)",
					want.Normal, want.FrontFace, got.Normal, got.FrontFace)
			}
		}
	}
}

func TestTranslate_MovesHitAndBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	moved := NewTranslate(sphere, core.NewVec3(3, 0, 0))

	ray := core.NewRay(core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := moved.Hit(ray, forwardInterval, nil)
	if !isHit {
		t.Fatal("Expected hit on translated sphere")
	}
	if !vecClose(hit.Point, core.NewVec3(3, 0, 1), 1e-9) {
		t.Errorf("Expected hit point (3,0,1), got %v", hit.Point)
	}

	box := moved.BoundingBox()
	if !vecClose(box.Min(), core.NewVec3(2, -1, -1), 1e-12) || !vecClose(box.Max(), core.NewVec3(4, 1, 1), 1e-12) {
		t.Errorf("Unexpected translated box %v", box)
	}

	// The original position is now empty
	original := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := moved.Hit(original, forwardInterval, nil); isHit {
		t.Error("Expected miss at the untranslated position")
	}
}

func TestRotateY_MatchesReferenceRotation(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		angle := random.Float64()*720 - 360
		r := NewRotateY(NewSphere(core.Vec3{}, 1, testMaterial()), angle)
		radians := angle * math.Pi / 180

		p := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		expected := fromR3(r3.Rotate(toR3(p), radians, yAxis))

		if got := r.toWorld(p); !vecClose(got, expected, 1e-9) {
			t.Fatalf("Rotating %v by %f: expected %v, got %v", p, angle, expected, got)
		}
		if back := r.toObject(r.toWorld(p)); !vecClose(back, p, 1e-9) {
			t.Fatalf("Expected object/world round trip to return %v, got %v", p, back)
		}
	}
}

func TestRotateY_HitPointAndNormal(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		angle := random.Float64() * 360
		radians := angle * math.Pi / 180

		// Quad in the XY plane facing +Z, offset so rotation moves it
		corner := core.NewVec3(1, -0.5, 2)
		quad := NewQuad(corner, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial())
		rotated := NewRotateY(quad, angle)

		// Aim at the rotated quad's center from its front side
		center := fromR3(r3.Rotate(toR3(core.NewVec3(1.5, 0, 2)), radians, yAxis))
		normal := fromR3(r3.Rotate(r3.Vec{X: 0, Y: 0, Z: 1}, radians, yAxis))
		ray := core.NewRay(center.Add(normal.Multiply(3)), normal.Negate())

		hit, isHit := rotated.Hit(ray, forwardInterval, nil)
		if !isHit {
			t.Fatalf("Angle %f: expected hit on rotated quad", angle)
		}
		if !vecClose(hit.Point, center, 1e-9) {
			t.Fatalf("Angle %f: expected hit point %v, got %v", angle, center, hit.Point)
		}
		if !hit.FrontFace || !vecClose(hit.Normal, normal, 1e-9) {
			t.Fatalf("Angle %f: expected front face normal %v, got %v (front=%t)", angle, normal, hit.Normal, hit.FrontFace)
		}
	}
}

func TestRotateY_BoundingBoxContainsRotatedCorners(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, -2), core.NewVec3(1, 1, 2), testMaterial())
	rotated := NewRotateY(box, 45)
	bounds := rotated.BoundingBox()

	child := box.BoundingBox()
	corners := r3.Box{Min: toR3(child.Min()), Max: toR3(child.Max())}.Vertices()
	for _, corner := range corners {
		p := fromR3(r3.Rotate(corner, math.Pi/4, yAxis))
		if !bounds.X.Contains(p.X) || !bounds.Y.Contains(p.Y) || !bounds.Z.Contains(p.Z) {
			t.Errorf("Rotated corner %v outside bounds %v", p, bounds)
		}
	}

	// A 2x4 footprint turned 45 degrees spans (1+2)·√2 on both x and z
	expected := 3 * math.Sqrt2
	if math.Abs(bounds.X.Size()-expected) > 1e-3 || math.Abs(bounds.Z.Size()-expected) > 1e-3 {
		t.Errorf("Expected x and z extents near %f, got %f and %f", expected, bounds.X.Size(), bounds.Z.Size())
	}
}

func TestRotateY_ThenTranslateLikeCornellBlocks(t *testing.T) {
	block := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), testMaterial())
	placed := NewTranslate(NewRotateY(block, 15), core.NewVec3(265, 0, 295))

	// Straight down onto the block top, near its rotated center
	center := fromR3(r3.Rotate(r3.Vec{X: 82.5, Y: 0, Z: 82.5}, 15*math.Pi/180, yAxis))
	center = center.Add(core.NewVec3(265, 0, 295))
	ray := core.NewRay(core.NewVec3(center.X, 555, center.Z), core.NewVec3(0, -1, 0))

	hit, isHit := placed.Hit(ray, forwardInterval, nil)
	if !isHit {
		t.Fatal("Expected to hit the top of the placed block")
	}
	if math.Abs(hit.Point.Y-330) > 1e-6 {
		t.Errorf("Expected hit on the top face y=330, got %v", hit.Point)
	}
	if !vecClose(hit.Normal, core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected top normal (0,1,0), got %v", hit.Normal)
	}
}
