package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultPerlinPointCount is the gradient table size used by NewNoiseTexture
const DefaultPerlinPointCount = 256

// Perlin generates gradient noise from random unit vectors and three
// permutation tables. Tables are built once and never modified.
type Perlin struct {
	gradients []core.Vec3
	permX     []int
	permY     []int
	permZ     []int
	mask      int
}

// NewPerlin builds noise tables of size pointCount. pointCount must be a power
// of two because lattice coordinates are wrapped with a bit mask.
func NewPerlin(pointCount int, sampler core.Sampler) *Perlin {
	if pointCount <= 0 || pointCount&(pointCount-1) != 0 {
		panic(fmt.Sprintf("perlin point count must be a power of two, got %d", pointCount))
	}

	gradients := make([]core.Vec3, pointCount)
	for i := range gradients {
		gradients[i] = core.RandomUnitVector(sampler)
	}

	return &Perlin{
		gradients: gradients,
		permX:     generatePermutation(pointCount, sampler),
		permY:     generatePermutation(pointCount, sampler),
		permZ:     generatePermutation(pointCount, sampler),
		mask:      pointCount - 1,
	}
}

// generatePermutation returns a Fisher-Yates shuffle of 0..n-1
func generatePermutation(n int, sampler core.Sampler) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		target := int(sampler.Get1D() * float64(i+1))
		if target > i {
			target = i
		}
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smoothly varying noise in roughly [-1, 1] at point p
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&p.mask]^
					p.permY[(j+dj)&p.mask]^
					p.permZ[(k+dk)&p.mask]]
			}
		}
	}

	return trilinearGradient(c, u, v, w)
}

// trilinearGradient blends the lattice gradients dotted with the offset to
// each corner, using Hermite smoothing of the weights
func trilinearGradient(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving the weight and doubling
// the frequency each octave
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
