package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting surface
type DiffuseLight struct {
	Emission Texture // Emitted radiance, possibly spatially varying
}

// NewDiffuseLight creates a new light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new light whose emission comes from a texture
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface. Lights absorb every incoming ray.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light regardless of view direction or face
func (d *DiffuseLight) Emit(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	return d.Emission.Evaluate(hit.UV, hit.Point)
}
