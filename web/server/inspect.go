package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// centerSampler returns 0.5 for every dimension, which puts camera rays through
// pixel centers and at the middle of the shutter interval
type centerSampler struct{}

func (centerSampler) Get1D() float64   { return 0.5 }
func (centerSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (centerSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

// extractMaterialInfo extracts material information, evaluating textures at the hit
func extractMaterialInfo(mat material.Material, hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = colorHex(albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = colorHex(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.DiffuseLight:
		emission := m.Emit(core.Ray{}, hit)
		properties["emission"] = vecArray(emission)
		properties["color"] = colorHex(emission)
		return "diffuse_light", properties

	case *material.Isotropic:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = colorHex(albedo)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// colorHex formats a linear color the way it appears in the PNG output
func colorHex(c core.Vec3) string {
	r, g, b := c.ToRGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// inspectPixel casts a ray through the center of pixel (x, y) and returns the first hit
func inspectPixel(sceneObj *scene.Scene, x, y int) (*material.HitRecord, bool) {
	camera := geometry.NewCamera(sceneObj.CameraConfig)
	ray := camera.GetRay(x, y, centerSampler{})
	return sceneObj.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)), centerSampler{})
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sceneObj.Preprocess(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width := sceneObj.CameraConfig.Width
	height := geometry.NewCamera(sceneObj.CameraConfig).ImageHeight()
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	hit, isHit := inspectPixel(sceneObj, pixelX, pixelY)
	if !isHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, properties := extractMaterialInfo(hit.Material, hit)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	})
}
