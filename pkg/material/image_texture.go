package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// debugCyan is returned by an image texture with no pixel data
var debugCyan = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], origin top-left
}

// NewImageTexture creates a new image texture from linear float pixels
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureRGB8 creates an image texture from packed 8-bit RGB triples,
// scaling each channel by 1/255
func NewImageTextureRGB8(width, height int, rgb []uint8) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		if 3*i+2 >= len(rgb) {
			break
		}
		pixels[i] = core.NewVec3(
			float64(rgb[3*i])/255.0,
			float64(rgb[3*i+1])/255.0,
			float64(rgb[3*i+2])/255.0,
		)
	}
	return NewImageTexture(width, height, pixels)
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs outside [0,1] are clamped to the image edge.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return debugCyan
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	v := 1.0 - unit.Clamp(uv.Y)

	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)

	return t.Pixels[y*t.Width+x]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
