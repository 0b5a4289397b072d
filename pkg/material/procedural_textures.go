package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLatLongGridTexture creates an equirectangular image with a grid of
// latitude/longitude lines, used when no earth map is available.
// Lines are drawn every cellSize pixels over a two-tone ocean/land pattern.
func NewLatLongGridTexture(width, height, cellSize int) *ImageTexture {
	ocean := core.NewVec3(0.1, 0.25, 0.6)
	land := core.NewVec3(0.2, 0.5, 0.15)
	line := core.NewVec3(0.9, 0.9, 0.9)

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var color core.Vec3
			switch {
			case x%cellSize == 0 || y%cellSize == 0:
				color = line
			case ((x/cellSize)+(y/cellSize))%3 == 0:
				color = land
			default:
				color = ocean
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
