package geometry

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultStarCount  = 1000
	DefaultStarExtent = 10.0
)

// Starfield is a point cloud. It has no normals, texcoords or indices.
type Starfield struct {
	Positions []mgl32.Vec3
}

func (s *Starfield) Count() int {
	return len(s.Positions)
}

// NewStarfield scatters count points uniformly in the cube [-extent, extent]^3.
func NewStarfield(count int, extent float32, rng *rand.Rand) *Starfield {
	sf := &Starfield{Positions: make([]mgl32.Vec3, count)}
	for i := range sf.Positions {
		sf.Positions[i] = mgl32.Vec3{
			(rng.Float32()*2 - 1) * extent,
			(rng.Float32()*2 - 1) * extent,
			(rng.Float32()*2 - 1) * extent,
		}
	}
	return sf
}
