package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultStarPoints      = 10
	DefaultStarInnerRadius = 0.5
	DefaultStarOuterRadius = 1.0
)

// Star returns a flat polygon in the XY plane whose vertices alternate
// between outerRadius (even) and innerRadius (odd), fan-triangulated from
// vertex 0.
func Star(numPoints int, innerRadius, outerRadius float32) *Mesh {
	m := newMesh("star", numPoints, 3*max(numPoints-2, 0))
	up := mgl32.Vec3{0, 0, 1}

	for i := 0; i < numPoints; i++ {
		angle := math.Pi * 2 * float64(i) / float64(numPoints)
		r := outerRadius
		if i%2 != 0 {
			r = innerRadius
		}
		x := r * float32(math.Cos(angle))
		y := r * float32(math.Sin(angle))

		m.addVertex(mgl32.Vec3{x, y, 0}, up, mgl32.Vec2{(x + 1) / 2, (y + 1) / 2})

		if i > 1 {
			k := uint32(i)
			m.addIndices(0, k-1, k)
		}
	}
	return m
}
