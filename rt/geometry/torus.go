package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultTorusMajorRadius = 1.0
	DefaultTorusMinorRadius = 0.3
	DefaultTorusSegments    = 30
	DefaultTorusRings       = 30
)

// TorusN returns the vertex and index counts of a torus.
func TorusN(segments, rings int) (numVertex, numIndex int) {
	return (rings + 1) * (segments + 1), rings * segments * 6
}

// Torus returns a parametric torus around the Z axis. Ring i sits at
// theta = 2*pi*i/rings and segment j at phi = 2*pi*j/segments. The first and
// last ring (and segment) are emitted as separate vertices and are not
// stitched to each other by extra indices.
func Torus(majorRadius, minorRadius float32, segments, rings int) *Mesh {
	nv, ni := TorusN(segments, rings)
	m := newMesh("torus", nv, ni)

	for i := 0; i <= rings; i++ {
		theta := float64(i) / float64(rings) * math.Pi * 2
		cosTheta := float32(math.Cos(theta))
		sinTheta := float32(math.Sin(theta))

		for j := 0; j <= segments; j++ {
			phi := float64(j) / float64(segments) * math.Pi * 2
			cosPhi := float32(math.Cos(phi))
			sinPhi := float32(math.Sin(phi))

			r := majorRadius + minorRadius*cosPhi
			m.addVertex(
				mgl32.Vec3{r * cosTheta, r * sinTheta, minorRadius * sinPhi},
				mgl32.Vec3{cosPhi * cosTheta, cosPhi * sinTheta, sinPhi},
				mgl32.Vec2{float32(i) / float32(rings), float32(j) / float32(segments)},
			)
		}
	}

	stride := uint32(segments + 1)
	for i := uint32(0); i < uint32(rings); i++ {
		for j := uint32(0); j < uint32(segments); j++ {
			a := i*stride + j
			b := a + stride
			m.addIndices(a, b, a+1, b, b+1, a+1)
		}
	}
	return m
}
