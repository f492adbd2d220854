package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultConeRadius   = 1.0
	DefaultConeHeight   = 2.0
	DefaultConeSegments = 30
)

// Cone returns a cone standing on the XZ plane with its apex at (0, height, 0).
//
// Layout: the base center (0), segments+1 base rim vertices facing down,
// segments+1 side rim vertices, then the apex. Side normals are the
// unnormalized approximation (x, height/2, z).
func Cone(radius, height float32, segments int) *Mesh {
	m := newMesh("cone", 2*segments+4, segments*6)
	down := mgl32.Vec3{0, -1, 0}

	m.addVertex(mgl32.Vec3{}, down, mgl32.Vec2{0.5, 0.5})

	rim := make([]mgl32.Vec2, segments+1)
	for i := range rim {
		angle := float64(i) / float64(segments) * math.Pi * 2
		rim[i] = mgl32.Vec2{
			radius * float32(math.Cos(angle)),
			radius * float32(math.Sin(angle)),
		}
	}

	for _, p := range rim {
		x, z := p[0], p[1]
		m.addVertex(mgl32.Vec3{x, 0, z}, down, mgl32.Vec2{(x/radius + 1) / 2, (z/radius + 1) / 2})
	}

	for i, p := range rim {
		x, z := p[0], p[1]
		m.addVertex(mgl32.Vec3{x, 0, z}, mgl32.Vec3{x, height / 2, z}, mgl32.Vec2{float32(i) / float32(segments), 0})
	}

	m.addVertex(mgl32.Vec3{0, height, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0.5, 1})
	apex := uint32(len(m.Positions) - 1)

	for i := uint32(1); i <= uint32(segments); i++ {
		m.addIndices(0, i, i+1)
	}

	side := uint32(segments + 2)
	for i := uint32(0); i < uint32(segments); i++ {
		m.addIndices(side+i, side+i+1, apex)
	}
	return m
}
