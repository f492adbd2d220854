package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultArchSegments  = 50
	DefaultArchRadius    = 1.0
	DefaultArchThickness = 0.2
	DefaultArchHeight    = 0.5
)

// Arch returns a half-circle band from angle 0 to pi plus a rectangular base.
// Rim vertex 2i is on the outer edge and 2i+1 on the inner edge; the four base
// vertices follow. Normals are zero and texcoords are (0.5, 0.5): lighting on
// the arch is deliberately flat.
func Arch(segments int, radius, thickness, height float32) *Mesh {
	m := newMesh("arch", (segments+1)*2+4, segments*6+6)
	flat := mgl32.Vec3{}
	center := mgl32.Vec2{0.5, 0.5}

	step := math.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		angle := float64(i) * step
		x := radius * float32(math.Cos(angle))
		y := radius * float32(math.Sin(angle))
		m.addVertex(mgl32.Vec3{x, y, 0}, flat, center)
		m.addVertex(mgl32.Vec3{x, y - thickness, 0}, flat, center)
	}

	m.addVertex(mgl32.Vec3{-radius, -thickness, 0}, flat, center)
	m.addVertex(mgl32.Vec3{radius, -thickness, 0}, flat, center)
	m.addVertex(mgl32.Vec3{radius, -height, 0}, flat, center)
	m.addVertex(mgl32.Vec3{-radius, -height, 0}, flat, center)

	for i := uint32(0); i < uint32(segments); i++ {
		m.addIndices(i*2, i*2+1, i*2+2)
		m.addIndices(i*2+1, i*2+3, i*2+2)
	}

	base := uint32(segments+1) * 2
	m.addIndices(base, base+1, base+2, base+2, base+3, base)
	return m
}
