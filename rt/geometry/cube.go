package geometry

import "github.com/go-gl/mathgl/mgl32"

// cubeFaces lists each face's outward normal and its four corners in
// winding order. Corners are not shared between faces so every face keeps a
// flat normal.
var cubeFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	// front
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	// back
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}},
	// top
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}},
	// bottom
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	// right
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	// left
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube returns the axis-aligned cube spanning [-1,1] on every axis:
// 24 vertices and 36 indices.
func Cube() *Mesh {
	m := newMesh("cube", 24, 36)
	for f, face := range cubeFaces {
		for c, corner := range face.corners {
			m.addVertex(corner, face.normal, quadUVs[c])
		}
		base := uint32(f * 4)
		m.addIndices(base, base+1, base+2, base+2, base+3, base)
	}
	return m
}
