package geometry

import "github.com/go-gl/mathgl/mgl32"

var bowAndArrowPositions = []mgl32.Vec3{
	// bow
	{-0.5, 1.0, 0.0},
	{-0.4, 0.0, 0.0},
	{-0.5, -1.0, 0.0},
	{0.5, 1.0, 0.0},
	{0.4, 0.0, 0.0},
	{0.5, -1.0, 0.0},
	// arrow
	{0.0, 0.0, 0.0},
	{1.0, 0.0, 0.0},
	{1.1, 0.05, 0.0},
	{1.1, -0.05, 0.0},
}

var bowAndArrowIndices = []uint32{
	0, 1, 2, 3, 4, 5, // bow
	6, 7, 7, 8, 7, 9, // arrow
}

// BowAndArrow returns the fixed bow-and-arrow shape. It has no lighting or
// texture data; normals and texcoords are zero.
func BowAndArrow() *Mesh {
	m := newMesh("bow-and-arrow", len(bowAndArrowPositions), len(bowAndArrowIndices))
	for _, p := range bowAndArrowPositions {
		m.addVertex(p, mgl32.Vec3{}, mgl32.Vec2{})
	}
	m.addIndices(bowAndArrowIndices...)
	return m
}
