// Package geometry generates the demo's procedural meshes.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrMalformedMesh = errors.New("malformed mesh")

type Topology uint8

const (
	TriangleList Topology = iota
	LineList
)

func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	case LineList:
		return "line-list"
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// Mesh is a drawable unit of geometry. Normals and TexCoords always have one
// entry per position; generators without meaningful values fill placeholders.
type Mesh struct {
	Name      string
	Topology  Topology
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Validate reports the first violation of the mesh invariants.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n {
		return fmt.Errorf("%w: %q has %d normals for %d positions", ErrMalformedMesh, m.Name, len(m.Normals), n)
	}
	if len(m.TexCoords) != n {
		return fmt.Errorf("%w: %q has %d texcoords for %d positions", ErrMalformedMesh, m.Name, len(m.TexCoords), n)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %q index %d is %d, only %d positions", ErrMalformedMesh, m.Name, i, idx, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return min, max
}

func newMesh(name string, capVertices, capIndices int) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: make([]mgl32.Vec3, 0, capVertices),
		Normals:   make([]mgl32.Vec3, 0, capVertices),
		TexCoords: make([]mgl32.Vec2, 0, capVertices),
		Indices:   make([]uint32, 0, capIndices),
	}
}

func (m *Mesh) addVertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.TexCoords = append(m.TexCoords, uv)
}

func (m *Mesh) addIndices(idx ...uint32) {
	m.Indices = append(m.Indices, idx...)
}
