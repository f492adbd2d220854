package geometry

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_MeshInvariants(t *testing.T) {
	for _, shape := range Catalog() {
		t.Run(shape.Name, func(t *testing.T) {
			m := shape.Build()
			require.NoError(t, m.Validate())
			assert.Equal(t, shape.Name, m.Name)
			assert.NotEmpty(t, m.Positions)
			assert.NotEmpty(t, m.Indices)
			assert.Len(t, m.Normals, len(m.Positions))
			assert.Len(t, m.TexCoords, len(m.Positions))
			for i, idx := range m.Indices {
				assert.Less(t, int(idx), len(m.Positions), "index %d out of range", i)
			}
		})
	}
}

func TestCatalog_Order(t *testing.T) {
	var names []string
	for _, s := range Catalog() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"cube", "star", "helix", "bow-and-arrow", "arch", "torus", "cone"}, names)
}

func TestCatalog_Deterministic(t *testing.T) {
	for _, shape := range Catalog() {
		a, b := shape.Build(), shape.Build()
		assert.Equal(t, a, b, "%s differs between runs", shape.Name)
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	require.Equal(t, 24, m.VertexCount())
	require.Equal(t, 36, m.IndexCount())
	assert.Equal(t, TriangleList, m.Topology)

	for face := 0; face < 6; face++ {
		n := m.Normals[face*4]
		for v := 1; v < 4; v++ {
			assert.Equal(t, n, m.Normals[face*4+v], "face %d vertex %d", face, v)
		}
		// every corner of a face lies on the plane its normal points at
		for v := 0; v < 4; v++ {
			assert.Equal(t, float32(1), m.Positions[face*4+v].Dot(n))
		}
	}

	min, max := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -1, -1}, min)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, max)
}

func TestTorus_Counts(t *testing.T) {
	m := Torus(1, 0.3, 4, 4)
	assert.Equal(t, 25, m.VertexCount())
	assert.Equal(t, 96, m.IndexCount())

	nv, ni := TorusN(4, 4)
	assert.Equal(t, nv, m.VertexCount())
	assert.Equal(t, ni, m.IndexCount())
}

func TestTorus_Surface(t *testing.T) {
	const major, minor = 1.0, 0.3
	m := Torus(major, minor, 8, 6)
	for i, p := range m.Positions {
		// distance from the tube center circle equals the minor radius
		ring := mgl32.Vec2{p.X(), p.Y()}.Len() - major
		dist := mgl32.Vec2{ring, p.Z()}.Len()
		assert.InDelta(t, minor, dist, 1e-5, "vertex %d", i)
		assert.InDelta(t, 1, m.Normals[i].Len(), 1e-5, "normal %d", i)
	}
	assert.Equal(t, mgl32.Vec2{0, 0}, m.TexCoords[0])
	assert.Equal(t, mgl32.Vec2{1, 1}, m.TexCoords[len(m.TexCoords)-1])
}

func TestTorus_OpenSeam(t *testing.T) {
	m := Torus(1, 0.3, 4, 4)
	last := uint32(m.VertexCount() - 1)
	var maxIdx uint32
	for _, idx := range m.Indices {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	// the last ring's final vertex is reached, nothing wraps back past it
	assert.Equal(t, last, maxIdx)
	assert.Equal(t, uint32(0), m.Indices[0])
}

func TestStar(t *testing.T) {
	m := Star(10, 0.5, 1.0)
	require.Equal(t, 10, m.VertexCount())
	require.Equal(t, 8*3, m.IndexCount())

	for i, p := range m.Positions {
		want := 1.0
		if i%2 == 1 {
			want = 0.5
		}
		assert.InDelta(t, want, p.Len(), 1e-6, "vertex %d", i)
		assert.Equal(t, float32(0), p.Z())
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normals[i])
		uv := m.TexCoords[i]
		assert.True(t, uv.X() >= 0 && uv.X() <= 1 && uv.Y() >= 0 && uv.Y() <= 1, "uv %v", uv)
	}

	for tri := 0; tri < 8; tri++ {
		assert.Equal(t, uint32(0), m.Indices[tri*3], "triangle %d not fanned from 0", tri)
	}
}

func TestCone(t *testing.T) {
	const segments = 12
	m := Cone(1, 2, segments)
	require.NoError(t, m.Validate())
	require.Equal(t, 2*segments+4, m.VertexCount())
	require.Equal(t, 6*segments, m.IndexCount())

	apex := uint32(m.VertexCount() - 1)
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, m.Positions[apex])
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normals[apex])

	base := m.Indices[:3*segments]
	for tri := 0; tri < segments; tri++ {
		assert.Equal(t, uint32(0), base[tri*3], "base triangle %d", tri)
		assert.NotContains(t, base[tri*3:tri*3+3], apex)
	}

	side := m.Indices[3*segments:]
	for tri := 0; tri < segments; tri++ {
		assert.Equal(t, apex, side[tri*3+2], "side triangle %d", tri)
	}

	assert.Equal(t, mgl32.Vec3{0, -1, 0}, m.Normals[0])
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, m.Normals[segments+1])
	assert.Equal(t, float32(1), m.Normals[segments+2].Y())
}

func TestHelix(t *testing.T) {
	const segments = 10
	m := Helix(segments, 0.5, 2, 0.4)
	require.NoError(t, m.Validate())
	assert.Equal(t, LineList, m.Topology)
	assert.Equal(t, segments+segments/2, m.VertexCount())
	assert.Zero(t, m.IndexCount()%2, "line list needs pairs")

	assert.InDelta(t, -1, m.Positions[0].Y(), 1e-6)
	// the first connector mirrors the first backbone point, scaled
	assert.InDelta(t, -0.5*0.4, m.Positions[1].X(), 1e-6)
	assert.Equal(t, m.Positions[0].Y(), m.Positions[1].Y())

	assert.Equal(t, []uint32{0, 1}, m.Indices[:2])
	assert.Equal(t, []uint32{1, 2, 2, 3}, m.Indices[2:6])
}

func TestBowAndArrow(t *testing.T) {
	m := BowAndArrow()
	require.NoError(t, m.Validate())
	assert.Equal(t, 10, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 7, 8, 7, 9}, m.Indices)
	assert.Equal(t, mgl32.Vec3{1.1, -0.05, 0}, m.Positions[9])
	for _, n := range m.Normals {
		assert.Equal(t, mgl32.Vec3{}, n)
	}
}

func TestArch(t *testing.T) {
	const segments = 8
	m := Arch(segments, 1, 0.2, 0.5)
	require.NoError(t, m.Validate())
	assert.Equal(t, (segments+1)*2+4, m.VertexCount())
	assert.Equal(t, segments*6+6, m.IndexCount())

	assert.InDelta(t, 1, m.Positions[0].X(), 1e-6)
	assert.InDelta(t, -1, m.Positions[segments*2].X(), 1e-6)
	assert.InDelta(t, -0.2, m.Positions[1].Y(), 1e-6)

	for i := range m.Positions {
		assert.Equal(t, mgl32.Vec3{}, m.Normals[i])
		assert.Equal(t, mgl32.Vec2{0.5, 0.5}, m.TexCoords[i])
	}

	base := uint32((segments + 1) * 2)
	assert.Equal(t, []uint32{base, base + 1, base + 2, base + 2, base + 3, base}, m.Indices[len(m.Indices)-6:])
}

func TestMeshValidate(t *testing.T) {
	m := Cube()
	m.Indices = append(m.Indices, 24)
	assert.ErrorIs(t, m.Validate(), ErrMalformedMesh)

	m = Cube()
	m.Normals = m.Normals[:10]
	assert.ErrorIs(t, m.Validate(), ErrMalformedMesh)

	m = Cube()
	m.TexCoords = nil
	assert.ErrorIs(t, m.Validate(), ErrMalformedMesh)
}

func TestStarfield(t *testing.T) {
	sf := NewStarfield(1000, 10, rand.New(rand.NewSource(7)))
	require.Equal(t, 1000, sf.Count())
	for _, p := range sf.Positions {
		for k := 0; k < 3; k++ {
			assert.True(t, p[k] >= -10 && p[k] <= 10, "point %v outside volume", p)
		}
	}

	again := NewStarfield(1000, 10, rand.New(rand.NewSource(7)))
	assert.Equal(t, sf.Positions, again.Positions)

	other := NewStarfield(1000, 10, rand.New(rand.NewSource(8)))
	assert.NotEqual(t, sf.Positions, other.Positions)
}
