package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformComposition(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{10, 20, 30}
	tr.SetRotationX(math.Pi / 2)
	tr.Scale = mgl32.Vec3{2, 2, 2}

	o2w := tr.ObjectToWorld()
	w2o := tr.WorldToObject()

	// round trip a point through both matrices
	p := mgl32.Vec4{1, 2, 3, 1}
	back := w2o.Mul4x1(o2w.Mul4x1(p))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, p[i], back[i], 1e-4)
	}

	// +Y rotates to +Z about X, then scales and translates
	got := o2w.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 10, got[0], 1e-4)
	assert.InDelta(t, 20, got[1], 1e-4)
	assert.InDelta(t, 32, got[2], 1e-4)
}

func TestSetRotationXKeepsXAxis(t *testing.T) {
	tr := NewTransform()
	tr.SetRotationX(1.234)
	got := tr.ObjectToWorld().Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assert.InDelta(t, 1, got[0], 1e-5)
	assert.InDelta(t, 0, got[1], 1e-5)
	assert.InDelta(t, 0, got[2], 1e-5)
}

func TestGridLayout(t *testing.T) {
	pos := GridLayout(8, 4, 3)
	require.Len(t, pos, 8)

	assert.Equal(t, mgl32.Vec3{-4.5, 1.5, 0}, pos[0])
	assert.Equal(t, mgl32.Vec3{4.5, 1.5, 0}, pos[3])
	assert.Equal(t, mgl32.Vec3{-4.5, -1.5, 0}, pos[4])

	// centered
	var sum mgl32.Vec3
	for _, p := range pos {
		sum = sum.Add(p)
	}
	assert.InDelta(t, 0, sum.Len(), 1e-5)
}

func TestGridLayoutZeroSpacingOverlaps(t *testing.T) {
	for _, p := range GridLayout(8, 4, 0) {
		assert.Equal(t, mgl32.Vec3{}, p)
	}
	assert.Empty(t, GridLayout(0, 4, 3))
}

func TestCameraProjection(t *testing.T) {
	c := NewCameraState()

	square := c.GetProjectionMatrix(0, 0)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100), square)

	wide := c.GetProjectionMatrix(800, 400)
	assert.InDelta(t, square.At(0, 0)/2, wide.At(0, 0), 1e-5)
	assert.InDelta(t, square.At(1, 1), wide.At(1, 1), 1e-5)

	// the target sits in front of the camera on -Z in view space
	v := c.GetViewMatrix().Mul4x1(c.Target.Vec4(1))
	assert.Less(t, v.Z(), float32(0))
}
