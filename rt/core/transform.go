package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// SetRotationX replaces the rotation with angle radians about the X axis.
func (t *Transform) SetRotationX(angle float32) {
	t.Rotation = mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0})
}

func (t *Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

func (t *Transform) WorldToObject() mgl32.Mat4 {
	invScale := mgl32.Scale3D(1.0/t.Scale.X(), 1.0/t.Scale.Y(), 1.0/t.Scale.Z())
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())

	return invScale.Mul4(invRotate).Mul4(invTranslate)
}

// GridLayout places n objects on a centered grid in the XY plane, filling
// rows of up to columns objects from the top left. Zero spacing stacks every
// object at the origin.
func GridLayout(n, columns int, spacing float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	if n == 0 || columns <= 0 {
		return out
	}
	rows := (n + columns - 1) / columns
	cols := min(n, columns)
	x0 := -float32(cols-1) * spacing / 2
	y0 := float32(rows-1) * spacing / 2
	for i := range out {
		r, c := i/columns, i%columns
		out[i] = mgl32.Vec3{x0 + float32(c)*spacing, y0 - float32(r)*spacing, 0}
	}
	return out
}
