package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is a fixed Y-up camera looking at Target.
type CameraState struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	FOV  float32 // degrees
	Near float32
	Far  float32
}

func NewCameraState() *CameraState {
	return &CameraState{
		Position: mgl32.Vec3{0, 0, 10},
		Target:   mgl32.Vec3{0, 0, 0},
		FOV:      45,
		Near:     0.1,
		Far:      100,
	}
}

func (c *CameraState) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

// GetProjectionMatrix returns the perspective projection for a surface of
// the given size. A degenerate size falls back to a square aspect.
func (c *CameraState) GetProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
