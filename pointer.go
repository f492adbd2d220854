package shapes

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// Pointer is the single pointer-position slot shared by the input callback
// (writer) and the renderer (reader). Both run on the main thread, so no
// locking is done.
type Pointer struct {
	X, Y float64

	smooth bool
	spring harmonica.Spring
	sx, sy float64
	vx, vy float64
}

// NewPointer returns a pointer slot at the origin. A positive frequency
// enables spring smoothing of the rendered value, stepped at fps.
func NewPointer(fps int, frequency, damping float64) *Pointer {
	p := &Pointer{}
	if frequency > 0 && fps > 0 {
		p.smooth = true
		p.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	}
	return p
}

// Set stores a raw position in normalized device units.
func (p *Pointer) Set(x, y float64) {
	p.X = x
	p.Y = y
}

// SetCursor converts window pixel coordinates into [-1,1] with y up.
func (p *Pointer) SetCursor(px, py float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Set(2*px/float64(width)-1, 1-2*py/float64(height))
}

// Update advances the smoothing spring by one frame.
func (p *Pointer) Update() {
	if !p.smooth {
		return
	}
	p.sx, p.vx = p.spring.Update(p.sx, p.vx, p.X)
	p.sy, p.vy = p.spring.Update(p.sy, p.vy, p.Y)
}

// Value is the position handed to the starfield program.
func (p *Pointer) Value() mgl32.Vec2 {
	if p.smooth {
		return mgl32.Vec2{float32(p.sx), float32(p.sy)}
	}
	return mgl32.Vec2{float32(p.X), float32(p.Y)}
}
