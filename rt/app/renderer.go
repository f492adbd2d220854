package app

import (
	"errors"
	"time"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/core"
	"github.com/gekko3d/shapes/rt/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNotRunning     = errors.New("renderer is not running")
	ErrAlreadyRunning = errors.New("renderer is already running")
	ErrNoScene        = errors.New("renderer started without a scene")
)

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return "unknown"
}

// FrameScheduler runs fn once on the next host frame tick.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time))
}

const (
	DefaultColumns = 4
	DefaultSpacing = 3
)

var DefaultClearColor = [4]float64{0, 0, 0, 1}

type Renderer struct {
	Device    gpu.Device
	Programs  *gpu.Programs
	Scheduler FrameScheduler
	Pointer   *shapes.Pointer
	// Clock holds the time of the frame being drawn.
	Clock  *shapes.Clock
	Camera *core.CameraState
	Logger shapes.Logger

	Columns    int
	Spacing    float32
	ClearColor [4]float64

	// FrameCount counts submitted frames, failed submits included.
	FrameCount int

	state      State
	scene      *Scene
	placements []*core.Transform
	projection mgl32.Mat4
}

func NewRenderer(device gpu.Device, programs *gpu.Programs, scheduler FrameScheduler, pointer *shapes.Pointer, logger shapes.Logger) *Renderer {
	if pointer == nil {
		pointer = shapes.NewPointer(0, 0, 0)
	}
	r := &Renderer{
		Device:     device,
		Programs:   programs,
		Scheduler:  scheduler,
		Pointer:    pointer,
		Clock:      shapes.NewClock(),
		Camera:     core.NewCameraState(),
		Logger:     shapes.OrNop(logger),
		Columns:    DefaultColumns,
		Spacing:    DefaultSpacing,
		ClearColor: DefaultClearColor,
	}
	r.SetViewport(1, 1)
	return r
}

func (r *Renderer) State() State {
	return r.state
}

// SetViewport recomputes the projection for a surface of the given size.
func (r *Renderer) SetViewport(width, height int) {
	r.projection = r.Camera.GetProjectionMatrix(width, height)
}

func (r *Renderer) Projection() mgl32.Mat4 {
	return r.projection
}

// Start moves the renderer from Idle to Running. It is the only transition.
func (r *Renderer) Start(scene *Scene) error {
	if r.state == Running {
		return ErrAlreadyRunning
	}
	if scene == nil {
		return ErrNoScene
	}
	r.scene = scene
	r.placements = make([]*core.Transform, len(scene.Objects))
	for i, pos := range core.GridLayout(len(scene.Objects), r.Columns, r.Spacing) {
		t := core.NewTransform()
		t.Position = pos
		r.placements[i] = t
	}
	r.state = Running
	return nil
}

// BuildFrame returns the draw calls for the frame at now: every object in
// scene order, then the starfield. It returns nil while idle.
func (r *Renderer) BuildFrame(now time.Time) *gpu.Frame {
	if r.state != Running {
		return nil
	}

	angle := shapes.RotationAngle(now)
	viewProj := r.projection.Mul4(r.Camera.GetViewMatrix())

	frame := &gpu.Frame{
		ClearColor: r.ClearColor,
		Calls:      make([]gpu.DrawCall, 0, len(r.scene.Objects)+1),
	}
	for i, obj := range r.scene.Objects {
		t := r.placements[i]
		t.SetRotationX(angle)
		frame.Calls = append(frame.Calls, gpu.DrawCall{
			Label:    obj.Name,
			Program:  r.Programs.ForTopology(obj.Topology),
			Vertex:   obj.Positions,
			Index:    obj.Indices,
			Count:    obj.Count,
			Uniforms: gpu.Uniforms{Transform: viewProj.Mul4(t.ObjectToWorld())},
		})
	}

	if sf := r.scene.Starfield; sf != nil {
		r.Pointer.Update()
		frame.Calls = append(frame.Calls, gpu.DrawCall{
			Label:   "starfield",
			Program: r.Programs.Starfield,
			Vertex:  sf.Positions,
			Count:   sf.Count,
			Uniforms: gpu.Uniforms{
				Transform: r.projection,
				Pointer:   r.Pointer.Value(),
			},
		})
	}
	return frame
}

// Frame draws one frame and schedules the next. A failed submit is logged
// and the loop keeps going.
func (r *Renderer) Frame(now time.Time) error {
	if r.state != Running {
		return ErrNotRunning
	}
	r.Clock.Tick(now)

	if err := r.Device.Submit(r.BuildFrame(r.Clock.Time)); err != nil {
		shapes.OrNop(r.Logger).Warnf("frame %d: submit: %v", r.FrameCount, err)
	}
	r.FrameCount++

	r.Scheduler.RequestFrame(r.tick)
	return nil
}

func (r *Renderer) tick(now time.Time) {
	if err := r.Frame(now); err != nil {
		shapes.OrNop(r.Logger).Errorf("frame: %v", err)
	}
}
