package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/gpu"
	"github.com/gekko3d/shapes/rt/shaders"
)

// App owns everything the demo needs between startup and exit. There is no
// process-wide state: the window layer talks to the app through Pointer and
// Resize.
type App struct {
	Config    shapes.Config
	Logger    shapes.Logger
	Device    gpu.Device
	Scheduler FrameScheduler
	Loader    MeshLoader
	Shaders   shaders.Sources
	Pointer   *shapes.Pointer

	Programs *gpu.Programs
	Scene    *Scene
	Renderer *Renderer

	width, height int
}

func NewApp(cfg shapes.Config, device gpu.Device, scheduler FrameScheduler, loader MeshLoader, logger shapes.Logger) *App {
	return &App{
		Config:    cfg,
		Logger:    shapes.OrNop(logger),
		Device:    device,
		Scheduler: scheduler,
		Loader:    loader,
		Shaders:   shaders.Default(),
		Pointer:   shapes.NewPointer(cfg.FPS, cfg.PointerFrequency, cfg.PointerDamping),
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
}

// Init builds the programs and the scene, starts the renderer and requests
// the first frame. Nothing is drawn unless every step succeeds.
func (a *App) Init(ctx context.Context) error {
	logger := shapes.OrNop(a.Logger)

	progs, err := gpu.NewProgramBuilder(a.Device, logger).BuildPrograms(a.Shaders)
	if err != nil {
		return fmt.Errorf("init programs: %w", err)
	}
	a.Programs = progs

	r := NewRenderer(a.Device, progs, a.Scheduler, a.Pointer, logger)
	r.Camera.FOV = a.Config.FOV
	r.Camera.Near = a.Config.Near
	r.Camera.Far = a.Config.Far
	r.Spacing = a.Config.Spacing
	r.SetViewport(a.width, a.height)

	asm := &Assembler{
		Uploader:    gpu.NewUploader(a.Device, logger),
		Loader:      a.Loader,
		ModelSource: a.Config.ModelSource,
		StarCount:   a.Config.StarCount,
		StarExtent:  a.Config.StarExtent,
		Rand:        rand.New(rand.NewSource(a.Config.Seed)),
		Logger:      logger,
	}
	scene, err := asm.Assemble(ctx)
	if err != nil {
		a.Programs.Release()
		a.Programs = nil
		return fmt.Errorf("init scene: %w", err)
	}
	a.Scene = scene
	a.Renderer = r

	if err := r.Start(scene); err != nil {
		return err
	}
	a.Scheduler.RequestFrame(r.tick)
	logger.Infof("renderer %s with %d draw calls per frame", r.State(), len(scene.Objects)+1)
	return nil
}

// Resize reconfigures the device surface and the projection.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.width, a.height = width, height
	a.Device.Resize(width, height)
	if a.Renderer != nil {
		a.Renderer.SetViewport(width, height)
	}
	shapes.OrNop(a.Logger).Debugf("resized to %dx%d", width, height)
}

func (a *App) Release() {
	if a.Scene != nil {
		a.Scene.Release()
		a.Scene = nil
	}
	if a.Programs != nil {
		a.Programs.Release()
		a.Programs = nil
	}
}
