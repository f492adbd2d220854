package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/app"
	"github.com/gekko3d/shapes/rt/gpu/wgpudev"
	"github.com/gekko3d/shapes/rt/model"
	"github.com/gekko3d/shapes/rt/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := shapes.ParseFlags(flag.CommandLine, os.Args[1:])
	logger := shapes.NewDefaultLogger("shapes", cfg.Debug)
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(2)
	}
	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg shapes.Config, logger shapes.Logger) error {
	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	width, height := window.FramebufferSize()
	device, err := wgpudev.New(window.SurfaceDescriptor(), width, height, logger)
	if err != nil {
		return err
	}
	defer device.Release()

	loader := model.NewLoader(logger)
	loader.ShowProgress = cfg.ShowProgress

	cfg.Window.Width, cfg.Window.Height = width, height
	scheduler := app.NewQueueScheduler()
	application := app.NewApp(cfg, device, scheduler, loader, logger)
	if err := application.Init(context.Background()); err != nil {
		return err
	}
	defer application.Release()

	window.BindPointer(application.Pointer)
	window.OnResize(application.Resize)
	window.CloseOnEscape()

	for !window.ShouldClose() {
		window.PollEvents()
		scheduler.RunPending()
	}
	return nil
}
