package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/gekko3d/shapes/rt/gpu"
)

var (
	ErrNoModelLoader = errors.New("model source set without a loader")
	errEmptyModel    = errors.New("loader returned no mesh")
)

// Scene owns every device buffer drawn by the renderer. Objects are in draw
// order: the catalog shapes followed by the external model.
type Scene struct {
	Objects   []*gpu.MeshBuffers
	Starfield *gpu.PointBuffers
}

func (s *Scene) Release() {
	for _, obj := range s.Objects {
		obj.Release()
	}
	s.Objects = nil
	if s.Starfield != nil {
		s.Starfield.Release()
		s.Starfield = nil
	}
}

// MeshLoader fetches an externally authored mesh.
type MeshLoader interface {
	Load(ctx context.Context, source string) (*geometry.Mesh, error)
}

type Assembler struct {
	Uploader *gpu.Uploader
	Loader   MeshLoader

	// ModelSource is the URL or path of the external model. Empty skips it.
	ModelSource string

	StarCount  int
	StarExtent float32
	Rand       *rand.Rand

	Logger shapes.Logger
}

type fetchResult struct {
	mesh *geometry.Mesh
	err  error
}

// Assemble builds the complete scene. The model fetch runs while the local
// shapes are generated and uploaded. Any failure releases everything uploaded
// so far, so a caller never sees a partial scene.
func (a *Assembler) Assemble(ctx context.Context) (*Scene, error) {
	logger := shapes.OrNop(a.Logger)
	if a.ModelSource != "" && a.Loader == nil {
		return nil, ErrNoModelLoader
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var fetched chan fetchResult
	if a.ModelSource != "" {
		fetched = make(chan fetchResult, 1)
		go func() {
			mesh, err := a.Loader.Load(ctx, a.ModelSource)
			fetched <- fetchResult{mesh, err}
		}()
	}

	scene := &Scene{}
	fail := func(err error) (*Scene, error) {
		scene.Release()
		logger.Errorf("scene assembly failed: %v", err)
		return nil, err
	}

	for _, shape := range geometry.Catalog() {
		mb, err := a.Uploader.UploadMesh(shape.Build())
		if err != nil {
			return fail(fmt.Errorf("upload %s: %w", shape.Name, err))
		}
		scene.Objects = append(scene.Objects, mb)
	}

	if fetched != nil {
		var res fetchResult
		select {
		case res = <-fetched:
		case <-ctx.Done():
			res.err = ctx.Err()
		}
		if res.err == nil && res.mesh == nil {
			res.err = errEmptyModel
		}
		if res.err != nil {
			return fail(fmt.Errorf("fetch model: %w", res.err))
		}
		if res.mesh.Name == "" {
			res.mesh.Name = "model"
		}
		mb, err := a.Uploader.UploadMesh(res.mesh)
		if err != nil {
			return fail(fmt.Errorf("upload %s: %w", res.mesh.Name, err))
		}
		scene.Objects = append(scene.Objects, mb)
	}

	rng := a.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	sf, err := a.Uploader.UploadStarfield(geometry.NewStarfield(a.StarCount, a.StarExtent, rng))
	if err != nil {
		return fail(fmt.Errorf("upload starfield: %w", err))
	}
	scene.Starfield = sf

	logger.Infof("scene ready: %d objects, %d stars", len(scene.Objects), sf.Count)
	return scene, nil
}
