package gpu

import (
	"fmt"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/gekko3d/shapes/rt/shaders"
)

const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

type ProgramBuilder struct {
	Device Device
	Logger shapes.Logger
}

func NewProgramBuilder(device Device, logger shapes.Logger) *ProgramBuilder {
	return &ProgramBuilder{Device: device, Logger: shapes.OrNop(logger)}
}

// Build compiles and links one program. Compile or link diagnostics are
// logged and returned wrapped in ErrNoProgram; a nil Program is never
// returned without an error.
func (b *ProgramBuilder) Build(desc ProgramDesc) (Program, error) {
	logger := shapes.OrNop(b.Logger)
	if desc.VertexEntry == "" {
		desc.VertexEntry = VertexEntry
	}
	if desc.FragmentEntry == "" {
		desc.FragmentEntry = FragmentEntry
	}

	prog, err := b.Device.CreateProgram(desc)
	if err != nil {
		logger.Errorf("program %s: %v", desc.Label, err)
		return nil, fmt.Errorf("%w: %s: %w", ErrNoProgram, desc.Label, err)
	}
	if prog == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoProgram, desc.Label)
	}
	logger.Debugf("built program %s", desc.Label)
	return prog, nil
}

// Programs are the lit object program, in a triangle and a line variant
// sharing the same sources, and the starfield point program.
type Programs struct {
	Object      Program
	ObjectLines Program
	Starfield   Program
}

func (p *Programs) ForTopology(t geometry.Topology) Program {
	if t == geometry.LineList {
		return p.ObjectLines
	}
	return p.Object
}

func (p *Programs) Release() {
	for _, prog := range []Program{p.Object, p.ObjectLines, p.Starfield} {
		if prog != nil {
			prog.Release()
		}
	}
}

func (b *ProgramBuilder) BuildPrograms(src shaders.Sources) (*Programs, error) {
	progs := &Programs{}
	targets := []struct {
		dst  *Program
		desc ProgramDesc
	}{
		{&progs.Object, ProgramDesc{Label: "object", VertexSource: src.ObjectVertex, FragmentSource: src.ObjectFragment, Topology: TopologyTriangleList}},
		{&progs.ObjectLines, ProgramDesc{Label: "object-lines", VertexSource: src.ObjectVertex, FragmentSource: src.ObjectFragment, Topology: TopologyLineList}},
		{&progs.Starfield, ProgramDesc{Label: "starfield", VertexSource: src.StarVertex, FragmentSource: src.StarFragment, Topology: TopologyPointList}},
	}

	for _, t := range targets {
		prog, err := b.Build(t.desc)
		if err != nil {
			progs.Release()
			return nil, err
		}
		*t.dst = prog
	}
	return progs, nil
}
