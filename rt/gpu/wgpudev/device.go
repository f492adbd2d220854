// Package wgpudev implements gpu.Device on WebGPU.
package wgpudev

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/gpu"
)

var errForeignResource = errors.New("resource was not created by this device")

type buffer struct {
	buf  *wgpu.Buffer
	size uint64
}

func (b *buffer) Size() uint64 { return b.size }
func (b *buffer) Release()     { b.buf.Release() }

type program struct {
	label    string
	pipeline *wgpu.RenderPipeline
}

func (p *program) Label() string { return p.label }
func (p *program) Release()      { p.pipeline.Release() }

// uniformSlot is the uniform buffer and bind group for one draw call index.
// Each draw in a frame gets its own slot so queued writes do not overwrite
// each other before submission.
type uniformSlot struct {
	buf       *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

type Device struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Config  *wgpu.SurfaceConfiguration
	Logger  shapes.Logger

	uniformLayout  *wgpu.BindGroupLayout
	pipelineLayout *wgpu.PipelineLayout
	slots          []uniformSlot
}

// New opens a device rendering to the surface described by desc, sized
// width x height. It fails with gpu.ErrDeviceUnsupported when no adapter or
// device is available.
func New(desc *wgpu.SurfaceDescriptor, width, height int, logger shapes.Logger) (*Device, error) {
	logger = shapes.OrNop(logger)

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(desc)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		surface.Release()
		return nil, fmt.Errorf("%w: adapter: %w", gpu.ErrDeviceUnsupported, err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("%w: device: %w", gpu.ErrDeviceUnsupported, err)
	}

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		device.Release()
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("%w: surface has no formats", gpu.ErrDeviceUnsupported)
	}

	d := &Device{
		Surface: surface,
		Adapter: adapter,
		Device:  device,
		Queue:   device.GetQueue(),
		Logger:  logger,
		Config: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      caps.Formats[0],
			Width:       uint32(max(width, 1)),
			Height:      uint32(max(height, 1)),
			PresentMode: wgpu.PresentModeFifo, // vsync
			AlphaMode:   caps.AlphaModes[0],
		},
	}
	surface.Configure(adapter, device, d.Config)

	d.uniformLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "UniformsBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: gpu.UniformsSize,
				},
			},
		},
	})
	if err != nil {
		d.Release()
		return nil, err
	}
	d.pipelineLayout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "UniformsLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{d.uniformLayout},
	})
	if err != nil {
		d.Release()
		return nil, err
	}

	logger.Infof("wgpu device ready: %dx%d, format %v", d.Config.Width, d.Config.Height, d.Config.Format)
	return d, nil
}

func (d *Device) CreateBuffer(label string, contents []byte, usage gpu.BufferUsage) (gpu.Buffer, error) {
	wu := wgpu.BufferUsageVertex
	if usage == gpu.BufferUsageIndex {
		wu = wgpu.BufferUsageIndex
	}
	size := uint64(len(contents))
	// zero-sized buffers are invalid; attributes a mesh lacks still get a binding
	if len(contents) < 4 {
		padded := make([]byte, 4)
		copy(padded, contents)
		contents = padded
	}

	buf, err := d.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wu,
	})
	if err != nil {
		return nil, err
	}
	return &buffer{buf: buf, size: size}, nil
}

func (d *Device) CreateProgram(desc gpu.ProgramDesc) (gpu.Program, error) {
	vs, err := d.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          desc.Label + " VS",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: desc.VertexSource},
	})
	if err != nil {
		return nil, fmt.Errorf("vertex stage: %w", err)
	}
	defer vs.Release()

	fs, err := d.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          desc.Label + " FS",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: desc.FragmentSource},
	})
	if err != nil {
		return nil, fmt.Errorf("fragment stage: %w", err)
	}
	defer fs.Release()

	pipeline, err := d.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: d.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: desc.VertexEntry,
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 12,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.Config.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  primitiveTopology(desc.Topology),
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	return &program{label: desc.Label, pipeline: pipeline}, nil
}

func primitiveTopology(t gpu.Topology) wgpu.PrimitiveTopology {
	switch t {
	case gpu.TopologyLineList:
		return wgpu.PrimitiveTopologyLineList
	case gpu.TopologyPointList:
		return wgpu.PrimitiveTopologyPointList
	}
	return wgpu.PrimitiveTopologyTriangleList
}

// slot returns the uniform slot for draw i, creating it on first use.
func (d *Device) slot(i int) (uniformSlot, error) {
	for len(d.slots) <= i {
		buf, err := d.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("Uniforms %d", len(d.slots)),
			Size:  gpu.UniformsSize,
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return uniformSlot{}, err
		}
		bg, err := d.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("Uniforms %d BG", len(d.slots)),
			Layout: d.uniformLayout,
			Entries: []wgpu.BindGroupEntry{
				{
					Binding: 0,
					Buffer:  buf,
					Size:    gpu.UniformsSize,
				},
			},
		})
		if err != nil {
			buf.Release()
			return uniformSlot{}, err
		}
		d.slots = append(d.slots, uniformSlot{buf: buf, bindGroup: bg})
	}
	return d.slots[i], nil
}

// Submit encodes frame into a single render pass over the current surface
// texture and presents it.
func (d *Device) Submit(frame *gpu.Frame) error {
	slots := make([]uniformSlot, len(frame.Calls))
	for i, call := range frame.Calls {
		s, err := d.slot(i)
		if err != nil {
			return fmt.Errorf("uniforms for %s: %w", call.Label, err)
		}
		if err := d.Queue.WriteBuffer(s.buf, 0, call.Uniforms.Bytes()); err != nil {
			return fmt.Errorf("uniforms for %s: %w", call.Label, err)
		}
		slots[i] = s
	}

	nextTexture, err := d.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("current texture: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("texture view: %w", err)
	}
	defer view.Release()

	encoder, err := d.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	c := frame.ClearColor
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]},
			},
		},
	})
	defer pass.Release()

	for i, call := range frame.Calls {
		if err := d.draw(pass, slots[i], call); err != nil {
			pass.End()
			return err
		}
	}
	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	defer cmd.Release()

	d.Queue.Submit(cmd)
	d.Surface.Present()
	return nil
}

func (d *Device) draw(pass *wgpu.RenderPassEncoder, s uniformSlot, call gpu.DrawCall) error {
	prog, ok := call.Program.(*program)
	if !ok {
		return fmt.Errorf("%s: program: %w", call.Label, errForeignResource)
	}
	vb, ok := call.Vertex.(*buffer)
	if !ok {
		return fmt.Errorf("%s: vertex buffer: %w", call.Label, errForeignResource)
	}

	pass.SetPipeline(prog.pipeline)
	pass.SetBindGroup(0, s.bindGroup, nil)
	pass.SetVertexBuffer(0, vb.buf, 0, wgpu.WholeSize)

	if call.Index == nil {
		pass.Draw(call.Count, 1, 0, 0)
		return nil
	}
	ib, ok := call.Index.(*buffer)
	if !ok {
		return fmt.Errorf("%s: index buffer: %w", call.Label, errForeignResource)
	}
	pass.SetIndexBuffer(ib.buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(call.Count, 1, 0, 0, 0)
	return nil
}

// Resize reconfigures the surface. Zero sizes (a minimized window) are ignored.
func (d *Device) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.Config.Width = uint32(width)
	d.Config.Height = uint32(height)
	d.Surface.Configure(d.Adapter, d.Device, d.Config)
}

func (d *Device) Release() {
	for _, s := range d.slots {
		s.bindGroup.Release()
		s.buf.Release()
	}
	d.slots = nil
	if d.pipelineLayout != nil {
		d.pipelineLayout.Release()
	}
	if d.uniformLayout != nil {
		d.uniformLayout.Release()
	}
	if d.Device != nil {
		d.Device.Release()
	}
	if d.Adapter != nil {
		d.Adapter.Release()
	}
	if d.Surface != nil {
		d.Surface.Release()
	}
}
