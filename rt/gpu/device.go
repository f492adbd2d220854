// Package gpu describes the graphics capabilities the demo needs and builds
// device resources (mesh buffers, programs, per-frame draw calls) on top of them.
package gpu

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrDeviceUnsupported = errors.New("graphics device unsupported")
	ErrNoProgram         = errors.New("no program")
	ErrBufferAllocation  = errors.New("buffer allocation failed")
)

type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
)

type Topology uint8

const (
	TopologyTriangleList Topology = iota
	TopologyLineList
	TopologyPointList
)

type Buffer interface {
	Size() uint64
	Release()
}

type Program interface {
	Label() string
	Release()
}

// ProgramDesc is a vertex/fragment source pair linked into one program.
// Both stages read the Uniforms block and a single float3 position attribute.
type ProgramDesc struct {
	Label          string
	VertexSource   string
	VertexEntry    string
	FragmentSource string
	FragmentEntry  string
	Topology       Topology
}

// Device is the set of graphics capabilities the demo consumes.
// Buffers created by a Device are immutable after creation.
type Device interface {
	CreateBuffer(label string, contents []byte, usage BufferUsage) (Buffer, error)
	CreateProgram(desc ProgramDesc) (Program, error)
	Submit(frame *Frame) error
	Resize(width, height int)
}

// UniformsSize is the byte size of the uniform block shared by all programs.
const UniformsSize = 80

// Uniforms matches the WGSL struct:
//
//	struct Uniforms { transform: mat4x4<f32>, pointer: vec2<f32> }
type Uniforms struct {
	Transform mgl32.Mat4
	Pointer   mgl32.Vec2
}

func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformsSize)
	for i, f := range u.Transform {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(b[64:], math.Float32bits(u.Pointer[0]))
	binary.LittleEndian.PutUint32(b[68:], math.Float32bits(u.Pointer[1]))
	return b
}

// DrawCall captures everything one draw needs. A nil Index buffer means a
// non-indexed draw of Count vertices.
type DrawCall struct {
	Label    string
	Program  Program
	Vertex   Buffer
	Index    Buffer
	Count    uint32
	Uniforms Uniforms
}

// Frame is the ordered list of draw calls for one presented image.
type Frame struct {
	ClearColor [4]float64
	Calls      []DrawCall
}

func vec3Bytes(v []mgl32.Vec3) []byte {
	b := make([]byte, len(v)*12)
	for i, p := range v {
		for k := 0; k < 3; k++ {
			binary.LittleEndian.PutUint32(b[i*12+k*4:], math.Float32bits(p[k]))
		}
	}
	return b
}

func vec2Bytes(v []mgl32.Vec2) []byte {
	b := make([]byte, len(v)*8)
	for i, p := range v {
		binary.LittleEndian.PutUint32(b[i*8:], math.Float32bits(p[0]))
		binary.LittleEndian.PutUint32(b[i*8+4:], math.Float32bits(p[1]))
	}
	return b
}

func uint32Bytes(v []uint32) []byte {
	b := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[i*4:], x)
	}
	return b
}
