// Package gputest provides a recording gpu.Device for tests.
package gputest

import (
	"errors"
	"sync"

	"github.com/gekko3d/shapes/rt/gpu"
)

var ErrInjected = errors.New("injected failure")

type Buffer struct {
	Label    string
	Contents []byte
	Usage    gpu.BufferUsage
	Released bool
}

func (b *Buffer) Size() uint64 { return uint64(len(b.Contents)) }
func (b *Buffer) Release()     { b.Released = true }

type Program struct {
	Desc     gpu.ProgramDesc
	Released bool
}

func (p *Program) Label() string { return p.Desc.Label }
func (p *Program) Release()      { p.Released = true }

// Device records every resource and frame. Set FailBufferAt to make the Nth
// CreateBuffer call (1-based) fail, or FailProgram to fail the program with
// that label.
type Device struct {
	mu sync.Mutex

	FailBufferAt int
	FailProgram  string
	FailSubmit   error

	Buffers  []*Buffer
	Programs []*Program
	Frames   []gpu.Frame
	Width    int
	Height   int

	bufferCalls int
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) CreateBuffer(label string, contents []byte, usage gpu.BufferUsage) (gpu.Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.bufferCalls++
	if d.FailBufferAt > 0 && d.bufferCalls == d.FailBufferAt {
		return nil, ErrInjected
	}
	b := &Buffer{Label: label, Contents: append([]byte(nil), contents...), Usage: usage}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) CreateProgram(desc gpu.ProgramDesc) (gpu.Program, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if desc.Label == d.FailProgram {
		return nil, errors.New("shader compile error: expected ';'")
	}
	p := &Program{Desc: desc}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) Submit(frame *gpu.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.FailSubmit != nil {
		return d.FailSubmit
	}
	f := *frame
	f.Calls = append([]gpu.DrawCall(nil), frame.Calls...)
	d.Frames = append(d.Frames, f)
	return nil
}

func (d *Device) Resize(width, height int) {
	d.mu.Lock()
	d.Width, d.Height = width, height
	d.mu.Unlock()
}

// Live returns the buffers that have not been released.
func (d *Device) Live() []*Buffer {
	d.mu.Lock()
	defer d.mu.Unlock()

	var live []*Buffer
	for _, b := range d.Buffers {
		if !b.Released {
			live = append(live, b)
		}
	}
	return live
}

// BufferCalls reports how many CreateBuffer calls were made.
func (d *Device) BufferCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bufferCalls
}
