package gpu

import (
	"fmt"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/google/uuid"
)

// MeshBuffers is the device-resident copy of a geometry.Mesh.
type MeshBuffers struct {
	ID       uuid.UUID
	Name     string
	Topology geometry.Topology

	Positions Buffer
	Normals   Buffer
	TexCoords Buffer
	Indices   Buffer

	// Count is the number of indices, used as the draw count.
	Count uint32
}

func (b *MeshBuffers) Release() {
	for _, buf := range []Buffer{b.Positions, b.Normals, b.TexCoords, b.Indices} {
		if buf != nil {
			buf.Release()
		}
	}
}

// PointBuffers is the device-resident copy of a starfield.
type PointBuffers struct {
	ID        uuid.UUID
	Positions Buffer
	Count     uint32
}

func (b *PointBuffers) Release() {
	if b.Positions != nil {
		b.Positions.Release()
	}
}

type Uploader struct {
	Device Device
	Logger shapes.Logger
}

func NewUploader(device Device, logger shapes.Logger) *Uploader {
	return &Uploader{Device: device, Logger: shapes.OrNop(logger)}
}

// UploadMesh copies the four mesh arrays into static device buffers. On any
// failure the buffers created so far are released.
func (u *Uploader) UploadMesh(m *geometry.Mesh) (*MeshBuffers, error) {
	mb := &MeshBuffers{
		ID:       uuid.New(),
		Name:     m.Name,
		Topology: m.Topology,
		Count:    uint32(len(m.Indices)),
	}

	uploads := []struct {
		dst   *Buffer
		attr  string
		data  []byte
		usage BufferUsage
	}{
		{&mb.Positions, "positions", vec3Bytes(m.Positions), BufferUsageVertex},
		{&mb.Normals, "normals", vec3Bytes(m.Normals), BufferUsageVertex},
		{&mb.TexCoords, "texcoords", vec2Bytes(m.TexCoords), BufferUsageVertex},
		{&mb.Indices, "indices", uint32Bytes(m.Indices), BufferUsageIndex},
	}
	for _, up := range uploads {
		buf, err := u.create(m.Name+"/"+up.attr, up.data, up.usage)
		if err != nil {
			mb.Release()
			return nil, err
		}
		*up.dst = buf
	}

	shapes.OrNop(u.Logger).Debugf("uploaded mesh %s (%s): %d vertices, %d indices", m.Name, mb.ID, len(m.Positions), mb.Count)
	return mb, nil
}

func (u *Uploader) UploadStarfield(sf *geometry.Starfield) (*PointBuffers, error) {
	buf, err := u.create("starfield/positions", vec3Bytes(sf.Positions), BufferUsageVertex)
	if err != nil {
		return nil, err
	}
	return &PointBuffers{
		ID:        uuid.New(),
		Positions: buf,
		Count:     uint32(sf.Count()),
	}, nil
}

func (u *Uploader) create(label string, data []byte, usage BufferUsage) (Buffer, error) {
	buf, err := u.Device.CreateBuffer(label, data, usage)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBufferAllocation, label, err)
	}
	return buf, nil
}
