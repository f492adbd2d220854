package model

import (
	"fmt"
	"io"

	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// DecodeGLTF reads a .glb or self-contained .gltf document and merges every
// triangle primitive into one mesh. External buffer URIs are not supported.
func DecodeGLTF(r io.Reader) (*geometry.Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: decode gltf: %v", ErrMalformedModel, err)
	}

	mesh := &geometry.Mesh{Name: "model"}
	for _, m := range doc.Meshes {
		if m.Name != "" && mesh.Name == "model" {
			mesh.Name = m.Name
		}
		for _, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("%w: no triangle primitives", ErrMalformedModel)
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *geometry.Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	acc, err := accessor(doc, posIdx)
	if err != nil {
		return err
	}
	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return fmt.Errorf("%w: read positions: %v", ErrMalformedModel, err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if acc, err = accessor(doc, idx); err != nil {
			return err
		}
		if normals, err = modeler.ReadNormal(doc, acc, nil); err != nil {
			return fmt.Errorf("%w: read normals: %v", ErrMalformedModel, err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if acc, err = accessor(doc, idx); err != nil {
			return err
		}
		if uvs, err = modeler.ReadTextureCoord(doc, acc, nil); err != nil {
			return fmt.Errorf("%w: read texcoords: %v", ErrMalformedModel, err)
		}
	}

	base := uint32(len(mesh.Positions))
	for i, p := range positions {
		var (
			n  mgl32.Vec3
			uv mgl32.Vec2
		)
		if i < len(normals) {
			n = normals[i]
		}
		if i < len(uvs) {
			uv = uvs[i]
		}
		mesh.Positions = append(mesh.Positions, p)
		mesh.Normals = append(mesh.Normals, n)
		mesh.TexCoords = append(mesh.TexCoords, uv)
	}

	if prim.Indices == nil {
		for i := range positions {
			mesh.Indices = append(mesh.Indices, base+uint32(i))
		}
		return nil
	}

	if acc, err = accessor(doc, *prim.Indices); err != nil {
		return err
	}
	indices, err := modeler.ReadIndices(doc, acc, nil)
	if err != nil {
		return fmt.Errorf("%w: read indices: %v", ErrMalformedModel, err)
	}
	for _, idx := range indices {
		mesh.Indices = append(mesh.Indices, base+idx)
	}
	return nil
}

// accessor resolves an accessor index read from the document, rejecting
// references to accessors or buffer views that do not exist.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d out of range", ErrMalformedModel, idx)
	}
	acc := doc.Accessors[idx]
	if acc == nil {
		return nil, fmt.Errorf("%w: accessor %d is empty", ErrMalformedModel, idx)
	}
	if acc.BufferView != nil {
		bv := *acc.BufferView
		if bv < 0 || bv >= len(doc.BufferViews) || doc.BufferViews[bv] == nil {
			return nil, fmt.Errorf("%w: accessor %d: buffer view %d out of range", ErrMalformedModel, idx, bv)
		}
		if b := doc.BufferViews[bv].Buffer; b < 0 || b >= len(doc.Buffers) {
			return nil, fmt.Errorf("%w: buffer view %d: buffer %d out of range", ErrMalformedModel, bv, b)
		}
	}
	return acc, nil
}
