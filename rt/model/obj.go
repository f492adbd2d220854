package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/go-gl/mathgl/mgl32"
)

type objCorner struct {
	v, t, n int // resolved zero-based indices, -1 when absent
}

// ParseOBJ reads Wavefront OBJ geometry. Only v, vt, vn and f statements are
// used. Polygons are fan-triangulated and vertices are shared whenever a
// face corner repeats the same v/vt/vn triple.
func ParseOBJ(r io.Reader) (*geometry.Mesh, error) {
	var (
		positions []mgl32.Vec3
		texcoords []mgl32.Vec2
		normals   []mgl32.Vec3
	)

	mesh := &geometry.Mesh{Name: "model"}
	seen := map[objCorner]uint32{}

	emit := func(c objCorner) uint32 {
		if idx, ok := seen[c]; ok {
			return idx
		}
		var (
			n  mgl32.Vec3
			uv mgl32.Vec2
		)
		if c.n >= 0 {
			n = normals[c.n]
		}
		if c.t >= 0 {
			uv = texcoords[c.t]
		}
		idx := uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, positions[c.v])
		mesh.Normals = append(mesh.Normals, n)
		mesh.TexCoords = append(mesh.TexCoords, uv)
		seen[c] = idx
		return idx
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "o":
			if len(fields) > 1 && mesh.Name == "model" {
				mesh.Name = fields[1]
			}
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			texcoords = append(texcoords, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs at least 3 vertices", line, ErrMalformedModel)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c, err := parseCorner(f, len(positions), len(texcoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, emit(c))
			}
			for i := 2; i < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i-1], corners[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrMalformedModel)
	}
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrMalformedModel, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses v, v/t, v//n or v/t/n.
func parseCorner(s string, nv, nt, nn int) (objCorner, error) {
	c := objCorner{v: -1, t: -1, n: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("%w: bad face vertex %q", ErrMalformedModel, s)
	}

	refs := [3]*int{&c.v, &c.t, &c.n}
	limits := [3]int{nv, nt, nn}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return c, fmt.Errorf("%w: face vertex %q has no position", ErrMalformedModel, s)
			}
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil {
			return c, fmt.Errorf("%w: bad face vertex %q", ErrMalformedModel, s)
		}
		resolved, err := resolveIndex(idx, limits[i])
		if err != nil {
			return c, fmt.Errorf("face vertex %q: %w", s, err)
		}
		*refs[i] = resolved
	}
	return c, nil
}

// resolveIndex maps a one-based (or negative, end-relative) OBJ index to zero-based.
func resolveIndex(idx, count int) (int, error) {
	switch {
	case idx > 0 && idx <= count:
		return idx - 1, nil
	case idx < 0 && -idx <= count:
		return count + idx, nil
	}
	return 0, fmt.Errorf("%w: index %d out of range (%d entries)", ErrMalformedModel, idx, count)
}
