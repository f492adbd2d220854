// Package model loads externally authored meshes from a URL or a file.
package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gekko3d/shapes"
	"github.com/gekko3d/shapes/rt/geometry"
	"github.com/schollz/progressbar/v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported model format")
	ErrMalformedModel    = errors.New("malformed model")
)

// maxModelSize bounds how much of a remote response is read.
const maxModelSize = 64 << 20

type Loader struct {
	Client       *http.Client
	Logger       shapes.Logger
	ShowProgress bool
}

func NewLoader(logger shapes.Logger) *Loader {
	return &Loader{
		Client: http.DefaultClient,
		Logger: shapes.OrNop(logger),
	}
}

// Load fetches source (an http(s) URL or a local path) and decodes it by
// file extension. The result satisfies geometry.Mesh invariants.
func (l *Loader) Load(ctx context.Context, source string) (*geometry.Mesh, error) {
	logger := shapes.OrNop(l.Logger)

	name, err := resourceName(source)
	if err != nil {
		return nil, err
	}
	decode, err := decoderFor(name)
	if err != nil {
		return nil, err
	}

	var data []byte
	if isRemote(source) {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", source, err)
	}
	logger.Debugf("read %d bytes of model data from %s", len(data), source)

	mesh, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", source, err)
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("load model %s: %w", source, err)
	}

	logger.Infof("loaded model %s: %d vertices, %d triangles", name, mesh.VertexCount(), mesh.IndexCount()/3)
	return mesh, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var buf bytes.Buffer
	var writer io.Writer = &buf
	if l.ShowProgress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "download "+path.Base(req.URL.Path))
		defer bar.Close()
		writer = io.MultiWriter(&buf, bar)
	}

	n, err := io.Copy(writer, io.LimitReader(resp.Body, maxModelSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if n > maxModelSize {
		return nil, fmt.Errorf("model larger than %d bytes", maxModelSize)
	}
	return buf.Bytes(), nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func resourceName(source string) (string, error) {
	if !isRemote(source) {
		return filepath.Base(source), nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse model url: %w", err)
	}
	return path.Base(u.Path), nil
}

func decoderFor(name string) (func(io.Reader) (*geometry.Mesh, error), error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".obj":
		return ParseOBJ, nil
	case ".glb", ".gltf":
		return DecodeGLTF, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}
