package shaders

import (
	_ "embed"
)

//go:embed object_vs.wgsl
var ObjectVertexWGSL string

//go:embed object_fs.wgsl
var ObjectFragmentWGSL string

//go:embed star_vs.wgsl
var StarVertexWGSL string

//go:embed star_fs.wgsl
var StarFragmentWGSL string

// Sources holds the vertex/fragment pairs of the two programs.
type Sources struct {
	ObjectVertex   string
	ObjectFragment string
	StarVertex     string
	StarFragment   string
}

func Default() Sources {
	return Sources{
		ObjectVertex:   ObjectVertexWGSL,
		ObjectFragment: ObjectFragmentWGSL,
		StarVertex:     StarVertexWGSL,
		StarFragment:   StarFragmentWGSL,
	}
}
