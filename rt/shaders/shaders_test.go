package shaders

import (
	"strings"
	"testing"
)

func TestEmbeddedSources(t *testing.T) {
	src := Default()
	for name, code := range map[string]string{
		"object vertex":   src.ObjectVertex,
		"object fragment": src.ObjectFragment,
		"star vertex":     src.StarVertex,
		"star fragment":   src.StarFragment,
	} {
		if strings.TrimSpace(code) == "" {
			t.Errorf("%s shader is empty", name)
		}
	}

	if !strings.Contains(src.ObjectVertex, "fn vs_main") || !strings.Contains(src.StarVertex, "fn vs_main") {
		t.Error("vertex shaders must define vs_main")
	}
	if !strings.Contains(src.ObjectFragment, "fn fs_main") || !strings.Contains(src.StarFragment, "fn fs_main") {
		t.Error("fragment shaders must define fs_main")
	}
	if !strings.Contains(src.StarVertex, "uniforms.pointer") {
		t.Error("starfield must offset by the pointer uniform")
	}
}
