package shapes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, "shapes", false)

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %s", "cube")
	l.Warnf("slow frame")
	l.Errorf("fetch failed: %v", "404")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[shapes] INFO: loaded cube")
	assert.Contains(t, errOut.String(), "[shapes] WARN: slow frame")
	assert.Contains(t, errOut.String(), "[shapes] ERROR: fetch failed: 404")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "DEBUG: shown 2")
}

func TestLoggerWithoutPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out, "", true)
	l.Infof("ready")
	assert.Contains(t, out.String(), " INFO: ready")
	assert.NotContains(t, out.String(), "[")
}

func TestOrNop(t *testing.T) {
	nop := OrNop(nil)
	assert.NotNil(t, nop)
	assert.False(t, nop.DebugEnabled())
	nop.Errorf("discarded")

	l := NewDefaultLogger("x", false)
	assert.Same(t, l, OrNop(l))
}
