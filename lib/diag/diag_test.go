package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "ldrv")

	r.Warnf("use %s for output file", "a.out")
	r.Errorf("failed to link")
	r.Tracef("hidden")

	assert.Equal(t, "ldrv: warning: use a.out for output file\nldrv: error: failed to link\n", buf.String())
	assert.Equal(t, 1, r.Warnings())
	assert.Equal(t, 1, r.Errors())
}

func TestReporterVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "ldrv")
	r.Verbose = true

	r.Tracef("stage %s", "configure")
	assert.Equal(t, "ldrv: note: stage configure\n", buf.String())
	assert.Zero(t, r.Warnings())
	assert.Zero(t, r.Errors())
}
