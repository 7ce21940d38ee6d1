package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_InfoAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Info("|--|")
	p.Infof("%s %d\n", "step", 2)
	p.Error("bad width")
	p.Errorf("code %d\n", 3)

	assert.Equal(t, "|--|\nstep 2\n", out.String())
	assert.Equal(t, "bad width\ncode 3\n", errOut.String())
}

func TestPrinter_Live(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &bytes.Buffer{})

	require.NoError(t, p.Live("|#---|"))
	assert.Equal(t, "|#---|\n", out.String())

	require.NoError(t, p.Live("|##--|"))
	written := out.String()
	assert.True(t, strings.HasSuffix(written, "|##--|\n"), "got %q", written)
	// the second render clears the first line before writing
	assert.Contains(t, written[len("|#---|\n"):], "\x1b[")
}
