package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleSplitsStreams(t *testing.T) {
	color.NoColor = true

	var out, errOut bytes.Buffer
	c := New(&out, &errOut)

	c.Infof("%s done", Green("+"))
	c.InfoBlank()
	c.Errorf("%s broken", Red("Error:"))
	c.ErrorBlank()

	assert.Equal(t, "+ done\n\n", out.String())
	assert.Equal(t, "Error: broken\n\n", errOut.String())
}

func TestStylesAreColoredWhenEnabled(t *testing.T) {
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })

	assert.Contains(t, Blue("npx tstyche"), "\x1b[34m")
	assert.Contains(t, Gray("path"), "\x1b[90m")
}
