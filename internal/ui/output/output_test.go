package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildit/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_WritesPlainTextWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)

	styled := out.String("hello").Foreground(termenv.RGBColor("#D93025")).String()
	_, err := out.WriteString(styled)

	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
