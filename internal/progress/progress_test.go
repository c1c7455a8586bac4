package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinnerWriter(&buf, "Searching", false)
	s.Start()
	s.Tick()
	s.Stop()
	assert.Empty(t, buf.String())
	assert.Zero(t, s.Count())
}

func TestSpinner_TTY(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinnerWriter(&buf, "Searching", true)
	s.Start()
	for range 3 {
		s.Tick()
	}
	assert.Equal(t, 3, s.Count())
	assert.Contains(t, buf.String(), "Searching...")

	s.Stop()
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\r"), "line is cleared on stop")

	s.Tick()
	assert.Equal(t, 3, s.Count(), "ticks after stop are ignored")
}
