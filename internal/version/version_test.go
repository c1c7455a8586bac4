package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	orig := Version
	Version = "v9.9.9"
	defer func() { Version = orig }()

	info := Get()
	assert.Equal(t, "v9.9.9", info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "v9.9.9", Short())
	assert.Contains(t, info.String(), "Build Tag:    v9.9.9\n")
}
