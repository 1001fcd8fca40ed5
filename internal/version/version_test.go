package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestInfo(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "vinsdash")
	assert.Contains(t, info, Version)
	assert.Contains(t, info, "Commit:")
	assert.Contains(t, info, "Built:")
	assert.Contains(t, info, "Go: go")
	assert.Contains(t, info, "OS/Arch:")

	// One field per line
	lines := strings.Split(info, "\n")
	assert.Len(t, lines, 5)
}
