package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range CommandHandlers {
		cmd := h.Command()
		require.NotNil(t, cmd)
		assert.False(t, seen[cmd.Name], "duplicate command %s", cmd.Name)
		assert.NotEmpty(t, cmd.Description, cmd.Name)
		seen[cmd.Name] = true
	}
	assert.Len(t, seen, 6)
}
