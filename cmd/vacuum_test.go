package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacuum(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt", "needle\n")
	env.run("grep", "needle")

	t.Run("recent entries survive", func(t *testing.T) {
		out := env.run("vacuum", "--force")
		env.contains(out, "Deleted 0 audit log entries")
	})

	t.Run("dry run", func(t *testing.T) {
		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(env.stdout("-o", "json", "vacuum", "-n", "--older-than", "0d")), &body))
		assert.Equal(t, true, body["dry_run"])
		assert.GreaterOrEqual(t, body["deleted"], float64(1))
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := env.runErr("vacuum", "--force", "--older-than", "3h")
		assert.Error(t, err)
	})

	t.Run("declined", func(t *testing.T) {
		out := env.run("vacuum")
		env.contains(out, "Cancelled")
	})
}
