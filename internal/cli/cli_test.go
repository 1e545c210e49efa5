package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stonestack/internal/cli"
	"github.com/plus3/stonestack/puzzle"
)

func TestNewLogger(t *testing.T) {
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stonestack.log")
		log, err := cli.NewLogger("info", path)
		require.NoError(t, err)

		log.Debug("hidden")
		log.Info("visible")
		_ = log.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "visible")
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := cli.NewLogger("loud")
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	cfg, err := cli.LoadConfig("", 0)
	require.NoError(t, err)
	assert.Equal(t, puzzle.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 6\nseed: 3\n"), 0o644))

	cfg, err = cli.LoadConfig(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, uint64(3), cfg.Seed)

	cfg, err = cli.LoadConfig(path, 9)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)

	_, err = cli.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
