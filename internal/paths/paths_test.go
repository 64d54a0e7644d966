package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirFlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", got)
}

func TestResolveConfigDirEnvBeatsDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", got)
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	t.Run("flag wins over everything", func(t *testing.T) {
		got, err := ResolveDataDir("/flag/data", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/flag/data", got)
	})
	t.Run("config value beats env", func(t *testing.T) {
		got, err := ResolveDataDir("", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/config/data", got)
	})
	t.Run("env beats default", func(t *testing.T) {
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/data", got)
	})
}

func TestResolveDataDirDefaultIsCWDRelative(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	got, err := ResolveDataDir("", "")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
}

func TestResolveDataDirRelativePathsBecomeAbsolute(t *testing.T) {
	got, err := ResolveDataDir("rel/data", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestDefaultConfigDirLinuxXDG(t *testing.T) {
	// Only the Linux branch consults XDG_CONFIG_HOME.
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Contains(t, got, "realty")
}
