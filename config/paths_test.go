package config

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories_SkipsBackupsDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, EnsureDirectories())

	paths := ResolvePaths()
	info, err := os.Stat(paths.ConfigDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Backup dirs appear only when a backup is actually written.
	_, err = os.Stat(paths.BackupsDir)
	assert.True(t, os.IsNotExist(err))
}
