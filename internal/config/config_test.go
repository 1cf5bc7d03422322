package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(HomeEnv, "")
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Home)
	assert.Contains(t, cfg.Home, ".adt")
	assert.Equal(t, filepath.Join(cfg.Home, "history"), cfg.HistoryFile)
}

func TestDefaultConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	cfg := DefaultConfig()
	assert.Equal(t, dir, cfg.Home)
	assert.Equal(t, filepath.Join(dir, "scripts"), cfg.ScriptDir)
}

func TestEnsureDirs(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	cfg := FromHome(home)

	require.NoError(t, cfg.EnsureDirs())
	for _, dir := range []string{cfg.Home, cfg.ScriptDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestResolveScript(t *testing.T) {
	cfg := FromHome(t.TempDir())
	require.NoError(t, cfg.EnsureDirs())

	script := filepath.Join(cfg.ScriptDir, "demo.calc")
	require.NoError(t, os.WriteFile(script, []byte("print 1\n"), 0644))

	assert.Equal(t, script, cfg.ResolveScript("demo.calc"))
	assert.Equal(t, script, cfg.ResolveScript(script))
	assert.Equal(t, "missing.calc", cfg.ResolveScript("missing.calc"))
}
