// Package config locates the files the adt tool keeps between runs.
package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the default home directory.
const HomeEnv = "ADT_HOME"

// Config holds configuration for the adt tool.
type Config struct {
	// Home is the root directory for adt data.
	// Defaults to ~/.adt
	Home string

	// HistoryFile is where the REPL keeps its line history.
	// Defaults to Home/history
	HistoryFile string

	// ScriptDir is searched for calc scripts given by bare name.
	// Defaults to Home/scripts
	ScriptDir string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return FromHome(defaultHome())
}

// FromHome returns the configuration rooted at home.
func FromHome(home string) *Config {
	return &Config{
		Home:        home,
		HistoryFile: filepath.Join(home, "history"),
		ScriptDir:   filepath.Join(home, "scripts"),
	}
}

// defaultHome uses ADT_HOME if set, otherwise ~/.adt.
func defaultHome() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".adt")
	}
	return filepath.Join(homeDir, ".adt")
}

// EnsureDirs creates the home directory, the script directory and the parent
// of the history file.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.Home,
		c.ScriptDir,
		filepath.Dir(c.HistoryFile),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// ResolveScript returns path unchanged if it names an existing file, and
// otherwise the same name inside ScriptDir if that exists there.
func (c *Config) ResolveScript(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	candidate := filepath.Join(c.ScriptDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
