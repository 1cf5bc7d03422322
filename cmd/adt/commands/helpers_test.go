package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"github.com/stretchr/testify/require"
)

// goldenFile returns the contents of testdata/name.
// In Bazel tests, it uses runfiles to find the file.
// Outside of Bazel, it falls back to finding go.mod and using the module root.
func goldenFile(t *testing.T, name string) string {
	t.Helper()
	rel := filepath.Join("cmd", "adt", "commands", "testdata", name)
	if path, err := bazel.Runfile(rel); err == nil {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above %s", cwd)
		dir = parent
	}
	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	return string(data)
}

// run executes the adt command tree with args and an isolated home.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--home", t.TempDir()}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
