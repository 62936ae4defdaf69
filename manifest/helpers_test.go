package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// touch creates empty files under dir and returns their resolved paths by
// name.
func touch(t *testing.T, dir string, names ...string) map[string]string {
	t.Helper()
	paths := make(map[string]string, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("@r\nACGT\n+\nIIII\n"), 0644))
		resolved, err := filepath.EvalSymlinks(p)
		require.NoError(t, err)
		paths[name] = resolved
	}
	return paths
}

func mustConfig(t *testing.T, root string, mode Mode, output string) Config {
	t.Helper()
	cfg, err := NewConfig(root, mode, "", output)
	require.NoError(t, err)
	return cfg
}
