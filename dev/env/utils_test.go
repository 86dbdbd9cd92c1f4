package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	path, err := ResolvePath("results.db")
	require.NoError(t, err)
	require.Equal(t, "results.db", path)

	root, err := GetWorkspaceRoot()
	if err != nil {
		t.Skip("not running inside the workspace")
	}
	path, err = ResolvePath("<dev_state>/supplements.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "supplements.db"), path)
}
