package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Database string `json:"database"`
	Port     int    `json:"port"`
	Refresh  struct {
		Schedule string `json:"schedule"`
	} `json:"refresh"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	{
		_, err := ReadConfig[testConfig](name)
		require.ErrorIs(t, err, os.ErrNotExist)
	}

	err := os.WriteFile(name, []byte(`{
		// comments are allowed
		database: "supplements.db",
		port: 8080,
		refresh: { schedule: "0 6 * * *" },
	}`), 0600)
	require.NoError(t, err)

	{
		cfg, err := ReadConfig[testConfig](name)
		require.NoError(t, err)
		require.Equal(t, "supplements.db", cfg.Database)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, "0 6 * * *", cfg.Refresh.Schedule)
	}

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{port: 9090}`), 0600)
	require.NoError(t, err)

	{
		cfg, err := ReadConfig[testConfig](name)
		require.NoError(t, err)
		require.Equal(t, "supplements.db", cfg.Database)
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, "0 6 * * *", cfg.Refresh.Schedule)
	}
}

func TestLocalPath(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "config.json5", expected: "config.local.json5"},
		{in: filepath.Join("dir", "telemetry.json5"), expected: filepath.Join("dir", "telemetry.local.json5")},
		{in: "config", expected: "config.local"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, localPath(test.in))
	}
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.json5"), []byte(`{port: 7070}`), 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	defer os.Chdir(wd)

	cfg, err := ReadRecursively[testConfig]("app.json5")
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Port)

	_, err = ReadRecursively[testConfig]("missing.json5")
	require.ErrorIs(t, err, os.ErrNotExist)
}
