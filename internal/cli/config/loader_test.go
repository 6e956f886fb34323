package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "islandatlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBundlePath, cfg.BundlePath)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Watch)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "bundle: /data/islands.json\nport: 9001\nwatch: true\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/islands.json", cfg.BundlePath)
	assert.Equal(t, 9001, cfg.Port)
	assert.True(t, cfg.Watch)
	assert.Equal(t, path, FileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: 9001\n")
	t.Setenv("ISLANDATLAS_PORT", "9002")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9002, cfg.Port)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "port: 9001\nbundle: from-file.json\n")
	t.Setenv("ISLANDATLAS_BUNDLE", "from-env.json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("bundle", "", "")
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--bundle", "from-flag.json"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.json", cfg.BundlePath)
	assert.Equal(t, 9001, cfg.Port, "unchanged flags do not override")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "port: [not an int\n")

	_, err := Load(path, nil)
	assert.Error(t, err)
}
