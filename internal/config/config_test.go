package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvGitHubToken, "")
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvGitHubToken, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
result_limit = 10

[ui]
show_descriptions = false
`), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ResultLimit)
	assert.False(t, cfg.UISettings.ShowDescriptions)
	assert.True(t, cfg.UISettings.AltScreen)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
}

func TestEnvTokenOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`token = "from-file"`), 0600))

	t.Setenv(EnvGitHubToken, "from-env")
	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"limit too small": `result_limit = 0`,
		"limit too large": `result_limit = 101`,
		"bad scheme":      `api_base_url = "ftp://example.com"`,
		"not toml":        `result_limit = = 3`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := NewConfigService(path).Load()
			assert.Error(t, err)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv(EnvGitHubToken, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.ResultLimit = 7
	cfg.APIBaseURL = "http://localhost:9999/"
	require.NoError(t, svc.SaveToPath(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "result_limit = 7")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "ghscout", filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, DefaultPath(), NewConfigService("").Path())
}
