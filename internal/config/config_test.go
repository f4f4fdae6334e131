package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempConfigDir points the config at a fresh directory and moves the
// working directory there so ./config.yaml from the repo is not picked up.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })
	testChdir(t, dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.OutputFormat)
	assert.Equal(t, 0, cfg.OutputWidth)
	assert.Equal(t, TvisoConfig{}, cfg.Tviso)
}

func TestLoad_File(t *testing.T) {
	dir := useTempConfigDir(t)

	content := `output_format: "{{.name}}"
output_width: 20
tviso:
  app: file-app
  secret: file-secret
  user_token: file-user
  base_url: http://localhost:9999/
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "{{.name}}", cfg.OutputFormat)
	assert.Equal(t, 20, cfg.OutputWidth)
	assert.Equal(t, TvisoConfig{
		App:       "file-app",
		Secret:    "file-secret",
		UserToken: "file-user",
		BaseURL:   "http://localhost:9999/",
	}, cfg.Tviso)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := useTempConfigDir(t)

	content := `tviso:
  app: file-app
  secret: file-secret
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	t.Setenv("TVISO_APP", "env-app")
	t.Setenv("TVISO_USER_TOKEN", "env-user")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-app", cfg.Tviso.App)
	assert.Equal(t, "file-secret", cfg.Tviso.Secret)
	assert.Equal(t, "env-user", cfg.Tviso.UserToken)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tviso: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
}

func TestSave_OmitsUserToken(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := &Config{
		OutputWidth: 30,
		Tviso: TvisoConfig{
			App:       "saved-app",
			Secret:    "saved-secret",
			UserToken: "should-not-be-saved",
		},
	}
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should-not-be-saved")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "saved-app", loaded.Tviso.App)
	assert.Equal(t, "saved-secret", loaded.Tviso.Secret)
	assert.Equal(t, 30, loaded.OutputWidth)
	assert.Empty(t, loaded.Tviso.UserToken)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tviso   TvisoConfig
		wantErr string
	}{
		{
			name:  "complete",
			tviso: TvisoConfig{App: "A", Secret: "S"},
		},
		{
			name:    "missing app",
			tviso:   TvisoConfig{Secret: "S"},
			wantErr: "tviso.app",
		},
		{
			name:    "missing secret",
			tviso:   TvisoConfig{App: "A"},
			wantErr: "tviso.secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Tviso: tt.tviso}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
