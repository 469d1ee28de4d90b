package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, 10, cfg.Server.WriteTimeoutSec)
	assert.Equal(t, 120, cfg.Server.IdleTimeoutSec)
	assert.True(t, cfg.Server.EnableDebug)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, "classifications.jsonl", cfg.Log.FileName)
	assert.False(t, cfg.Log.Stdout)
	assert.True(t, cfg.Classifier.EmitReason)
}

func TestLoad_NoFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "parityd.yaml")

	content := `
server:
  addr: ":9090"
  enableDebug: false
log:
  dir: /var/log/parityd
  stdout: true
classifier:
  emitReason: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.Server.EnableDebug)
	assert.Equal(t, "/var/log/parityd", cfg.Log.Dir)
	assert.True(t, cfg.Log.Stdout)
	assert.False(t, cfg.Classifier.EmitReason)

	// Unset fields keep their defaults
	assert.Equal(t, 5, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, "classifications.jsonl", cfg.Log.FileName)
}

func TestLoad_DefaultCandidate(t *testing.T) {
	chdir(t, t.TempDir())

	content := "server:\n  addr: \":7070\"\n"
	require.NoError(t, os.WriteFile(".parityd.yaml", []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RefillsEmptyFields(t *testing.T) {
	cfg := &Config{}
	cfg.validate()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 120, cfg.Server.IdleTimeoutSec)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, "classifications.jsonl", cfg.Log.FileName)
}
