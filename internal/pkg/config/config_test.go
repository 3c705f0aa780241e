package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, content map[string]interface{}) string {
	t.Helper()
	data, err := yaml.Marshal(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, map[string]interface{}{
		"server": map[string]interface{}{
			"name":  "studio-cms",
			"host":  "0.0.0.0",
			"port":  8080,
			"mode":  "release",
			"debug": true,
		},
		"database": map[string]interface{}{
			"driver":   "mysql",
			"host":     "127.0.0.1",
			"port":     3306,
			"database": "studio_cms",
			"username": "studio",
			"password": "secret",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "console",
			"output": "stdout",
		},
		"storage": map[string]interface{}{
			"base_url":   "http://localhost:8080/storage",
			"media_root": "./storage",
		},
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "studio-cms", cfg.Server.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "studio_cms", cfg.Database.Database)
	assert.Equal(t, "http://localhost:8080/storage", cfg.Storage.BaseURL)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     3306,
		Database: "studio_cms",
		Username: "studio",
		Password: "secret",
	}
	assert.Equal(t,
		"studio:secret@tcp(127.0.0.1:3306)/studio_cms?charset=utf8mb4&parseTime=True&loc=Local",
		c.GetDSN())
}
