package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHAMPIONS_DATA_DIR", dir)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, SourceSampleAPIs, cfg.Source)
	assert.Equal(t, "https://sampleapis.assimilate.be/lol/champions", cfg.APIURL)
	assert.Equal(t, StorageDuckDB, cfg.Storage)
	assert.Equal(t, "likedChampionsIds", cfg.LikedKey)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, filepath.Join(dir, "champions.duckdb"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join(dir, "champions.log"), cfg.LogPath())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("CHAMPIONS_DATA_DIR", t.TempDir())
	t.Setenv("CHAMPIONS_SOURCE", "DDragon")
	t.Setenv("CHAMPIONS_STORAGE", "sqlite")
	t.Setenv("CHAMPIONS_HTTP_TIMEOUT", "2s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, SourceDataDragon, cfg.Source)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
}

func TestParseMemoryStorage(t *testing.T) {
	t.Setenv("CHAMPIONS_DATA_DIR", t.TempDir())
	t.Setenv("CHAMPIONS_STORAGE", "Memory")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestParseDefaultDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CHAMPIONS_DATA_DIR", "")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".champions"), cfg.DataDir)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown source":  {"CHAMPIONS_SOURCE": "riot"},
		"unknown storage": {"CHAMPIONS_STORAGE": "postgres"},
		"bad timeout":     {"CHAMPIONS_HTTP_TIMEOUT": "soon"},
		"zero timeout":    {"CHAMPIONS_HTTP_TIMEOUT": "0s"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CHAMPIONS_DATA_DIR", t.TempDir())
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
