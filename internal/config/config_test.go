package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "costmanager", cfg.Mongo.Database)
	require.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	require.Equal(t, "3000", cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, StorageMongo, cfg.Storage)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "costs_test")
	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, "costs_test", cfg.Mongo.Database)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestParse_MongoRequiresURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("STORAGE", StorageMongo)

	_, err := Parse()
	require.Error(t, err)
}

func TestParse_MemoryWithoutURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("STORAGE", StorageMemory)

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, StorageMemory, cfg.Storage)
}

func TestParse_UnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "postgres")

	_, err := Parse()
	require.Error(t, err)
}

func TestConfig_Location(t *testing.T) {
	cfg := Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	cfg.Timezone = "Mars/Olympus_Mons"
	_, err = cfg.Location()
	require.Error(t, err)
}
