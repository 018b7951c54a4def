package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/projectboard")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
	assert.Equal(t, "@every 5m", cfg.SessionSweepSchedule)
	assert.Equal(t, int64(5242880), cfg.StoryboardImageMaxBytes)
	assert.Equal(t, 3840, cfg.StoryboardImageMaxDimension)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveSessionTTL(t *testing.T) {
	setRequired(t)
	for _, v := range []string{"0", "-5", "soon"} {
		t.Setenv("SESSION_TTL_MINUTES", v)
		_, err := Load()
		require.Error(t, err, "SESSION_TTL_MINUTES=%s", v)
	}
}

func TestLoadMinIORequiresCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MINIO_ACCESS_KEY", "key")
	t.Setenv("MINIO_SECRET_KEY", "secret")
	t.Setenv("ALLOW_ORIGINS", " https://a.example , https://b.example ")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StorageEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
}
