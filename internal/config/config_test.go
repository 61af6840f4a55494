package config_test

import (
	"testing"

	"github.com/lwmacct/251207-go-pkg-envload/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "_env.go", cfg.Gen.Suffix)
	assert.Empty(t, cfg.Gen.Package)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ENVGEN_LOG_LEVEL", "debug")
	t.Setenv("ENVGEN_GEN_SUFFIX", "_loader.go")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep their defaults")
	assert.Equal(t, "_loader.go", cfg.Gen.Suffix)
}
