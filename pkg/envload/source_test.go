package envload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/envload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Lookup(t *testing.T) {
	t.Setenv("ENVLOAD_TEST_VALUE", "from-process")

	value, err := envload.System.Lookup("ENVLOAD_TEST_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "from-process", value)

	_, err = envload.System.Lookup("ENVLOAD_TEST_DEFINITELY_MISSING")
	assert.ErrorIs(t, err, envload.ErrNotPresent)
}

func TestSystem_EmptyValueIsPresent(t *testing.T) {
	t.Setenv("ENVLOAD_TEST_EMPTY", "")

	value, err := envload.System.Lookup("ENVLOAD_TEST_EMPTY")
	require.NoError(t, err)
	assert.Equal(t, "", value, "empty string is a present value, not absence")
}

func TestChainSource_FirstHitWins(t *testing.T) {
	chain := envload.ChainSource{
		envload.MapSource{"A": "first"},
		envload.MapSource{"A": "second", "B": "fallback"},
	}

	value, err := chain.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, "first", value)

	value, err = chain.Lookup("B")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	_, err = chain.Lookup("C")
	assert.ErrorIs(t, err, envload.ErrNotPresent)
}

func TestChainSource_NonAbsentErrorStopsChain(t *testing.T) {
	chain := envload.ChainSource{
		notTextSource{},
		envload.MapSource{"A": "never reached"},
	}

	_, err := chain.Lookup("A")
	assert.ErrorIs(t, err, envload.ErrNotText)
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestYAMLSource_FlattensNestedMaps(t *testing.T) {
	path := writeYAML(t, `
id: 5
test-name: john doe
nested:
  host: yoyo
  port: 8080
log.level: debug
tags:
  - a
  - b
empty:
`)

	src, err := envload.NewYAMLSource(path)
	require.NoError(t, err)

	for key, want := range map[string]string{
		"ID":          "5",
		"TEST_NAME":   "john doe",
		"NESTED_HOST": "yoyo",
		"NESTED_PORT": "8080",
		"LOG_LEVEL":   "debug",
	} {
		value, err := src.Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, value, key)
	}

	_, err = src.Lookup("TAGS")
	assert.ErrorIs(t, err, envload.ErrNotPresent, "sequences have no flat textual form")

	_, err = src.Lookup("EMPTY")
	assert.ErrorIs(t, err, envload.ErrNotPresent)
}

func TestYAMLSource_FeedsTheLoadProtocol(t *testing.T) {
	path := writeYAML(t, `
id: 5
nested:
  host: yoyo
`)
	src, err := envload.NewYAMLSource(path)
	require.NoError(t, err)

	full := envload.ChainSource{envload.MapSource{"TEST_NAME": "john doe"}, src}

	var cfg testConfig
	require.NoError(t, envload.Load(full, "", &cfg))
	assert.Equal(t, int32(5), cfg.ID)
	assert.Equal(t, "yoyo", cfg.Nested.Host)
}

func TestYAMLSource_WithExpansion(t *testing.T) {
	path := writeYAML(t, `
host: ${DEPLOY_HOST:-fallback}
port: ${DEPLOY_PORT:-8080}
`)

	src, err := envload.NewYAMLSource(path, envload.WithExpansion(envload.MapSource{"DEPLOY_HOST": "prod.internal"}))
	require.NoError(t, err)

	host, err := src.Lookup("HOST")
	require.NoError(t, err)
	assert.Equal(t, "prod.internal", host)

	port, err := src.Lookup("PORT")
	require.NoError(t, err)
	assert.Equal(t, "8080", port)
}

func TestYAMLSource_ReadFailure(t *testing.T) {
	_, err := envload.NewYAMLSource(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read yaml source")
}

func TestYAMLSource_ParseFailure(t *testing.T) {
	path := writeYAML(t, "a: [unclosed")
	_, err := envload.NewYAMLSource(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml source")
}
