package envload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/envload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nestedConfig / testConfig 按 envgen 的输出形状手写，
// 端到端验证组合装配协议本身。

type nestedConfig struct {
	Host    string
	Address envload.Optional[envload.Masked[string]]
}

var _ envload.KeyLoader = (*nestedConfig)(nil)

func (c *nestedConfig) UnmarshalEnv(string) error { return envload.ErrNoTextForm }

func (c *nestedConfig) LoadEnv(src envload.Source, key string) error {
	if err := envload.Load(src, envload.JoinKey(key, "HOST"), &c.Host); err != nil {
		return err
	}
	if err := envload.Load(src, envload.JoinKey(key, "ADDRESS"), &c.Address); err != nil {
		return err
	}

	return nil
}

type testConfig struct {
	ID      int32
	Name    string
	GuestID envload.Optional[uint64]
	Nested  nestedConfig
}

var _ envload.KeyLoader = (*testConfig)(nil)

func (c *testConfig) UnmarshalEnv(string) error { return envload.ErrNoTextForm }

func (c *testConfig) LoadEnv(src envload.Source, key string) error {
	if err := envload.Load(src, envload.JoinKey(key, "ID"), &c.ID); err != nil {
		return err
	}
	if err := envload.LoadOrFile(src, "TEST_NAME", &c.Name); err != nil {
		return err
	}
	if err := envload.Load(src, envload.JoinKey(key, "GUEST_ID"), &c.GuestID); err != nil {
		return err
	}
	if err := envload.Load(src, envload.JoinKey(key, "NESTED"), &c.Nested); err != nil {
		return err
	}

	return nil
}

func baseSource() envload.MapSource {
	return envload.MapSource{
		"ID":          "5",
		"TEST_NAME":   "john doe",
		"GUEST_ID":    "4",
		"NESTED_HOST": "yoyo",
	}
}

func TestGenerated_FullLoad(t *testing.T) {
	var cfg testConfig
	require.NoError(t, envload.Load(baseSource(), "", &cfg))

	assert.Equal(t, int32(5), cfg.ID)
	assert.Equal(t, "john doe", cfg.Name)
	assert.Equal(t, uint64(4), cfg.GuestID.MustGet())
	assert.Equal(t, "yoyo", cfg.Nested.Host)
	assert.False(t, cfg.Nested.Address.Present())
}

func TestGenerated_OptionalFieldsAbsent(t *testing.T) {
	src := baseSource()
	delete(src, "GUEST_ID")

	var cfg testConfig
	require.NoError(t, envload.Load(src, "", &cfg))
	assert.False(t, cfg.GuestID.Present())
}

func TestGenerated_ExplicitKeyFileFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name")
	require.NoError(t, os.WriteFile(path, []byte("test"), 0o600))

	src := baseSource()
	delete(src, "TEST_NAME")
	src["TEST_NAME_FILE"] = path

	var cfg testConfig
	require.NoError(t, envload.Load(src, "", &cfg))
	assert.Equal(t, "test", cfg.Name)
}

func TestGenerated_FileContentsNotTrimmed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name")
	require.NoError(t, os.WriteFile(path, []byte("test\n"), 0o600))

	src := baseSource()
	delete(src, "TEST_NAME")
	src["TEST_NAME_FILE"] = path

	var cfg testConfig
	require.NoError(t, envload.Load(src, "", &cfg))
	assert.Equal(t, "test\n", cfg.Name, "file contents are used verbatim")
}

func TestGenerated_FirstFailureWins(t *testing.T) {
	src := baseSource()
	delete(src, "ID")
	delete(src, "TEST_NAME")

	var cfg testConfig
	err := envload.Load(src, "", &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, envload.ErrNotPresent)

	var envErr *envload.Error
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "ID", envErr.Key, "fields load in declaration order, the first failure aborts")
}

func TestGenerated_NestedErrorCarriesFullKey(t *testing.T) {
	src := baseSource()
	delete(src, "NESTED_HOST")

	var cfg testConfig
	err := envload.Load(src, "", &cfg)
	require.Error(t, err)

	var envErr *envload.Error
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "NESTED_HOST", envErr.Key, "the innermost joined key survives re-wrapping")
}

func TestGenerated_PrefixPropagates(t *testing.T) {
	src := envload.MapSource{
		"APP_ID":          "5",
		"TEST_NAME":       "john doe",
		"APP_NESTED_HOST": "yoyo",
	}

	var cfg testConfig
	require.NoError(t, envload.Load(src, "APP", &cfg))
	assert.Equal(t, int32(5), cfg.ID)
	assert.Equal(t, "john doe", cfg.Name, "explicit keys ignore the enclosing prefix")
	assert.Equal(t, "yoyo", cfg.Nested.Host)
}

func TestGenerated_MaskedOptionalLeaf(t *testing.T) {
	src := baseSource()
	src["NESTED_ADDRESS"] = "10.0.0.1"

	var cfg testConfig
	require.NoError(t, envload.Load(src, "", &cfg))
	require.True(t, cfg.Nested.Address.Present())
	assert.Equal(t, "10.0.0.1", cfg.Nested.Address.MustGet().Value())
	assert.Equal(t, "***", cfg.Nested.Address.String())
}

func TestGenerated_CompositeHasNoTextualForm(t *testing.T) {
	// 把组合类型当作另一个组合的 value-or-file 字段：直接值没有意义
	var cfg testConfig
	err := cfg.UnmarshalEnv("whatever")
	assert.ErrorIs(t, err, envload.ErrNoTextForm)
}
