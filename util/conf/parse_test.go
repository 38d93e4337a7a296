package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/parrot/util/conf"
)

type testConfig struct {
	LogLevel string `conf:"log_level"`

	Body struct {
		Limit  int64 `conf:"limit"`
		Strict bool  `conf:"strict"`
	} `conf:"body"`
}

const prefix = "PARROT_TEST_"

func defaults() conf.Defaults {
	d := conf.MergeDefaults("body", conf.Defaults{
		"limit":  100,
		"strict": false,
	})
	d["log_level"] = "info"
	return d
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  defaults(),
		EnvPrefix: prefix,
	})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(100), cfg.Body.Limit)
	assert.False(t, cfg.Body.Strict)
}

func TestParse_File(t *testing.T) {
	path := writeFile(t, "config.json", `{"log_level":"warn","body":{"strict":true}}`)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  defaults(),
		EnvPrefix: prefix,
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Body.Strict)
	assert.Equal(t, int64(100), cfg.Body.Limit)
}

func TestParse_Precedence(t *testing.T) {
	file := writeFile(t, "config.json", `{"log_level":"warn","body":{"limit":5}}`)
	envFile := writeFile(t, ".env", prefix+"LOG_LEVEL=debug\n"+prefix+"BODY__LIMIT=7\n")

	t.Setenv(prefix+"BODY__LIMIT", "9")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  defaults(),
		EnvPrefix: prefix,
		FileName:  file,
		EnvFile:   envFile,
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(9), cfg.Body.Limit)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		EnvPrefix: prefix,
		FileName:  filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("ns", map[string]int{"a": 1}, map[string]int{"b": 2})

	assert.Equal(t, map[string]int{"ns.a": 1, "ns.b": 2}, merged)
}
