package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestParseFullFile(t *testing.T) {
	cfg, err := Parse([]byte(`
site: https://burrow-io.github.io
base: /blog/
output: server
build:
  assets: _astro
`))
	require.NoError(t, err)

	assert.Equal(t, "https://burrow-io.github.io", cfg.Site())
	assert.Equal(t, "/blog/", cfg.Base())
	assert.Equal(t, OutputServer, cfg.OutputMode())
	assert.Equal(t, "_astro", cfg.AssetsDirName())
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("base: /docs/\n"))
	require.NoError(t, err)

	want, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, want.Site(), cfg.Site())
	assert.Equal(t, "/docs/", cfg.Base())
	assert.Equal(t, want.OutputMode(), cfg.OutputMode())
	assert.Equal(t, want.AssetsDirName(), cfg.AssetsDirName())

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, want, empty)
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "base without slash", doc: "base: assets\n", field: "base"},
		{name: "site without scheme", doc: "site: burrow-io.github.io\n", field: "site"},
		{name: "unknown output", doc: "output: fast\n", field: "output"},
		{name: "assets traversal", doc: "build:\n  assets: ../secrets\n", field: "assetsDirName"},
		{name: "explicit empty base", doc: "base: \"\"\n", field: "base"},
		{name: "site reported before output", doc: "site: nope\noutput: fast\n", field: "site"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("site: https://burrow-io.github.io\ntrailingSlash: always\n"))
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "decoding config")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: hybrid\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, OutputHybrid, cfg.OutputMode())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestMarshalYAMLMatchesFileLayout(t *testing.T) {
	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "output: static\n")
	assert.Contains(t, string(out), "build:\n  assets: assets\n")

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Site(), again.Site())
	assert.Equal(t, cfg.Base(), again.Base())
	assert.Equal(t, cfg.OutputMode(), again.OutputMode())
	assert.Equal(t, cfg.AssetsDirName(), again.AssetsDirName())
}
