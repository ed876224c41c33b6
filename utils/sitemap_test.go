package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/burrow-io/burrow-site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, base string) config.BuildConfiguration {
	t.Helper()
	cfg, err := config.New(config.DefaultSite, base, config.OutputStatic, config.DefaultAssetsDirName)
	require.NoError(t, err)
	return cfg
}

func TestGenerateSitemapContent(t *testing.T) {
	cfg := mustConfig(t, "/docs/")
	lastMod := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	content, err := GenerateSitemapContent(cfg, []string{"/guide/", "/", "/guide/"}, lastMod)
	require.NoError(t, err)

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(content), &sitemap))

	assert.Contains(t, content, `xmlns="`+sitemapNamespace+`"`)
	require.Len(t, sitemap.Urls, 2)
	assert.Equal(t, "https://burrow-io.github.io/docs/", sitemap.Urls[0].Loc)
	assert.Equal(t, "https://burrow-io.github.io/docs/guide/", sitemap.Urls[1].Loc)
	assert.Equal(t, "2024-03-09", sitemap.Urls[0].LastMod)
	assert.NotContains(t, content, "changefreq")
	assert.NotContains(t, content, "priority")
}

func TestGenerateSitemapContentWithoutLastMod(t *testing.T) {
	content, err := GenerateSitemapContent(mustConfig(t, "/"), []string{"/"}, time.Time{})
	require.NoError(t, err)
	assert.NotContains(t, content, "lastmod")
	assert.Contains(t, content, "<loc>https://burrow-io.github.io/</loc>")
}

func TestGenerateSitemaps(t *testing.T) {
	dir := t.TempDir()
	err := GenerateSitemaps(mustConfig(t, "/"), dir, []string{"/about/"}, time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), "https://burrow-io.github.io/about/")

	err = GenerateSitemaps(mustConfig(t, "/"), filepath.Join(dir, "missing"), nil, time.Now())
	assert.Error(t, err)
}

func TestDiscoverRoutes(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"index.html",
		"about/index.html",
		"blog/first-post/index.html",
		"assets/chunk/index.html",
		"assets/app.js",
		"404.html",
	}
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	routes, err := DiscoverRoutes(mustConfig(t, "/"), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/about/", "/blog/first-post/"}, routes)

	_, err = DiscoverRoutes(mustConfig(t, "/"), filepath.Join(dir, "nope"))
	assert.Error(t, err)
}
