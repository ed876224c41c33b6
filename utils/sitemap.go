package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/burrow-io/burrow-site/config"
	"github.com/pkg/errors"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// GenerateSitemaps writes sitemap.xml into outDir.
func GenerateSitemaps(cfg config.BuildConfiguration, outDir string, routes []string, lastMod time.Time) error {
	xmlOutput, err := GenerateSitemapContent(cfg, routes, lastMod)
	if err != nil {
		return err
	}

	dest := filepath.Join(outDir, "sitemap.xml")
	err = os.WriteFile(dest, []byte(xml.Header+xmlOutput+"\n"), 0644)
	if err != nil {
		return errors.Wrapf(err, "writing %s", dest)
	}

	return nil
}

// GenerateSitemapContent renders one entry per distinct route, located under
// the configured site origin and base path.
func GenerateSitemapContent(cfg config.BuildConfiguration, routes []string, lastMod time.Time) (string, error) {
	sitemap := Sitemap{
		Xmlns: sitemapNamespace,
	}

	seen := make(map[string]bool, len(routes))
	var locs []string
	for _, route := range routes {
		loc := cfg.CanonicalURL(route)
		if seen[loc] {
			continue
		}
		seen[loc] = true
		locs = append(locs, loc)
	}
	sort.Strings(locs)

	var mod string
	if !lastMod.IsZero() {
		mod = lastMod.Format("2006-01-02")
	}
	for _, loc := range locs {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     loc,
			LastMod: mod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
