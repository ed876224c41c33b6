package utils

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/burrow-io/burrow-site/config"
	"github.com/pkg/errors"
)

// DiscoverRoutes walks a built output tree and returns the route of every
// index.html page, relative to the base path. The assets directory is not
// searched.
func DiscoverRoutes(cfg config.BuildConfiguration, outDir string) ([]string, error) {
	assetsDir := cfg.AssetsOutputDir(outDir)
	var routes []string

	err := filepath.WalkDir(outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == assetsDir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "index.html" {
			return nil
		}

		rel, err := filepath.Rel(outDir, filepath.Dir(path))
		if err != nil {
			return err
		}
		if rel == "." {
			routes = append(routes, "/")
			return nil
		}
		routes = append(routes, "/"+strings.Trim(filepath.ToSlash(rel), "/")+"/")
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", outDir)
	}

	sort.Strings(routes)
	return routes, nil
}
