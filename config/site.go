package config

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

const (
	DefaultSite          = "https://burrow-io.github.io"
	DefaultBase          = "/"
	DefaultOutput        = "static"
	DefaultAssetsDirName = "assets"
)

// BuildConfiguration describes where the site is hosted, the path it is
// mounted under, how it is built and where compiled assets go.
// Values are only obtainable through New, Parse or LoadConfiguration and
// cannot change after construction.
type BuildConfiguration struct {
	site          string
	base          string
	outputMode    OutputMode
	assetsDirName string

	origin *url.URL
}

// LoadConfiguration returns the site's build configuration.
func LoadConfiguration() (BuildConfiguration, error) {
	mode, err := ParseOutputMode(DefaultOutput)
	if err != nil {
		return BuildConfiguration{}, err
	}
	return New(DefaultSite, DefaultBase, mode, DefaultAssetsDirName)
}

// New validates the given values and builds a BuildConfiguration from them.
// Values are stored exactly as supplied.
func New(site, base string, mode OutputMode, assetsDirName string) (BuildConfiguration, error) {
	origin, err := validateSite(site)
	if err != nil {
		return BuildConfiguration{}, err
	}
	if err := validateBase(base); err != nil {
		return BuildConfiguration{}, err
	}
	if !mode.valid() {
		return BuildConfiguration{}, newValidationError("output", mode.String(), "unknown output mode")
	}
	if err := validateAssetsDirName(assetsDirName); err != nil {
		return BuildConfiguration{}, err
	}

	return BuildConfiguration{
		site:          site,
		base:          base,
		outputMode:    mode,
		assetsDirName: assetsDirName,
		origin:        origin,
	}, nil
}

func (c BuildConfiguration) Site() string           { return c.site }
func (c BuildConfiguration) Base() string           { return c.base }
func (c BuildConfiguration) OutputMode() OutputMode { return c.outputMode }
func (c BuildConfiguration) AssetsDirName() string  { return c.assetsDirName }

// RoutePath returns the URL path of route once mounted under the base path.
// route is cleaned as a rooted path first, so ".." segments cannot climb out
// of the base. A trailing slash on route is kept.
func (c BuildConfiguration) RoutePath(route string) string {
	p := path.Join("/", c.base, path.Join("/", route))
	keepSlash := strings.HasSuffix(route, "/") || (route == "" && strings.HasSuffix(c.base, "/"))
	if keepSlash && p != "/" {
		p += "/"
	}
	return p
}

// CanonicalURL returns the absolute URL of route, used for canonical links
// and sitemap entries.
func (c BuildConfiguration) CanonicalURL(route string) string {
	if c.origin == nil {
		return ""
	}
	u := *c.origin
	u.Path = strings.TrimSuffix(u.Path, "/") + c.RoutePath(route)
	u.RawPath = ""
	return u.String()
}

// AssetURLPath returns the URL path an emitted asset is served from.
func (c BuildConfiguration) AssetURLPath(name string) string {
	return path.Join("/", c.base, filepath.ToSlash(c.assetsDirName), name)
}

// AssetsOutputDir returns the directory compiled assets are written to,
// relative to the build output root outRoot.
func (c BuildConfiguration) AssetsOutputDir(outRoot string) string {
	return filepath.Join(outRoot, filepath.FromSlash(c.assetsDirName))
}

func validateSite(site string) (*url.URL, error) {
	if site == "" {
		return nil, newValidationError("site", site, "must not be empty")
	}
	u, err := url.Parse(site)
	if err != nil {
		return nil, newValidationError("site", site, "not a parseable URL: "+err.Error())
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, newValidationError("site", site, "must be an absolute URL with scheme and host")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newValidationError("site", site, "scheme must be http or https")
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return nil, newValidationError("site", site, "must not carry a query or fragment")
	}
	return u, nil
}

func validateBase(base string) error {
	if !strings.HasPrefix(base, "/") {
		return newValidationError("base", base, "must start with /")
	}
	if strings.ContainsAny(base, "?# \t\r\n") {
		return newValidationError("base", base, "must be a plain URL path")
	}
	if hasDotDot(strings.Split(base, "/")) {
		return newValidationError("base", base, "must not contain .. segments")
	}
	return nil
}

func validateAssetsDirName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("assetsDirName", name, "must not be empty")
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return newValidationError("assetsDirName", name, "must be a relative directory name")
	}
	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	if hasDotDot(segments) {
		return newValidationError("assetsDirName", name, "must not contain .. segments")
	}
	if filepath.Clean(filepath.FromSlash(name)) == "." {
		return newValidationError("assetsDirName", name, "must name a directory below the output root")
	}
	return nil
}

func hasDotDot(segments []string) bool {
	for _, s := range segments {
		if s == ".." {
			return true
		}
	}
	return false
}
