package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config/yaml.go

type BuildOptions struct {
	Assets *string `yaml:"assets"`
}

// SiteFile is the on-disk form of a BuildConfiguration. Keys left out take
// the values LoadConfiguration uses.
type SiteFile struct {
	Site   *string      `yaml:"site"`
	Base   *string      `yaml:"base"`
	Output *string      `yaml:"output"`
	Build  BuildOptions `yaml:"build"`
}

type siteDocument struct {
	Site   string             `yaml:"site"`
	Base   string             `yaml:"base"`
	Output OutputMode         `yaml:"output"`
	Build  buildOptionsOutput `yaml:"build"`
}

type buildOptionsOutput struct {
	Assets string `yaml:"assets"`
}

// LoadFile reads and validates the configuration stored at filename.
func LoadFile(filename string) (BuildConfiguration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return BuildConfiguration{}, errors.Wrapf(err, "reading config %s", filename)
	}
	return Parse(data)
}

// Parse decodes a YAML site file and validates the result.
func Parse(data []byte) (BuildConfiguration, error) {
	var file SiteFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return BuildConfiguration{}, errors.Wrap(err, "decoding config")
	}
	return file.Resolve()
}

// Resolve fills in defaults for missing keys and validates the values.
func (f SiteFile) Resolve() (BuildConfiguration, error) {
	site := stringOr(f.Site, DefaultSite)
	base := stringOr(f.Base, DefaultBase)
	assets := stringOr(f.Build.Assets, DefaultAssetsDirName)

	mode, err := ParseOutputMode(stringOr(f.Output, DefaultOutput))
	if err != nil {
		// site and base are reported ahead of output, as New does.
		if _, siteErr := validateSite(site); siteErr != nil {
			return BuildConfiguration{}, siteErr
		}
		if baseErr := validateBase(base); baseErr != nil {
			return BuildConfiguration{}, baseErr
		}
		return BuildConfiguration{}, err
	}
	return New(site, base, mode, assets)
}

// MarshalYAML writes the configuration in the SiteFile layout.
func (c BuildConfiguration) MarshalYAML() (interface{}, error) {
	return siteDocument{
		Site:   c.site,
		Base:   c.base,
		Output: c.outputMode,
		Build:  buildOptionsOutput{Assets: c.assetsDirName},
	}, nil
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
