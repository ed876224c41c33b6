package config

import "strings"

// OutputMode selects between pre-rendering pages at build time and rendering
// them per request. The set of modes is closed; values outside it are
// rejected by ParseOutputMode and New.
type OutputMode int

const (
	outputModeUnknown OutputMode = iota
	OutputStatic
	OutputServer
	OutputHybrid
	outputModeEnd
)

var outputModeNames = map[OutputMode]string{
	OutputStatic: "static",
	OutputServer: "server",
	OutputHybrid: "hybrid",
}

// ParseOutputMode maps the configuration spelling of an output mode to its value.
func ParseOutputMode(s string) (OutputMode, error) {
	for mode, name := range outputModeNames {
		if s == name {
			return mode, nil
		}
	}
	return outputModeUnknown, newValidationError("output", s,
		"unknown output mode (allowed: "+strings.Join(OutputModeNames(), "|")+")")
}

// OutputModeNames lists the accepted spellings in declaration order.
func OutputModeNames() []string {
	names := make([]string, 0, len(outputModeNames))
	for m := outputModeUnknown + 1; m < outputModeEnd; m++ {
		names = append(names, outputModeNames[m])
	}
	return names
}

func (m OutputMode) String() string {
	if name, ok := outputModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Prerenders reports whether pages are rendered to files at build time by
// default. Hybrid sites pre-render unless a page opts out.
func (m OutputMode) Prerenders() bool {
	return m == OutputStatic || m == OutputHybrid
}

func (m OutputMode) valid() bool {
	return m > outputModeUnknown && m < outputModeEnd
}

// MarshalYAML writes the mode using its configuration spelling.
func (m OutputMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
