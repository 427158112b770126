// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration and format types used by the
// CLI surface and the decoders.
package types

// Format identifies a supported source document format. Its text doubles as
// the namespace prefix recorded in every emitted mapping-key symbol.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Prefix returns the namespace prefix for documents of this format.
func (f Format) Prefix() string { return string(f) }

// ConvertConfig holds settings for the conversion surface.
type ConvertConfig struct {
	// Prefix overrides the namespace prefix derived from the input format.
	// Empty means use the detected format's name.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Pretty selects indented multi-line output (default compact).
	Pretty bool `json:"pretty" yaml:"pretty"`

	// Indent is the pretty-mode indent width in spaces (default 2).
	Indent int `json:"indent" yaml:"indent"`

	// DateMarkers are field-name substrings that arm the date heuristic
	// (default ["date"]).
	DateMarkers []string `json:"date_markers,omitempty" yaml:"date_markers,omitempty"`
}

// DefaultConvertConfig returns the conversion defaults.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Indent:      2,
		DateMarkers: []string{"date"},
	}
}
