// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pdiddy/sexpr-engine/internal/sexpr"
	"github.com/pdiddy/sexpr-engine/pkg/types"
)

// DetectFormat decides the source format of a document. The file extension
// wins when it is recognized; otherwise the content decides: bytes that are
// strict JSON detect as JSON, everything else falls back to YAML (JSON is a
// YAML subset, so the YAML decoder still accepts it).
func DetectFormat(path string, data []byte) types.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.FormatYAML
	case ".json":
		return types.FormatJSON
	}
	if json.Valid(data) {
		return types.FormatJSON
	}
	return types.FormatYAML
}

// Document decodes data as the given format.
func Document(data []byte, format types.Format) (*sexpr.Value, error) {
	switch format {
	case types.FormatJSON:
		return JSON(bytes.NewReader(data))
	case types.FormatYAML:
		return YAML(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// File reads a document from disk, detects its format, and decodes it.
func File(path string) (*sexpr.Value, types.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	format := DetectFormat(path, data)
	v, err := Document(data, format)
	if err != nil {
		return nil, format, fmt.Errorf("%s: %w", path, err)
	}
	return v, format, nil
}
