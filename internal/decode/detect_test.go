// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sexpr-engine/internal/sexpr"
	"github.com/pdiddy/sexpr-engine/pkg/types"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want types.Format
	}{
		{"yaml extension", "doc.yaml", "a: 1", types.FormatYAML},
		{"yml extension", "doc.yml", "a: 1", types.FormatYAML},
		{"json extension", "doc.json", `{"a": 1}`, types.FormatJSON},
		{"extension wins over content", "doc.yaml", `{"a": 1}`, types.FormatYAML},
		{"upper-case extension", "DOC.JSON", `{"a": 1}`, types.FormatJSON},
		{"no extension, json content", "doc", `{"a": 1}`, types.FormatJSON},
		{"no extension, yaml content", "doc", "a: 1", types.FormatYAML},
		{"unknown extension, yaml content", "doc.txt", "a: 1", types.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFormat(tt.path, []byte(tt.data))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "invoice.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("receipt: Oz-Ware Purchase Invoice\n"), 0o644))

	v, format, err := File(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, types.FormatYAML, format)
	require.Equal(t, sexpr.KindMapping, v.Kind)
	assert.Equal(t, "receipt", v.Pairs[0].Key)

	jsonPath := filepath.Join(dir, "invoice.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"receipt": "Oz-Ware Purchase Invoice"}`), 0o644))

	v, format, err = File(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, types.FormatJSON, format)
	require.Equal(t, sexpr.KindMapping, v.Kind)
	assert.Equal(t, "receipt", v.Pairs[0].Key)
}

func TestFileErrors(t *testing.T) {
	_, _, err := File(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"a":`), 0o644))
	_, _, err = File(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}
