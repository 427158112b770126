// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode builds the engine's Value tree from YAML or JSON source
// text. Both decoders preserve mapping key order and the literal text of
// numbers, which the S-expression renderer depends on for deterministic
// output.
package decode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sexpr-engine/internal/sexpr"
)

// YAML decodes the first document of a YAML stream. An empty stream yields
// the null value. Decoding goes through yaml.Node rather than a Go map so
// that mapping key order survives.
func YAML(r io.Reader) (*sexpr.Value, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return sexpr.Null(), nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return yamlNode(&root)
}

func yamlNode(n *yaml.Node) (*sexpr.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return sexpr.Null(), nil
		}
		return yamlNode(n.Content[0])
	case yaml.MappingNode:
		pairs := make([]sexpr.Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, sexpr.Pair{Key: n.Content[i].Value, Value: v})
		}
		return sexpr.Mapping(pairs...), nil
	case yaml.SequenceNode:
		items := make([]*sexpr.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return sexpr.Sequence(items...), nil
	case yaml.AliasNode:
		return yamlNode(n.Alias)
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	}
	return nil, fmt.Errorf("decoding yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

// yamlScalar maps a resolved scalar tag onto the engine's scalar set.
// Timestamps stay textual: an unquoted 2012-08-06 resolves to !!timestamp,
// and the engine's date heuristic wants the raw text, not a time value.
// A scalar whose tag and text disagree falls back to the raw text.
func yamlScalar(n *yaml.Node) *sexpr.Value {
	switch n.Tag {
	case "!!null":
		return sexpr.Null()
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return sexpr.Boolean(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return sexpr.Integer(i)
		}
	case "!!float":
		if _, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return sexpr.FloatText(n.Value)
		}
	}
	return sexpr.String(n.Value)
}
