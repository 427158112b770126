// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sexpr-engine/internal/sexpr"
)

const invoiceYAML = `receipt: Oz-Ware Purchase Invoice
date: 2012-08-06
customer:
  first_name: Dorothy
  family_name: Gale
items:
  - part_no: A4786
    descrip: Water Bucket (Filled)
    price: 1.47
    quantity: 4
paid: false
ship_to: null
`

func TestYAMLInvoice(t *testing.T) {
	v, err := YAML(strings.NewReader(invoiceYAML))
	require.NoError(t, err)
	require.Equal(t, sexpr.KindMapping, v.Kind)

	keys := make([]string, len(v.Pairs))
	for i, p := range v.Pairs {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{"receipt", "date", "customer", "items", "paid", "ship_to"}, keys,
		"mapping order must follow the document")

	// Unquoted 2012-08-06 resolves to !!timestamp; it must arrive as text.
	date := v.Pairs[1].Value
	require.Equal(t, sexpr.KindString, date.Kind)
	assert.Equal(t, "2012-08-06", date.Str)

	items := v.Pairs[3].Value
	require.Equal(t, sexpr.KindSequence, items.Kind)
	require.Len(t, items.Items, 1)

	first := items.Items[0]
	require.Equal(t, sexpr.KindMapping, first.Kind)
	assert.Equal(t, sexpr.FloatText("1.47"), first.Pairs[2].Value)
	assert.Equal(t, sexpr.Integer(4), first.Pairs[3].Value)

	assert.Equal(t, sexpr.Boolean(false), v.Pairs[4].Value)
	assert.Equal(t, sexpr.Null(), v.Pairs[5].Value)
}

func TestYAMLScalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *sexpr.Value
	}{
		{"string", `hello`, sexpr.String("hello")},
		{"quoted number stays text", `"42"`, sexpr.String("42")},
		{"integer", `42`, sexpr.Integer(42)},
		{"hex integer", `0x1A`, sexpr.Integer(26)},
		{"float keeps trailing zero", `1.50`, sexpr.FloatText("1.50")},
		{"exponent float", `1e3`, sexpr.FloatText("1e3")},
		{"bool", `true`, sexpr.Boolean(true)},
		{"null word", `null`, sexpr.Null()},
		{"null tilde", `~`, sexpr.Null()},
		{"empty document", ``, sexpr.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := YAML(strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestYAMLAlias(t *testing.T) {
	src := "base: &b\n  city: Emerald\nship: *b\n"
	v, err := YAML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, v.Pairs, 2)
	assert.Equal(t, v.Pairs[0].Value, v.Pairs[1].Value)
}

func TestYAMLMalformed(t *testing.T) {
	_, err := YAML(strings.NewReader("a: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding yaml")
}
