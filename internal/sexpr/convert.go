// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultIndent is the pretty-mode indent width when Options.Indent is unset.
const defaultIndent = 2

// defaultDateMarkers arms the date heuristic for any field whose name
// contains "date" (case-insensitive).
var defaultDateMarkers = []string{"date"}

// Options configures a conversion. The zero value renders compact output
// with the empty prefix and the default date markers.
type Options struct {
	// Prefix is the namespace prefix prepended to every mapping-key symbol,
	// typically the source format name ("yaml", "json"). Used verbatim.
	Prefix string

	// Pretty selects the indented multi-line rendering. Compact and pretty
	// output differ only in whitespace.
	Pretty bool

	// Indent is the pretty-mode indent width in spaces (default 2).
	Indent int

	// DateMarkers are lower-case substrings that, when found in a field
	// name, arm the date heuristic for that field's value (default "date").
	DateMarkers []string
}

func (o Options) indentWidth() int {
	if o.Indent > 0 {
		return o.Indent
	}
	return defaultIndent
}

func (o Options) dateMarkers() []string {
	if len(o.DateMarkers) > 0 {
		return o.DateMarkers
	}
	return defaultDateMarkers
}

// Convert renders v as a single S-expression. The transformation is total:
// every well-formed Value produces output, and re-converting the same tree
// with the same options yields byte-identical text. A Value with a Kind
// outside the closed set panics; that indicates a bug in the decoder, not
// a recoverable condition.
func Convert(v *Value, opts Options) string {
	c := converter{opts: opts}
	var b strings.Builder
	c.value(&b, v, "", 0)
	return b.String()
}

type converter struct {
	opts Options
}

// value dispatches on the shape of v. field is the mapping key under which
// v was found, or "" at the root; sequences pass their own field name down
// to every element so a list of dates still date-converts per element.
func (c *converter) value(b *strings.Builder, v *Value, field string, depth int) {
	switch v.Kind {
	case KindMapping:
		c.mapping(b, v.Pairs, depth)
	case KindSequence:
		c.sequence(b, v.Items, field, depth)
	case KindBool:
		if v.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindNull:
		b.WriteString("nil")
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString(v.Num)
	case KindString:
		c.text(b, v.Str, field)
	default:
		panic(fmt.Sprintf("sexpr: value has invalid kind %d", int(v.Kind)))
	}
}

// text classifies a string scalar: date-shaped values in date-named fields
// become make-date forms, part-number-shaped values become quoted symbols,
// everything else a quoted string literal.
func (c *converter) text(b *strings.Builder, s, field string) {
	if c.isDateField(field) {
		if y, m, d, ok := splitDate(s); ok {
			b.WriteString("(make-date ")
			b.WriteString(y)
			b.WriteByte(' ')
			b.WriteString(m)
			b.WriteByte(' ')
			b.WriteString(d)
			b.WriteByte(')')
			return
		}
		// Date-named field with a non-date value degrades to a plain string.
	}
	if isPartNumber(s) {
		b.WriteByte('\'')
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	b.WriteString(escape(s))
	b.WriteByte('"')
}

// mapping renders each entry as a (prefix:key value) pair, preserving entry
// order. The key text goes into the symbol unescaped.
func (c *converter) mapping(b *strings.Builder, pairs []Pair, depth int) {
	if len(pairs) == 0 {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	for i, p := range pairs {
		c.separator(b, i, depth+1)
		b.WriteByte('(')
		b.WriteString(c.opts.Prefix)
		b.WriteByte(':')
		b.WriteString(p.Key)
		b.WriteByte(' ')
		c.value(b, p.Value, p.Key, depth+1)
		b.WriteByte(')')
	}
	c.closeList(b, depth)
}

// sequence renders elements in order, each converted under the sequence's
// own field name.
func (c *converter) sequence(b *strings.Builder, items []*Value, field string, depth int) {
	if len(items) == 0 {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	for i, item := range items {
		c.separator(b, i, depth+1)
		c.value(b, item, field, depth+1)
	}
	c.closeList(b, depth)
}

// separator writes the joiner before child i of a list: nothing before the
// first child and a single space otherwise in compact mode, a newline plus
// indentation in pretty mode. Compact and pretty share one traversal and
// differ only here and in closeList, which keeps the two renderings
// whitespace-equivalent by construction.
func (c *converter) separator(b *strings.Builder, i, depth int) {
	if !c.opts.Pretty {
		if i > 0 {
			b.WriteByte(' ')
		}
		return
	}
	b.WriteByte('\n')
	c.writeIndent(b, depth)
}

// closeList writes the closing parenthesis of a non-empty list: directly in
// compact mode, on its own line at the parent's indent in pretty mode.
func (c *converter) closeList(b *strings.Builder, depth int) {
	if c.opts.Pretty {
		b.WriteByte('\n')
		c.writeIndent(b, depth)
	}
	b.WriteByte(')')
}

func (c *converter) writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth*c.opts.indentWidth(); i++ {
		b.WriteByte(' ')
	}
}

// isDateField reports whether the field name arms the date heuristic.
// The root and sequence elements without an inherited name never do.
func (c *converter) isDateField(field string) bool {
	if field == "" {
		return false
	}
	lower := strings.ToLower(field)
	for _, marker := range c.opts.dateMarkers() {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// escaper rewrites the two characters the string-literal grammar reserves.
// Other characters, control characters included, pass through as-is.
var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}
