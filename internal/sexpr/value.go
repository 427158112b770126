// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sexpr implements the conversion engine that turns a generic
// document tree into S-expression text. The engine is pure: it performs no
// I/O, holds no state between calls, and produces byte-identical output for
// identical inputs. Decoding source formats into the Value tree is the job
// of internal/decode.
package sexpr

import "strconv"

// Kind identifies the shape of a Value. The set is closed: the engine
// dispatches exhaustively over these kinds and treats anything else as a
// contract violation by the caller.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "invalid"
}

// Pair is one mapping entry. Entry order is significant and preserved
// through conversion; key uniqueness is the upstream parser's concern.
type Pair struct {
	Key   string
	Value *Value
}

// Value is a node in the document tree: a mapping, a sequence, or one of
// the scalar kinds. Exactly one field group is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Str  string // KindString
	Int  int64  // KindInt
	Num  string // KindFloat: decimal text as written in the source
	Bool bool   // KindBool

	Items []*Value // KindSequence
	Pairs []Pair   // KindMapping
}

// Null returns the null scalar.
func Null() *Value { return &Value{Kind: KindNull} }

// Boolean returns a boolean scalar.
func Boolean(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// Integer returns an integer scalar.
func Integer(i int64) *Value { return &Value{Kind: KindInt, Int: i} }

// Float returns a floating-point scalar. The rendered form is the shortest
// decimal text that round-trips to f.
func Float(f float64) *Value {
	return &Value{Kind: KindFloat, Num: strconv.FormatFloat(f, 'g', -1, 64)}
}

// FloatText returns a floating-point scalar that renders as text, verbatim.
// Decoders use this to preserve the fractional digits the source document
// was written with (1.50 stays 1.50).
func FloatText(text string) *Value { return &Value{Kind: KindFloat, Num: text} }

// String returns a text scalar.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Sequence returns a sequence of the given elements, in order.
func Sequence(items ...*Value) *Value { return &Value{Kind: KindSequence, Items: items} }

// Mapping returns a mapping of the given entries, in order.
func Mapping(pairs ...Pair) *Value { return &Value{Kind: KindMapping, Pairs: pairs} }
