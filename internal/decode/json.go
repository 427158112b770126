// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pdiddy/sexpr-engine/internal/sexpr"
)

// JSON decodes a single top-level JSON value. Object key order is taken
// from the token stream, not a Go map, and numbers keep their source text.
func JSON(r io.Reader) (*sexpr.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := jsonValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding json: empty input")
		}
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decoding json: trailing data after top-level value")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder) (*sexpr.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonToken(dec, tok)
}

func jsonToken(dec *json.Decoder, tok json.Token) (*sexpr.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return sexpr.String(t), nil
	case json.Number:
		return jsonNumber(t), nil
	case bool:
		return sexpr.Boolean(t), nil
	case nil:
		return sexpr.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonObject(dec *json.Decoder) (*sexpr.Value, error) {
	var pairs []sexpr.Pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", keyTok)
		}
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, sexpr.Pair{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return sexpr.Mapping(pairs...), nil
}

func jsonArray(dec *json.Decoder) (*sexpr.Value, error) {
	var items []*sexpr.Value
	for dec.More() {
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return sexpr.Sequence(items...), nil
}

// jsonNumber keeps integers and floats apart by the shape of the literal:
// no point or exponent means integer. Integers too wide for int64 keep
// their literal text, same as floats.
func jsonNumber(n json.Number) *sexpr.Value {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return sexpr.Integer(i)
		}
	}
	return sexpr.FloatText(text)
}
