// Package render serializes documents, sections and summaries as indented
// JSON, YAML, or deterministic CBOR.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// DefaultIndent is the indentation width used when none is configured.
const DefaultIndent = 2

// cborMode uses Core Deterministic Encoding (RFC 8949 §4.2), so the same
// document always produces identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat accepts "json", "yaml", "yml" or "cbor" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or cbor)", s)
	}
}

// Write encodes v to w. indent is the number of spaces per level; 0 or
// less writes compact JSON. YAML always indents, with at least 2 spaces.
// Text output ends with a newline; CBOR ignores indent.
func Write(w io.Writer, v any, format Format, indent int) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, v, indent)
	case FormatYAML:
		return writeYAML(w, v, indent)
	case FormatCBOR:
		return writeCBOR(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any, indent int) error {
	tree, err := plainTree(v)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeCBOR(w io.Writer, v any) error {
	tree, err := plainTree(v)
	if err != nil {
		return err
	}

	data, err := cborMode.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode cbor: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// plainTree goes through JSON first so struct tags and json.Number values
// are honoured, and returns a tree of native values.
func plainTree(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return native(tree), nil
}

// native replaces json.Number with int64 or float64 so YAML and CBOR emit
// plain numbers instead of strings.
func native(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = native(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = native(e)
		}
		return t
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}
		return string(t)
	default:
		return v
	}
}
