package container

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/simonhull/vrmmeta/internal/types"
)

// Decode parses a JSON chunk payload into a Document. offset is the file
// offset of the payload's first byte and is used in error reports.
//
// Numbers are kept as json.Number so they re-encode verbatim. Trailing
// whitespace (GLB pads JSON chunks with spaces) is accepted; anything
// else after the top-level value is not.
func Decode(payload []byte, path string, offset int64) (types.Document, error) {
	if !utf8.Valid(payload) {
		at := invalidUTF8At(payload)
		return nil, &types.FormatError{
			Path:   path,
			Kind:   types.InvalidUTF8,
			Offset: offset + int64(at),
			Detail: "JSON chunk is not valid UTF-8",
		}
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &types.FormatError{
			Path:   path,
			Kind:   types.InvalidJSON,
			Offset: offset + dec.InputOffset(),
			Err:    err,
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &types.FormatError{
			Path:   path,
			Kind:   types.InvalidJSON,
			Offset: offset + dec.InputOffset(),
			Detail: "unexpected data after top-level value",
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &types.FormatError{
			Path:   path,
			Kind:   types.InvalidJSON,
			Offset: offset,
			Detail: "top-level value is not an object",
		}
	}

	return types.Document(obj), nil
}

func invalidUTF8At(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
