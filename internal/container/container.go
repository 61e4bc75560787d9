// Package container reads the binary glTF envelope that wraps VRM files.
//
// A GLB file is a 12-byte header followed by length-prefixed, type-tagged
// chunks:
//
//	magic "glTF" | version u32 | total length u32
//	chunk length u32 | chunk type "JSON" | payload ...
//	chunk length u32 | chunk type "BIN\0" | payload ... (optional)
//
// All integers are little-endian. Only the first (JSON) chunk is read;
// the binary chunk is never touched.
package container

import (
	"errors"
	"fmt"
	"iter"

	"github.com/simonhull/vrmmeta/internal/binary"
	"github.com/simonhull/vrmmeta/internal/types"
)

// Envelope constants.
const (
	Magic           = "glTF"
	ChunkJSON       = "JSON"
	ChunkBIN        = "BIN\x00"
	HeaderSize      = 12
	ChunkHeaderSize = 8

	// Version is the only container version defined by glTF 2.0.
	Version = 2
)

// Header is the 12-byte envelope header.
type Header struct {
	Magic   string `json:"magic"`
	Version uint32 `json:"version"`
	Length  uint32 `json:"length"` // declared total file length
}

// Chunk describes one chunk header. Offset is where the header starts.
type Chunk struct {
	Type   string `json:"type"`
	Offset int64  `json:"offset"`
	Length uint32 `json:"length"`
}

// PayloadOffset returns the offset of the first payload byte.
func (c Chunk) PayloadOffset() int64 {
	return c.Offset + ChunkHeaderSize
}

// Options controls how strictly the envelope is checked.
type Options struct {
	// StrictLength fails with LengthMismatch when the declared total
	// length disagrees with the known stream size.
	StrictLength bool

	// MaxJSONSize rejects JSON chunks declaring more bytes than this.
	// 0 means no limit.
	MaxJSONSize int64
}

// Result is the outcome of reading the JSON chunk.
type Result struct {
	Header   Header
	Chunk    Chunk
	Payload  []byte
	Warnings []types.Warning
}

// ReadHeader reads and validates the envelope header.
//
// A stream that does not begin with "glTF", including one shorter than
// four bytes, fails with BadMagic.
func ReadHeader(r *binary.Reader) (Header, error) {
	magic := make([]byte, len(Magic))
	if err := r.ReadFull(magic, "magic"); err != nil {
		var short *binary.ShortReadError
		if errors.As(err, &short) {
			return Header{}, &types.FormatError{
				Path:   r.Path(),
				Kind:   types.BadMagic,
				Detail: fmt.Sprintf("file too small for magic (%d bytes)", short.Got),
			}
		}
		return Header{}, err
	}
	if string(magic) != Magic {
		return Header{}, &types.FormatError{
			Path:   r.Path(),
			Kind:   types.BadMagic,
			Detail: fmt.Sprintf("magic=%q", magic),
		}
	}

	cr := binary.NewChainReader(r)
	version := cr.Uint32("container version")
	length := cr.Uint32("total length")
	if err := cr.Error(); err != nil {
		return Header{}, truncated(r.Path(), err)
	}

	return Header{Magic: Magic, Version: version, Length: length}, nil
}

// ReadChunkHeader reads one 8-byte chunk header.
func ReadChunkHeader(r *binary.Reader) (Chunk, error) {
	offset := r.Offset()

	cr := binary.NewChainReader(r)
	length := cr.Uint32("chunk length")
	typ := cr.String(4, "chunk type")
	if err := cr.Error(); err != nil {
		return Chunk{}, truncated(r.Path(), err)
	}

	return Chunk{Type: typ, Offset: offset, Length: length}, nil
}

// ReadJSONChunk reads the envelope header and the first chunk, returning
// the raw JSON payload. It does not read past the first chunk.
func ReadJSONChunk(r *binary.Reader, opts Options) (*Result, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	var warnings []types.Warning
	if header.Version != Version {
		warnings = append(warnings, types.Warning{
			Stage:   "container",
			Message: fmt.Sprintf("unexpected container version %d", header.Version),
			Offset:  4,
		})
	}
	if size := r.Size(); size >= 0 && int64(header.Length) != size {
		msg := fmt.Sprintf("declared length %d does not match file size %d", header.Length, size)
		if opts.StrictLength {
			return nil, &types.FormatError{
				Path:   r.Path(),
				Kind:   types.LengthMismatch,
				Offset: 8,
				Detail: msg,
			}
		}
		warnings = append(warnings, types.Warning{Stage: "container", Message: msg, Offset: 8})
	}

	chunk, err := ReadChunkHeader(r)
	if err != nil {
		return nil, err
	}
	if chunk.Type != ChunkJSON {
		return nil, &types.FormatError{
			Path:   r.Path(),
			Kind:   types.BadChunkType,
			Offset: chunk.Offset + 4,
			Detail: fmt.Sprintf("first chunk type=%q, want %q", chunk.Type, ChunkJSON),
		}
	}
	if opts.MaxJSONSize > 0 && int64(chunk.Length) > opts.MaxJSONSize {
		return nil, &types.FormatError{
			Path:   r.Path(),
			Kind:   types.TooLarge,
			Offset: chunk.Offset,
			Detail: fmt.Sprintf("chunk declares %d bytes, limit is %d", chunk.Length, opts.MaxJSONSize),
		}
	}

	payload, err := r.ReadPayload(int64(chunk.Length), "JSON chunk payload")
	if err != nil {
		return nil, truncated(r.Path(), err)
	}

	return &Result{
		Header:   header,
		Chunk:    chunk,
		Payload:  payload,
		Warnings: warnings,
	}, nil
}

// Walk yields every chunk header after the envelope header, skipping
// payloads. Iteration stops cleanly when the stream ends on a chunk
// boundary; any other failure is yielded once as an error.
func Walk(r *binary.Reader) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		for {
			start := r.Offset()
			chunk, err := ReadChunkHeader(r)
			if err != nil {
				if r.Offset() == start && errors.Is(err, types.ErrTruncatedFile) {
					return
				}
				yield(Chunk{}, err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
			if err := r.Skip(int64(chunk.Length), chunk.Type+" chunk payload"); err != nil {
				yield(Chunk{}, truncated(r.Path(), err))
				return
			}
		}
	}
}

// truncated converts a short read into a TruncatedFile FormatError and
// passes any other error through unchanged.
func truncated(path string, err error) error {
	var short *binary.ShortReadError
	if !errors.As(err, &short) {
		return err
	}
	return &types.FormatError{
		Path:   path,
		Kind:   types.TruncatedFile,
		Offset: short.Offset,
		Detail: fmt.Sprintf("%s needs %d bytes, %d available", short.What, short.Want, short.Got),
	}
}
