// Package binary provides little-endian sequential reading primitives with
// offset tracking and descriptive errors.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// growChunk bounds the up-front allocation for payloads of unknown size,
// so a bogus declared length cannot force a huge allocation.
const growChunk = 1 << 20

// ShortReadError is returned when the stream ends before a read completes.
// It unwraps to io.ErrUnexpectedEOF.
type ShortReadError struct {
	Path   string
	What   string
	Offset int64
	Want   int64
	Got    int64
}

func (e *ShortReadError) Error() string {
	return prefixed(e.Path, fmt.Sprintf("short read for %s at offset %d: got %d bytes, expected %d",
		e.What, e.Offset, e.Got, e.Want))
}

func (e *ShortReadError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// prefixed puts path in front of msg, leaving unnamed streams bare.
func prefixed(path, msg string) string {
	if path == "" {
		return msg
	}
	return path + ": " + msg
}

// Reader wraps an io.Reader with offset tracking and helpful error messages.
// Reads are strictly sequential; nothing seeks.
type Reader struct {
	r      io.Reader
	path   string
	size   int64
	offset int64
}

// NewReader creates a Reader. size is the total stream length, or -1 when
// it is not known (pipes, decompressed streams).
func NewReader(r io.Reader, size int64, path string) *Reader {
	return &Reader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (r *Reader) Path() string {
	return r.path
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Size returns the total stream length, or -1 if unknown.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the bytes left in the stream, or -1 if unknown.
func (r *Reader) Remaining() int64 {
	if r.size < 0 {
		return -1
	}
	return max(r.size-r.offset, 0)
}

// ReadFull fills b and advances the offset. A stream that ends early
// yields a *ShortReadError; other failures are wrapped with context.
func (r *Reader) ReadFull(b []byte, what string) error {
	start := r.offset
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &ShortReadError{Path: r.path, What: what, Offset: start, Want: int64(len(b)), Got: int64(n)}
		}
		return fmt.Errorf("%s: %w", prefixed(r.path, fmt.Sprintf("failed to read %s at offset %d", what, start)), err)
	}
	return nil
}

// ReadUint32 reads a little-endian uint32 and advances the offset.
func (r *Reader) ReadUint32(what string) (uint32, error) {
	var buf [4]byte
	if err := r.ReadFull(buf[:], what); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf := make([]byte, length)
	if err := r.ReadFull(buf, what); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadPayload reads exactly n bytes. When the stream size is known, a
// payload that cannot fit fails before anything is allocated.
func (r *Reader) ReadPayload(n int64, what string) ([]byte, error) {
	if rem := r.Remaining(); rem >= 0 {
		if n > rem {
			return nil, &ShortReadError{Path: r.path, What: what, Offset: r.offset, Want: n, Got: rem}
		}
		buf := make([]byte, n)
		if err := r.ReadFull(buf, what); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var buf bytes.Buffer
	buf.Grow(int(min(n, growChunk)))
	start := r.offset
	copied, err := io.CopyN(&buf, r.r, n)
	r.offset += copied
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ShortReadError{Path: r.path, What: what, Offset: start, Want: n, Got: copied}
		}
		return nil, fmt.Errorf("%s: %w", prefixed(r.path, fmt.Sprintf("failed to read %s at offset %d", what, start)), err)
	}
	return buf.Bytes(), nil
}

// Skip discards n bytes and advances the offset.
func (r *Reader) Skip(n int64, what string) error {
	start := r.offset
	skipped, err := io.CopyN(io.Discard, r.r, n)
	r.offset += skipped
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ShortReadError{Path: r.path, What: what, Offset: start, Want: n, Got: skipped}
		}
		return fmt.Errorf("%s: %w", prefixed(r.path, fmt.Sprintf("failed to skip %s at offset %d", what, start)), err)
	}
	return nil
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// Uint32 reads a uint32 with deferred error checking.
// If a previous read failed, returns zero without attempting the read.
func (cr *ChainReader) Uint32(what string) uint32 {
	if cr.err != nil {
		return 0
	}

	val, err := cr.Reader.ReadUint32(what)
	if err != nil {
		cr.err = err
		return 0
	}

	return val
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(length, what)
	if err != nil {
		cr.err = err
		return ""
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
