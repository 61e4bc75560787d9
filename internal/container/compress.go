package container

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/simonhull/vrmmeta/internal/types"
)

// Codec names the compression wrapped around a container, if any.
type Codec string

// Supported codecs.
const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Decompress sniffs r for a gzip, zstd or LZ4 frame and returns a reader
// over the decompressed bytes. Anything else is returned as-is (buffered),
// so a plain GLB passes straight through to ReadHeader.
//
// Input that carries a compression magic but does not decode is not a
// container either, and fails with BadMagic like any other foreign file.
//
// The caller must Close the returned reader; closing does not close r.
func Decompress(r io.Reader, path string) (io.ReadCloser, Codec, error) {
	br := bufio.NewReader(r)

	// A short stream is not an error here; ReadHeader reports it.
	magic, _ := br.Peek(len(zstdMagic))

	var (
		codec Codec
		dec   io.ReadCloser
	)
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		codec = CodecGzip
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, codec, badStream(path, codec, err)
		}
		dec = gz
	case bytes.HasPrefix(magic, zstdMagic):
		codec = CodecZstd
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, codec, fmt.Errorf("open zstd stream: %w", err)
		}
		dec = zr.IOReadCloser()
	case bytes.HasPrefix(magic, lz4Magic):
		codec = CodecLZ4
		dec = io.NopCloser(lz4.NewReader(br))
	default:
		return io.NopCloser(br), CodecNone, nil
	}

	// zstd and LZ4 only validate the frame on first read. An empty stream
	// is left for ReadHeader.
	out := bufio.NewReader(dec)
	if _, err := out.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		dec.Close()
		return nil, codec, badStream(path, codec, err)
	}

	return struct {
		io.Reader
		io.Closer
	}{out, dec}, codec, nil
}

func badStream(path string, codec Codec, err error) error {
	return &types.FormatError{
		Path:   path,
		Kind:   types.BadMagic,
		Detail: fmt.Sprintf("%s magic without a valid %s stream", codec, codec),
		Err:    err,
	}
}
