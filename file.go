package vrmmeta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/vrmmeta/internal/analyze"
	"github.com/simonhull/vrmmeta/internal/binary"
	"github.com/simonhull/vrmmeta/internal/container"
	"github.com/simonhull/vrmmeta/internal/registry"
	"github.com/simonhull/vrmmeta/internal/types"
)

// Header is the 12-byte GLB envelope header.
type Header = container.Header

// Chunk describes one GLB chunk header.
type Chunk = container.Chunk

// Codec names the compression wrapped around a file, if any.
type Codec = container.Codec

// Supported codecs.
const (
	CodecNone = container.CodecNone
	CodecGzip = container.CodecGzip
	CodecZstd = container.CodecZstd
	CodecLZ4  = container.CodecLZ4
)

// File is a VRM or GLB file whose JSON chunk has been read and decoded.
//
// Only the JSON chunk is held in memory; the binary chunk is never read.
// A File needs no Close.
//
//	file, err := vrmmeta.Open("avatar.vrm")
//	if err != nil {
//		return err
//	}
//	fmt.Println(file.Generation, file.Summary().Meta.Title)
type File struct {
	// Path as given to Open. Empty for Read.
	Path string

	// Size of the container in bytes, or -1 when unknown
	// (compressed or piped input).
	Size int64

	// Codec the container was wrapped in.
	Codec Codec

	Header    Header
	JSONChunk Chunk

	// Generation detected from the document's extensions.
	Generation Generation

	// Document is the decoded JSON chunk. Treat it as read-only.
	Document Document

	// Digest is the xxhash64 of the raw JSON chunk payload.
	Digest uint64

	// Warnings encountered while reading (non-fatal issues).
	Warnings []Warning
}

// Open reads the JSON chunk of a VRM or GLB file.
//
// gzip, zstd and LZ4 compressed files are detected by their magic bytes and
// decompressed transparently.
//
// Options can be provided to customize reading:
//
//	file, err := vrmmeta.Open("avatar.vrm",
//	    vrmmeta.WithStrictLength(),
//	    vrmmeta.WithMaxJSONSize(16<<20),
//	)
//
// Container and JSON problems are returned as *FormatError.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("%s: strict parsing failed: %s", path, file.Warnings[0])
	}

	return file, nil
}

// Read reads a container from r, typically stdin.
//
// The stream size is taken from r when it reports one (bytes.Reader,
// strings.Reader); otherwise it is unknown and the declared length is
// not checked.
func Read(r io.Reader, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	size := int64(-1)
	if l, ok := r.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}

	file, err := openReader(r, size, "", options)
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
	}

	return file, nil
}

func openReader(r io.Reader, size int64, path string, options *openOptions) (*File, error) {
	rc, codec, err := container.Decompress(r, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// Offsets and the declared length refer to the decompressed stream.
	if codec != CodecNone {
		size = -1
	}

	br := binary.NewReader(rc, size, path)
	result, err := container.ReadJSONChunk(br, container.Options{
		StrictLength: options.strictLength,
		MaxJSONSize:  options.maxJSONSize,
	})
	if err != nil {
		return nil, err
	}

	doc, err := container.Decode(result.Payload, path, result.Chunk.PayloadOffset())
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:       path,
		Size:       size,
		Codec:      codec,
		Header:     result.Header,
		JSONChunk:  result.Chunk,
		Generation: types.DetectGeneration(doc),
		Document:   doc,
		Digest:     xxhash.Sum64(result.Payload),
		Warnings:   result.Warnings,
	}

	if _, both := doc.Get("extensions", types.ExtensionCurrent); both && file.Generation == GenerationLegacy {
		file.Warnings = append(file.Warnings, Warning{
			Stage:   "schema",
			Message: "both VRM and VRMC_vrm extensions present, reading as VRM 0.x",
		})
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Section returns the sub-document behind a logical section name such as
// "meta", "humanoid" or "mtoon". Names are case-insensitive.
//
// A name outside the section vocabulary, or one that does not resolve
// in this file, returns a *SectionNotFoundError. Its Unrecognized field
// tells the two apart.
//
// The returned value shares structure with the File's Document.
func (f *File) Section(name string) (any, error) {
	if !registry.Known(name) {
		return nil, &SectionNotFoundError{
			Path:         f.Path,
			Section:      name,
			Generation:   f.Generation,
			Unrecognized: true,
		}
	}

	v, ok := registry.Resolve(f.Document, f.Generation, name)
	if !ok {
		return nil, &SectionNotFoundError{
			Path:       f.Path,
			Section:    name,
			Generation: f.Generation,
		}
	}
	return v, nil
}

// Sections returns the sorted names of the sections present in this file.
func (f *File) Sections() []string {
	var names []string
	for _, name := range registry.Names(f.Generation) {
		if _, ok := registry.Resolve(f.Document, f.Generation, name); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Summary builds the generation-normalized summary of the file.
func (f *File) Summary() *Summary {
	return analyze.Analyze(f.Document)
}

// OpenContext opens a file with context support for cancellation.
//
// The JSON chunk is read in one pass, so the context is only checked
// before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, the first error is returned and no files are.
//
//	files, err := vrmmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Path, f.Generation)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			// Errors from Open already name the path.
			file, err := Open(path, opts...)
			if err != nil {
				return err
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
