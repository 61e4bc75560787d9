package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/simonhull/vrmmeta"
	"github.com/simonhull/vrmmeta/internal/binary"
	"github.com/simonhull/vrmmeta/internal/container"
	"github.com/simonhull/vrmmeta/internal/types"
)

// glb-dump prints the envelope layout of a GLB/VRM file: header, chunks,
// and the top-level keys and extensions of the JSON chunk.
func main() {
	var showVersion bool
	flagSet := pflag.NewFlagSet("glb-dump", pflag.ExitOnError)
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.Usage = func() {
		fmt.Println("Usage: glb-dump <file.vrm>")
		flagSet.PrintDefaults()
	}
	flagSet.Parse(os.Args[1:])

	if showVersion {
		fmt.Printf("glb-dump %s\n", vrmmeta.GetVersion())
		return
	}
	if flagSet.NArg() < 1 {
		flagSet.Usage()
		os.Exit(1)
	}

	if err := dump(os.Stdout, flagSet.Arg(0)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	size := int64(-1)
	if stat, err := f.Stat(); err == nil {
		size = stat.Size()
	}

	rc, codec, err := container.Decompress(f, path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if codec != container.CodecNone {
		fmt.Fprintf(w, "%s compressed\n", codec)
		size = -1
	}

	r := binary.NewReader(rc, size, path)
	result, err := container.ReadJSONChunk(r, container.Options{})
	if err != nil {
		return err
	}

	h := result.Header
	fmt.Fprintf(w, "%s v%d (declared length: %d, file size: %d)\n", h.Magic, h.Version, h.Length, size)
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}

	dumpChunk(w, result.Chunk)
	doc, err := container.Decode(result.Payload, path, result.Chunk.PayloadOffset())
	if err != nil {
		fmt.Fprintf(w, "    %v\n", err)
	} else {
		fmt.Fprintf(w, "    keys: %s\n", strings.Join(types.Keys(doc), ", "))
		if ext := types.Keys(doc["extensions"]); len(ext) > 0 {
			fmt.Fprintf(w, "    extensions: %s\n", strings.Join(ext, ", "))
		}
		fmt.Fprintf(w, "    generation: %s\n", types.DetectGeneration(doc))
	}

	for chunk, err := range container.Walk(r) {
		if err != nil {
			return err
		}
		dumpChunk(w, chunk)
	}
	return nil
}

func dumpChunk(w io.Writer, c container.Chunk) {
	fmt.Fprintf(w, "  %q (length: %d, offset: %d)\n", c.Type, c.Length, c.Offset)
}
