// vrm-json extracts the JSON chunk of VRM avatar files.
//
// By default the whole document is printed. --section prints one logical
// section and --summary prints a generation-normalized summary. Several
// paths produce one object keyed by path. A single "-" reads stdin.
//
// Nothing is written unless every input was read successfully.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/simonhull/vrmmeta"
	"github.com/simonhull/vrmmeta/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	section string
	summary bool
	all     bool
	output  string
	indent  int
	format  string
	strict  bool
	verbose bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	var showVersion bool

	flagSet := pflag.NewFlagSet("vrm-json", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&cfg.section, "section", "s", "", "extract one section: "+sectionList())
	flagSet.BoolVar(&cfg.summary, "summary", false, "print a summary analysis")
	flagSet.BoolVar(&cfg.all, "all", false, "print the entire JSON chunk (default)")
	flagSet.StringVarP(&cfg.output, "output", "o", "", "write output to this file instead of stdout")
	flagSet.IntVar(&cfg.indent, "indent", render.DefaultIndent, "indentation width; 0 prints compact JSON")
	flagSet.StringVar(&cfg.format, "format", string(render.FormatJSON), "output format: json, yaml or cbor")
	flagSet.BoolVar(&cfg.strict, "strict", false, "fail on length mismatches and any other warning")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug details to stderr")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "Usage: vrm-json [flags] <file.vrm>...")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		info := vrmmeta.GetVersionInfo()
		fmt.Fprintf(stdout, "vrm-json %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return 0
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		flagSet.Usage()
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := extract(context.Background(), logger, cfg, paths, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func extract(ctx context.Context, logger *slog.Logger, cfg config, paths []string, stdin io.Reader, stdout io.Writer) error {
	format, err := render.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	if cfg.section != "" && !vrmmeta.KnownSection(cfg.section) {
		return fmt.Errorf("unknown section %q (want one of: %s)", cfg.section, sectionList())
	}

	var opts []vrmmeta.Option
	if cfg.strict {
		opts = append(opts, vrmmeta.WithStrictLength(), vrmmeta.WithStrictParsing())
	}

	files, err := load(ctx, paths, stdin, opts)
	if err != nil {
		return err
	}

	var result any
	if len(files) == 1 {
		result, err = selectOutput(logger, files[0], cfg)
		if err != nil {
			return err
		}
	} else {
		byPath := make(map[string]any, len(files))
		for _, file := range files {
			v, err := selectOutput(logger, file, cfg)
			if err != nil {
				return err
			}
			byPath[file.Path] = v
		}
		result = byPath
	}

	// Render fully before touching the destination.
	var buf bytes.Buffer
	if err := render.Write(&buf, result, format, cfg.indent); err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if cfg.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(cfg.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "Output saved to: %s\n", cfg.output)
	return nil
}

func load(ctx context.Context, paths []string, stdin io.Reader, opts []vrmmeta.Option) ([]*vrmmeta.File, error) {
	if len(paths) == 1 && paths[0] == "-" {
		file, err := vrmmeta.Read(stdin, opts...)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		file.Path = "-"
		return []*vrmmeta.File{file}, nil
	}
	if len(paths) == 1 {
		file, err := vrmmeta.OpenContext(ctx, paths[0], opts...)
		if err != nil {
			return nil, err
		}
		return []*vrmmeta.File{file}, nil
	}
	return vrmmeta.OpenMany(ctx, paths, opts...)
}

func selectOutput(logger *slog.Logger, file *vrmmeta.File, cfg config) (any, error) {
	logger.Debug("read container",
		"path", file.Path,
		"generation", file.Generation,
		"codec", file.Codec,
		"json_length", file.JSONChunk.Length,
		"digest", fmt.Sprintf("%016x", file.Digest),
	)
	for _, w := range file.Warnings {
		logger.Warn(w.Message, "path", file.Path, "stage", w.Stage, "offset", w.Offset)
	}

	switch {
	case cfg.summary:
		return file.Summary(), nil
	case cfg.section != "":
		return file.Section(cfg.section)
	default:
		return map[string]any(file.Document), nil
	}
}

func sectionList() string {
	return strings.Join(vrmmeta.SectionNames(), ", ")
}
