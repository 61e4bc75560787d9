// Package types provides the core data structures shared by the
// container reader, the section registry and the analyzer.
package types

import (
	"errors"
	"fmt"
)

// FormatErrorKind classifies why a container could not be read.
type FormatErrorKind int

const (
	// BadMagic means the file does not start with the "glTF" signature.
	BadMagic FormatErrorKind = iota + 1
	// BadChunkType means the first chunk is not a JSON chunk.
	BadChunkType
	// TruncatedFile means the file ends before a header or payload is complete.
	TruncatedFile
	// InvalidUTF8 means the JSON chunk is not valid UTF-8 text.
	InvalidUTF8
	// InvalidJSON means the JSON chunk does not parse as a JSON object.
	InvalidJSON
	// LengthMismatch means the declared total length disagrees with the
	// file size. Only reported when strict length checking is enabled.
	LengthMismatch
	// TooLarge means the JSON chunk exceeds the configured size limit.
	TooLarge
)

// String returns the kind's name.
func (k FormatErrorKind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case BadChunkType:
		return "bad chunk type"
	case TruncatedFile:
		return "truncated file"
	case InvalidUTF8:
		return "invalid utf-8"
	case InvalidJSON:
		return "invalid json"
	case LengthMismatch:
		return "length mismatch"
	case TooLarge:
		return "json chunk too large"
	default:
		return fmt.Sprintf("FormatErrorKind(%d)", int(k))
	}
}

// FormatError is returned when the binary envelope or its JSON chunk is malformed.
type FormatError struct {
	Path   string
	Detail string
	Err    error // underlying decode/parse diagnostic, if any
	Offset int64
	Kind   FormatErrorKind
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s: %s at offset %d", e.Path, e.Kind, e.Offset)
	if e.Path == "" {
		msg = fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a FormatError of the same kind.
// This lets callers match with the Err* sentinels via errors.Is.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching on FormatError kinds.
var (
	ErrBadMagic       = &FormatError{Kind: BadMagic}
	ErrBadChunkType   = &FormatError{Kind: BadChunkType}
	ErrTruncatedFile  = &FormatError{Kind: TruncatedFile}
	ErrInvalidUTF8    = &FormatError{Kind: InvalidUTF8}
	ErrInvalidJSON    = &FormatError{Kind: InvalidJSON}
	ErrLengthMismatch = &FormatError{Kind: LengthMismatch}
	ErrTooLarge       = &FormatError{Kind: TooLarge}
)

// ErrSectionNotFound matches any SectionNotFoundError via errors.Is.
var ErrSectionNotFound = errors.New("section not found")

// SectionNotFoundError is returned when a requested logical section is not
// present in a document, or when the section name is not recognized at all.
type SectionNotFoundError struct {
	Path         string
	Section      string
	Generation   Generation
	Unrecognized bool // name is outside the section vocabulary
}

func (e *SectionNotFoundError) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	if e.Unrecognized {
		return fmt.Sprintf("%sunknown section %q", prefix, e.Section)
	}
	return fmt.Sprintf("%ssection %q not found (VRM %s)", prefix, e.Section, e.Generation)
}

func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// Warning represents a non-fatal issue encountered while reading a file.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A declared total length that disagrees with the file size
//   - A container version other than 2
//   - Both VRM extension namespaces present in one document
type Warning struct {
	// Stage where the warning occurred
	Stage string // "container", "schema"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
