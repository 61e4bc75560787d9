package vrmmeta

import (
	"github.com/simonhull/vrmmeta/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types to maintain public API.
type FormatError = types.FormatError

// FormatErrorKind is an alias to types.FormatErrorKind.
type FormatErrorKind = types.FormatErrorKind

// Re-export all format error kinds.
const (
	BadMagic       = types.BadMagic
	BadChunkType   = types.BadChunkType
	TruncatedFile  = types.TruncatedFile
	InvalidUTF8    = types.InvalidUTF8
	InvalidJSON    = types.InvalidJSON
	LengthMismatch = types.LengthMismatch
	TooLarge       = types.TooLarge
)

// Sentinels for errors.Is. Each matches any FormatError of its kind.
var (
	ErrBadMagic       = types.ErrBadMagic
	ErrBadChunkType   = types.ErrBadChunkType
	ErrTruncatedFile  = types.ErrTruncatedFile
	ErrInvalidUTF8    = types.ErrInvalidUTF8
	ErrInvalidJSON    = types.ErrInvalidJSON
	ErrLengthMismatch = types.ErrLengthMismatch
	ErrTooLarge       = types.ErrTooLarge
)

// SectionNotFoundError is an alias to types.SectionNotFoundError.
// Re-exporting from internal/types to maintain public API.
type SectionNotFoundError = types.SectionNotFoundError

// ErrSectionNotFound matches any SectionNotFoundError via errors.Is.
var ErrSectionNotFound = types.ErrSectionNotFound

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
