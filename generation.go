package vrmmeta

import (
	"github.com/simonhull/vrmmeta/internal/types"
)

// Generation is an alias to types.Generation.
// Re-exporting from internal/types to maintain public API.
type Generation = types.Generation

// Re-export all generation constants.
const (
	GenerationUnknown = types.GenerationUnknown
	GenerationLegacy  = types.GenerationLegacy
	GenerationCurrent = types.GenerationCurrent
)

// Document is an alias to types.Document, a decoded glTF JSON chunk.
type Document = types.Document

// DetectGeneration is a wrapper around types.DetectGeneration.
// Maintains the public API while delegating to internal implementation.
func DetectGeneration(doc Document) Generation {
	return types.DetectGeneration(doc)
}
