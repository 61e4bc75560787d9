package types

// Generation identifies which VRM schema generation produced a document.
type Generation int

const (
	// GenerationUnknown means neither VRM extension namespace is present.
	GenerationUnknown Generation = iota
	// GenerationLegacy is VRM 0.x, stored under extensions.VRM.
	GenerationLegacy
	// GenerationCurrent is VRM 1.0, stored under extensions.VRMC_vrm.
	GenerationCurrent
)

// Extension namespace keys.
const (
	ExtensionLegacy     = "VRM"
	ExtensionCurrent    = "VRMC_vrm"
	ExtensionSpringBone = "VRMC_springBone"
	ExtensionMToon      = "VRMC_materials_mtoon"
)

// String returns the generation's version label: "0.x", "1.0" or "unknown".
func (g Generation) String() string {
	switch g {
	case GenerationLegacy:
		return "0.x"
	case GenerationCurrent:
		return "1.0"
	default:
		return "unknown"
	}
}

// MarshalText encodes the generation as its version label.
func (g Generation) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Extension returns the top-level extension key for the generation, or ""
// for GenerationUnknown.
func (g Generation) Extension() string {
	switch g {
	case GenerationLegacy:
		return ExtensionLegacy
	case GenerationCurrent:
		return ExtensionCurrent
	default:
		return ""
	}
}

// DetectGeneration classifies a document by its top-level extensions.
//
// The legacy namespace is checked first, so a document carrying both keys
// is reported as GenerationLegacy. A missing or non-object extensions
// value yields GenerationUnknown.
func DetectGeneration(doc Document) Generation {
	extensions := Object(doc["extensions"])
	if _, ok := extensions[ExtensionLegacy]; ok {
		return GenerationLegacy
	}
	if _, ok := extensions[ExtensionCurrent]; ok {
		return GenerationCurrent
	}
	return GenerationUnknown
}
