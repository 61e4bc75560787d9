// Package registry maps schema generations to their section tables and
// summary rules.
//
// The set of generations is closed, so the registry is a static table
// rather than something packages register into at init time.
package registry

import (
	"slices"
	"strings"

	"github.com/simonhull/vrmmeta/internal/types"
	"github.com/simonhull/vrmmeta/internal/vrm0"
	"github.com/simonhull/vrmmeta/internal/vrm1"
)

// Profile is implemented by each generation package.
type Profile interface {
	// Generation returns the generation this profile describes.
	Generation() types.Generation

	// Section returns the projection for a lowercase section name.
	Section(name string) (types.Projection, bool)

	// Names lists the profile's section names in sorted order.
	Names() []string

	// Summarize fills the generation-specific parts of a summary,
	// resolving sections through resolve.
	Summarize(s *types.Summary, resolve types.Resolver)
}

var profiles = map[types.Generation]Profile{
	types.GenerationLegacy:  vrm0.Profile{},
	types.GenerationCurrent: vrm1.Profile{},
}

// Vocabulary is the fixed set of logical section names accepted anywhere.
var Vocabulary = []string{
	"meta", "humanoid", "materials", "mtoon", "nodes", "meshes", "skins",
	"textures", "images", "blendshape", "expressions", "firstperson",
	"lookat", "springbone", "vrm",
}

// Get returns the profile whose section table serves gen.
// Unknown generations are probed with the legacy table.
func Get(gen types.Generation) Profile {
	if p, ok := profiles[gen]; ok {
		return p
	}
	return profiles[types.GenerationLegacy]
}

// Summarizer returns the profile that interprets resolved sections for a
// summary. Only legacy documents use the legacy shapes.
func Summarizer(gen types.Generation) Profile {
	if gen == types.GenerationLegacy {
		return profiles[types.GenerationLegacy]
	}
	return profiles[types.GenerationCurrent]
}

// Known reports whether name (in any case) is in the section vocabulary.
func Known(name string) bool {
	return slices.Contains(Vocabulary, strings.ToLower(name))
}

// Names lists the sections resolvable for gen.
func Names(gen types.Generation) []string {
	return Get(gen).Names()
}
