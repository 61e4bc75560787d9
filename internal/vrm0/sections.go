// Package vrm0 holds the VRM 0.x section table and summary rules.
//
// VRM 0.x keeps every avatar-specific section in a single object at
// extensions.VRM; MToon properties live there too, as materialProperties.
package vrm0

import (
	"maps"
	"slices"

	"github.com/simonhull/vrmmeta/internal/types"
)

// Profile implements the registry profile for VRM 0.x documents.
type Profile struct{}

func ext(key string) types.Projection {
	return types.Path("extensions", types.ExtensionLegacy, key)
}

var sections = map[string]types.Projection{
	"meta":        ext("meta"),
	"humanoid":    ext("humanoid"),
	"materials":   types.Path("materials"),
	"mtoon":       ext("materialProperties"),
	"nodes":       types.Path("nodes"),
	"meshes":      types.Path("meshes"),
	"skins":       types.Path("skins"),
	"textures":    types.Path("textures"),
	"images":      types.Path("images"),
	"blendshape":  ext("blendShapeMaster"),
	"firstperson": ext("firstPerson"),
	"lookat":      ext("lookAt"),
	"springbone":  ext("secondaryAnimation"),
	"vrm":         types.Path("extensions", types.ExtensionLegacy),
}

// Generation returns types.GenerationLegacy.
func (Profile) Generation() types.Generation {
	return types.GenerationLegacy
}

// Section returns the projection for a lowercase section name.
func (Profile) Section(name string) (types.Projection, bool) {
	p, ok := sections[name]
	return p, ok
}

// Names lists the section names in sorted order.
func (Profile) Names() []string {
	return slices.Sorted(maps.Keys(sections))
}
