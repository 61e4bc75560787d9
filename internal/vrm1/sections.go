// Package vrm1 holds the VRM 1.0 section table and summary rules.
//
// VRM 1.0 splits the avatar schema across several extensions: core data
// under extensions.VRMC_vrm, physics under extensions.VRMC_springBone, and
// MToon parameters on each material under VRMC_materials_mtoon.
package vrm1

import (
	"maps"
	"slices"

	"github.com/simonhull/vrmmeta/internal/types"
)

// Profile implements the registry profile for VRM 1.0 documents.
type Profile struct{}

func ext(key string) types.Projection {
	return types.Path("extensions", types.ExtensionCurrent, key)
}

var sections = map[string]types.Projection{
	"meta":        ext("meta"),
	"humanoid":    ext("humanoid"),
	"materials":   types.Path("materials"),
	"mtoon":       mtoon,
	"nodes":       types.Path("nodes"),
	"meshes":      types.Path("meshes"),
	"skins":       types.Path("skins"),
	"textures":    types.Path("textures"),
	"images":      types.Path("images"),
	"expressions": ext("expressions"),
	"firstperson": ext("firstPerson"),
	"lookat":      ext("lookAt"),
	"springbone":  types.Path("extensions", types.ExtensionSpringBone),
	"vrm":         types.Path("extensions", types.ExtensionCurrent),
}

// mtoon gathers the per-material MToon extensions into one list of
// {"name": <material name>, ...extension fields}. Materials without a
// non-empty extension are skipped; if none qualify the section is absent.
func mtoon(doc types.Document) (any, bool) {
	materials, _ := doc.Get("materials")

	var out []any
	for _, m := range types.Array(materials) {
		ext, ok := types.Lookup(m, "extensions", types.ExtensionMToon)
		if !ok || !types.Truthy(ext) {
			continue
		}
		fields := types.Object(ext)
		if fields == nil {
			continue
		}
		entry := make(map[string]any, len(fields)+1)
		entry["name"] = types.Field(m, "name")
		maps.Copy(entry, fields)
		out = append(out, entry)
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Generation returns types.GenerationCurrent.
func (Profile) Generation() types.Generation {
	return types.GenerationCurrent
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
