package vrm0

import (
	"slices"

	"github.com/simonhull/vrmmeta/internal/types"
)

// unknownShader stands in for a material property entry without a shader.
const unknownShader = "Unknown"

// Summarize fills the generation-specific parts of s: humanoid bones,
// blend shape groups, spring bone groups and MToon shaders.
func (Profile) Summarize(s *types.Summary, resolve types.Resolver) {
	if humanoid, ok := resolve("humanoid"); ok && types.Truthy(humanoid) {
		bones := types.Array(types.Field(humanoid, "humanBones"))
		s.Humanoid = &types.HumanoidSummary{
			BoneCount: len(bones),
			Bones:     fieldOf(bones, "bone"),
		}
	}

	if blendshape, ok := resolve("blendshape"); ok && types.Truthy(blendshape) {
		groups := types.Array(types.Field(blendshape, "blendShapeGroups"))
		s.BlendShapes = &types.BlendShapeSummary{
			Count: len(groups),
			Names: fieldOf(groups, "name"),
		}
	}

	if springbone, ok := resolve("springbone"); ok && types.Truthy(springbone) {
		boneGroups := types.Len(types.Field(springbone, "boneGroups"))
		colliderGroups := types.Len(types.Field(springbone, "colliderGroups"))
		s.SpringBone = &types.SpringBoneSummary{
			BoneGroups:     &boneGroups,
			ColliderGroups: &colliderGroups,
		}
	}

	if mtoon, ok := resolve("mtoon"); ok && types.Truthy(mtoon) {
		props := types.Array(mtoon)
		shaders := make([]string, 0, len(props))
		for _, p := range props {
			shader := unknownShader
			if v, ok := types.Lookup(p, "shader"); ok {
				shader = types.Text(v)
			}
			if !slices.Contains(shaders, shader) {
				shaders = append(shaders, shader)
			}
		}
		slices.Sort(shaders)
		s.MToon = &types.MToonSummary{
			Count:   len(props),
			Names:   fieldOf(props, "name"),
			Shaders: shaders,
		}
	}
}

// fieldOf collects the string field key of every entry. Entries without
// it contribute "" so the result stays aligned with the input.
func fieldOf(entries []any, key string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.Text(types.Field(e, key)))
	}
	return out
}
