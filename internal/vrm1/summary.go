package vrm1

import (
	"github.com/simonhull/vrmmeta/internal/types"
)

// Summarize fills the generation-specific parts of s: humanoid bones,
// expressions, springs and MToon spec version.
func (Profile) Summarize(s *types.Summary, resolve types.Resolver) {
	if humanoid, ok := resolve("humanoid"); ok && types.Truthy(humanoid) {
		bones := types.Field(humanoid, "humanBones")
		s.Humanoid = &types.HumanoidSummary{
			BoneCount: types.Len(bones),
			Bones:     types.Keys(bones),
		}
	}

	if expressions, ok := resolve("expressions"); ok && types.Truthy(expressions) {
		preset := types.Field(expressions, "preset")
		custom := types.Field(expressions, "custom")
		s.Expressions = &types.ExpressionSummary{
			PresetCount: types.Len(preset),
			CustomCount: types.Len(custom),
			Presets:     types.Keys(preset),
			Customs:     types.Keys(custom),
		}
	}

	if springbone, ok := resolve("springbone"); ok && types.Truthy(springbone) {
		springs := types.Len(types.Field(springbone, "springs"))
		colliders := types.Len(types.Field(springbone, "colliders"))
		s.SpringBone = &types.SpringBoneSummary{
			Springs:   &springs,
			Colliders: &colliders,
		}
	}

	if mtoon, ok := resolve("mtoon"); ok && types.Truthy(mtoon) {
		entries := types.Array(mtoon)
		summary := &types.MToonSummary{
			Count: len(entries),
			Names: make([]string, 0, len(entries)),
		}
		for _, e := range entries {
			summary.Names = append(summary.Names, types.Text(types.Field(e, "name")))
			// Only the first declared spec version is reported.
			if summary.SpecVersion == "" {
				if v := types.Field(e, "specVersion"); types.Truthy(v) {
					summary.SpecVersion = types.Text(v)
				}
			}
		}
		s.MToon = summary
	}
}
