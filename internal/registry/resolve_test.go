package registry

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/simonhull/vrmmeta/internal/types"
)

func parse(t *testing.T, text string) types.Document {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return types.Document(doc)
}

const legacyDoc = `{
	"asset": {"version": "2.0", "generator": "UniGLTF-2.0"},
	"materials": [{"name": "Body"}, {"name": "Hair"}],
	"nodes": [{"name": "Root"}],
	"extensions": {
		"VRM": {
			"meta": {"title": "Avatar", "author": "someone"},
			"humanoid": {"humanBones": [{"bone": "hips"}, {"bone": "spine"}, {"bone": "head"}]},
			"materialProperties": [{"name": "Body", "shader": "VRM/MToon"}],
			"blendShapeMaster": {"blendShapeGroups": [{"name": "Joy"}]},
			"firstPerson": {"firstPersonBone": 3},
			"lookAt": null,
			"secondaryAnimation": {"boneGroups": [], "colliderGroups": []}
		}
	}
}`

const currentDoc = `{
	"asset": {"version": "2.0"},
	"materials": [
		{"name": "Body", "extensions": {"VRMC_materials_mtoon": {"specVersion": "1.0", "shadingToonyFactor": 0.9}}},
		{"name": "Eye"},
		{"name": "Hair", "extensions": {"VRMC_materials_mtoon": {"specVersion": "1.0"}}},
		{"name": "Empty", "extensions": {"VRMC_materials_mtoon": {}}}
	],
	"extensions": {
		"VRMC_vrm": {
			"specVersion": "1.0",
			"meta": {"name": "Avatar", "authors": ["a", "b"]},
			"humanoid": {"humanBones": {"hips": {"node": 0}, "head": {"node": 1}}},
			"expressions": {"preset": {"happy": {}, "sad": {}}, "custom": {}},
			"firstPerson": {"meshAnnotations": []},
			"lookAt": {"type": "bone"}
		},
		"VRMC_springBone": {"springs": [{}], "colliders": [{}, {}]}
	}
}`

func TestResolve_Legacy(t *testing.T) {
	doc := parse(t, legacyDoc)

	tests := []struct {
		section string
		wantOK  bool
	}{
		{"meta", true},
		{"humanoid", true},
		{"materials", true},
		{"mtoon", true},
		{"nodes", true},
		{"meshes", false},
		{"blendshape", true},
		{"firstperson", true},
		{"lookat", false}, // null
		{"springbone", true},
		{"vrm", true},
		{"expressions", false}, // not a 0.x section
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			_, ok := Resolve(doc, types.GenerationLegacy, tt.section)
			if ok != tt.wantOK {
				t.Errorf("Resolve(%q) ok = %v, want %v", tt.section, ok, tt.wantOK)
			}
		})
	}
}

func TestResolve_Current(t *testing.T) {
	doc := parse(t, currentDoc)

	tests := []struct {
		section string
		wantOK  bool
	}{
		{"meta", true},
		{"humanoid", true},
		{"expressions", true},
		{"firstperson", true},
		{"lookat", true},
		{"springbone", true},
		{"mtoon", true},
		{"vrm", true},
		{"blendshape", false}, // not a 1.0 section
		{"skins", false},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			_, ok := Resolve(doc, types.GenerationCurrent, tt.section)
			if ok != tt.wantOK {
				t.Errorf("Resolve(%q) ok = %v, want %v", tt.section, ok, tt.wantOK)
			}
		})
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	doc := parse(t, legacyDoc)

	lower, ok1 := Resolve(doc, types.GenerationLegacy, "meta")
	upper, ok2 := Resolve(doc, types.GenerationLegacy, "META")
	mixed, ok3 := Resolve(doc, types.GenerationLegacy, "Meta")
	if !ok1 || !ok2 || !ok3 {
		t.Fatal("meta should resolve in any case")
	}
	if !reflect.DeepEqual(lower, upper) || !reflect.DeepEqual(lower, mixed) {
		t.Error("case variants resolved differently")
	}
}

func TestResolve_MaterialsVerbatim(t *testing.T) {
	for _, fixture := range []string{legacyDoc, currentDoc, `{"materials": [{"name": "Plain"}]}`} {
		doc := parse(t, fixture)
		gen := types.DetectGeneration(doc)

		got, ok := Resolve(doc, gen, "materials")
		if !ok {
			t.Fatalf("materials not resolved for %v", gen)
		}
		if !reflect.DeepEqual(got, doc["materials"]) {
			t.Errorf("materials differ from doc.materials for %v", gen)
		}
	}
}

func TestResolve_UnknownFallsBackToLegacy(t *testing.T) {
	// A legacy-shaped section under an unknown generation is still probed.
	doc := types.Document{
		"extensions": map[string]any{
			"vrm": map[string]any{"meta": map[string]any{"title": "lowercase key"}},
		},
		"nodes": []any{map[string]any{}},
	}
	if gen := types.DetectGeneration(doc); gen != types.GenerationUnknown {
		t.Fatalf("fixture generation = %v", gen)
	}

	if _, ok := Resolve(doc, types.GenerationUnknown, "nodes"); !ok {
		t.Error("nodes should resolve for unknown generation")
	}
	if _, ok := Resolve(doc, types.GenerationUnknown, "blendshape"); ok {
		t.Error("blendshape has no data here")
	}
	if _, ok := Resolve(doc, types.GenerationUnknown, "expressions"); ok {
		t.Error("expressions is not in the legacy table")
	}

	// Same projection the legacy table would use.
	legacy := types.Document{"extensions": map[string]any{"VRM": map[string]any{"lookAt": map[string]any{"a": 1.0}}}}
	got, ok := Resolve(legacy, types.GenerationUnknown, "lookat")
	if !ok || types.Field(got, "a") != 1.0 {
		t.Errorf("unknown generation did not use the legacy table: %v, %v", got, ok)
	}
}

func TestResolve_MToonCurrent(t *testing.T) {
	doc := parse(t, currentDoc)

	got, ok := Resolve(doc, types.GenerationCurrent, "mtoon")
	if !ok {
		t.Fatal("mtoon should resolve")
	}

	entries := types.Array(got)
	if len(entries) != 2 {
		t.Fatalf("expected 2 mtoon entries (empty extension skipped), got %d: %v", len(entries), entries)
	}
	first := types.Object(entries[0])
	if first["name"] != "Body" || first["specVersion"] != "1.0" || first["shadingToonyFactor"] != 0.9 {
		t.Errorf("unexpected first entry: %v", first)
	}
	if types.Field(entries[1], "name") != "Hair" {
		t.Errorf("unexpected second entry: %v", entries[1])
	}

	// The source materials are not modified.
	body := types.Object(types.Array(doc["materials"])[0])
	if _, leaked := body["specVersion"]; leaked {
		t.Error("mtoon synthesis mutated the source material")
	}
}

func TestResolve_MToonCurrentEmptyIsAbsent(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no materials", `{"extensions": {"VRMC_vrm": {}}}`},
		{"materials without mtoon", `{"materials": [{"name": "A"}, {"name": "B", "extensions": {"KHR_materials_unlit": {}}}], "extensions": {"VRMC_vrm": {}}}`},
		{"empty mtoon objects", `{"materials": [{"name": "A", "extensions": {"VRMC_materials_mtoon": {}}}], "extensions": {"VRMC_vrm": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(parse(t, tt.doc), types.GenerationCurrent, "mtoon")
			if ok || got != nil {
				t.Errorf("Resolve(mtoon) = %v, %v; want absent", got, ok)
			}
		})
	}
}

func TestResolve_MToonNameOverriddenByExtension(t *testing.T) {
	doc := parse(t, `{"materials": [{"name": "Material", "extensions": {"VRMC_materials_mtoon": {"name": "FromExtension"}}}]}`)

	got, ok := Resolve(doc, types.GenerationCurrent, "mtoon")
	if !ok {
		t.Fatal("mtoon should resolve")
	}
	if name := types.Field(types.Array(got)[0], "name"); name != "FromExtension" {
		t.Errorf("name = %v, want extension value to win", name)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	doc := parse(t, currentDoc)

	for _, name := range Vocabulary {
		first, ok1 := Resolve(doc, types.GenerationCurrent, name)
		second, ok2 := Resolve(doc, types.GenerationCurrent, name)
		if ok1 != ok2 || !reflect.DeepEqual(first, second) {
			t.Errorf("Resolve(%q) not idempotent", name)
		}
	}
}

func TestResolve_MissingIntermediates(t *testing.T) {
	docs := []types.Document{
		{},
		{"extensions": nil},
		{"extensions": "not an object"},
		{"extensions": map[string]any{"VRM": []any{}}},
		{"extensions": map[string]any{"VRMC_vrm": nil}},
		{"materials": "not an array"},
		{"materials": []any{"not an object", nil, map[string]any{"extensions": 5.0}}},
	}

	for _, doc := range docs {
		for _, gen := range []types.Generation{types.GenerationLegacy, types.GenerationCurrent, types.GenerationUnknown} {
			for _, name := range Vocabulary {
				if name == "materials" {
					continue
				}
				if got, ok := Resolve(doc, gen, name); ok && name != "vrm" {
					t.Errorf("Resolve(%v, %v, %q) = %v, want absent", doc, gen, name, got)
				}
			}
		}
	}
}

func TestResolver(t *testing.T) {
	doc := parse(t, legacyDoc)
	resolve := Resolver(doc, types.GenerationLegacy)

	meta, ok := resolve("meta")
	if !ok || types.Field(meta, "title") != "Avatar" {
		t.Errorf("resolve(meta) = %v, %v", meta, ok)
	}
}
