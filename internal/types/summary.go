package types

// Summary is the generation-normalized view of a VRM document.
//
// Optional sections are nil when the underlying section does not resolve
// to a non-empty value. Fields typed any carry document values verbatim
// (including JSON null).
type Summary struct {
	VRMVersion  string             `json:"vrm_version" yaml:"vrm_version"`
	GLTFVersion any                `json:"gltf_version" yaml:"gltf_version"`
	Generator   any                `json:"generator" yaml:"generator"`
	Meta        *MetaSummary       `json:"meta,omitempty" yaml:"meta,omitempty"`
	Counts      Counts             `json:"counts" yaml:"counts"`
	Humanoid    *HumanoidSummary   `json:"humanoid,omitempty" yaml:"humanoid,omitempty"`
	BlendShapes *BlendShapeSummary `json:"blendshapes,omitempty" yaml:"blendshapes,omitempty"`
	Expressions *ExpressionSummary `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	SpringBone  *SpringBoneSummary `json:"springbone,omitempty" yaml:"springbone,omitempty"`
	MToon       *MToonSummary      `json:"mtoon,omitempty" yaml:"mtoon,omitempty"`
}

// MetaSummary holds the avatar's descriptive metadata.
type MetaSummary struct {
	Title   any `json:"title" yaml:"title"`     // title, or name (1.0)
	Author  any `json:"author" yaml:"author"`   // author string, or authors list (1.0)
	Version any `json:"version" yaml:"version"` // avatar version, not schema version
	License any `json:"license" yaml:"license"` // licenseName, or licenseUrl
}

// Counts holds glTF resource counts read off the document root.
type Counts struct {
	Nodes      int `json:"nodes" yaml:"nodes"`
	Meshes     int `json:"meshes" yaml:"meshes"`
	Materials  int `json:"materials" yaml:"materials"`
	Textures   int `json:"textures" yaml:"textures"`
	Images     int `json:"images" yaml:"images"`
	Skins      int `json:"skins" yaml:"skins"`
	Animations int `json:"animations" yaml:"animations"`
}

// HumanoidSummary lists humanoid bone identifiers.
type HumanoidSummary struct {
	BoneCount int      `json:"bone_count" yaml:"bone_count"`
	Bones     []string `json:"bones" yaml:"bones"`
}

// BlendShapeSummary lists VRM 0.x blend shape group names.
type BlendShapeSummary struct {
	Count int      `json:"count" yaml:"count"`
	Names []string `json:"names" yaml:"names"`
}

// ExpressionSummary lists VRM 1.0 preset and custom expression names.
type ExpressionSummary struct {
	PresetCount int      `json:"preset_count" yaml:"preset_count"`
	CustomCount int      `json:"custom_count" yaml:"custom_count"`
	Presets     []string `json:"presets" yaml:"presets"`
	Customs     []string `json:"customs" yaml:"customs"`
}

// SpringBoneSummary counts spring bone physics entries. VRM 0.x fills
// BoneGroups and ColliderGroups; VRM 1.0 fills Springs and Colliders.
type SpringBoneSummary struct {
	BoneGroups     *int `json:"bone_groups,omitempty" yaml:"bone_groups,omitempty"`
	ColliderGroups *int `json:"collider_groups,omitempty" yaml:"collider_groups,omitempty"`
	Springs        *int `json:"springs,omitempty" yaml:"springs,omitempty"`
	Colliders      *int `json:"colliders,omitempty" yaml:"colliders,omitempty"`
}

// MToonSummary describes MToon material properties. VRM 0.x fills Shaders;
// VRM 1.0 fills SpecVersion when any material declares one.
type MToonSummary struct {
	Count       int      `json:"count" yaml:"count"`
	Names       []string `json:"names" yaml:"names"`
	Shaders     []string `json:"shaders,omitempty" yaml:"shaders,omitempty"`
	SpecVersion string   `json:"spec_version,omitempty" yaml:"spec_version,omitempty"`
}
