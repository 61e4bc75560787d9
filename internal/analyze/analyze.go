// Package analyze builds the generation-normalized summary of a document.
package analyze

import (
	"github.com/simonhull/vrmmeta/internal/registry"
	"github.com/simonhull/vrmmeta/internal/types"
)

// Analyze summarizes doc. It never fails: every part of the summary is
// optional and simply omitted when its section does not resolve.
//
// Sections are resolved with the detected generation (so unknown documents
// are probed with the legacy table), while the avatar-specific parts are
// interpreted with the legacy shapes only for legacy documents.
func Analyze(doc types.Document) *types.Summary {
	gen := types.DetectGeneration(doc)
	resolve := registry.Resolver(doc, gen)

	asset, _ := doc.Get("asset")
	s := &types.Summary{
		VRMVersion:  gen.String(),
		GLTFVersion: types.Field(asset, "version"),
		Generator:   types.Field(asset, "generator"),
		Counts:      count(doc),
	}

	if meta, ok := resolve("meta"); ok && types.Truthy(meta) {
		s.Meta = summarizeMeta(meta)
	}

	registry.Summarizer(gen).Summarize(s, resolve)

	return s
}

func summarizeMeta(meta any) *types.MetaSummary {
	author := types.Field(meta, "author")
	if !types.Truthy(author) {
		// 1.0 lists authors; default to an empty list when neither exists.
		if authors, ok := types.Object(meta)["authors"]; ok {
			author = authors
		} else {
			author = []any{}
		}
	}

	return &types.MetaSummary{
		Title:   types.First(meta, "title", "name"),
		Author:  author,
		Version: types.Field(meta, "version"),
		License: types.First(meta, "licenseName", "licenseUrl"),
	}
}

func count(doc types.Document) types.Counts {
	return types.Counts{
		Nodes:      types.Len(doc["nodes"]),
		Meshes:     types.Len(doc["meshes"]),
		Materials:  types.Len(doc["materials"]),
		Textures:   types.Len(doc["textures"]),
		Images:     types.Len(doc["images"]),
		Skins:      types.Len(doc["skins"]),
		Animations: types.Len(doc["animations"]),
	}
}
