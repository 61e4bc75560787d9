package registry

import (
	"strings"

	"github.com/simonhull/vrmmeta/internal/types"
)

// Resolve maps a logical section name to its sub-document.
//
// Names are matched case-insensitively. An unrecognized name and a section
// missing from the document both report false; neither is an error.
func Resolve(doc types.Document, gen types.Generation, name string) (any, bool) {
	project, ok := Get(gen).Section(strings.ToLower(name))
	if !ok {
		return nil, false
	}
	return project(doc)
}

// Resolver binds Resolve to one document and generation.
func Resolver(doc types.Document, gen types.Generation) types.Resolver {
	return func(name string) (any, bool) {
		return Resolve(doc, gen, name)
	}
}
