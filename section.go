package vrmmeta

import (
	"slices"

	"github.com/simonhull/vrmmeta/internal/registry"
)

// SectionNames returns the fixed vocabulary of logical section names.
func SectionNames() []string {
	return slices.Clone(registry.Vocabulary)
}

// KnownSection reports whether name, in any case, is a logical section name.
func KnownSection(name string) bool {
	return registry.Known(name)
}

// Resolve returns the sub-document behind a logical section name.
//
// This is the permissive low-level accessor: an unrecognized name and a
// section missing from doc both return false. Documents of unknown
// generation are probed with the VRM 0.x layout. Use File.Section for an
// error that tells the two apart.
//
// The returned value shares structure with doc and must not be modified.
func Resolve(doc Document, gen Generation, name string) (any, bool) {
	return registry.Resolve(doc, gen, name)
}
