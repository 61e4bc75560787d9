package vrmmeta

import (
	"github.com/simonhull/vrmmeta/internal/analyze"
	"github.com/simonhull/vrmmeta/internal/types"
)

// Summary is an alias to types.Summary.
// Re-exporting from internal/types to maintain public API.
type Summary = types.Summary

// Summary section types.
type (
	MetaSummary       = types.MetaSummary
	Counts            = types.Counts
	HumanoidSummary   = types.HumanoidSummary
	BlendShapeSummary = types.BlendShapeSummary
	ExpressionSummary = types.ExpressionSummary
	SpringBoneSummary = types.SpringBoneSummary
	MToonSummary      = types.MToonSummary
)

// Analyze builds the generation-normalized summary of doc.
// It never fails; sections that do not resolve are left out.
func Analyze(doc Document) *Summary {
	return analyze.Analyze(doc)
}
