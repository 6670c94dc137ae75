package services

import (
	"sort"

	"logistics/internal/core/domain/model/catalog"
)

// PackageClassifier decides which package-type bracket a declared weight falls into.
//
// Business rules:
//   - Brackets are ordered by their upper bound, ascending
//   - The first bracket whose bound is at least the weight wins (boundary inclusive)
//   - The synthetic overflow bracket is never an answer; weights above every standard
//     bracket yield catalog.NoStandardBracket
//   - An empty catalog yields catalog.Unclassified
//
// Classification is pure and is re-run on every weight change, since brackets may be
// reloaded between evaluations.
//
// Example usage:
//
//	classifier := NewPackageClassifier()
//	id := classifier.Classify(3, catalogs.PackageTypes)
//	if id == catalog.NoStandardBracket {
//	    // requires a special agreement
//	}
type PackageClassifier struct{}

// NewPackageClassifier creates a new PackageClassifier instance.
func NewPackageClassifier() PackageClassifier {
	return PackageClassifier{}
}

// Classify returns the id of the bracket covering weightKg. Non-positive weights are
// rejected before they get here; the input slice is never reordered.
func (PackageClassifier) Classify(weightKg float64, brackets []catalog.PackageType) int64 {
	standard := make([]catalog.PackageType, 0, len(brackets))
	for _, b := range brackets {
		if b.IsOverflow() {
			continue
		}
		standard = append(standard, b)
	}

	if len(standard) == 0 {
		return catalog.Unclassified
	}

	sort.SliceStable(standard, func(i, j int) bool {
		return standard[i].MaxWeightKg < standard[j].MaxWeightKg
	})

	for _, b := range standard {
		if b.MaxWeightKg >= weightKg {
			return int64(b.ID)
		}
	}

	return catalog.NoStandardBracket
}
