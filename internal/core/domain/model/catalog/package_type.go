package catalog

import (
	"math"

	"logistics/internal/core/domain/model/kernel"
)

// OverflowDescription is shown when a weight exceeds every standard bracket.
const OverflowDescription = "El peso del paquete excede el límite estándar de 25kg. " +
	"Para envíos de este tipo, debe contactar a la empresa para generar un convenio especial"

// PackageType is a weight bracket with an inclusive upper bound.
type PackageType struct {
	ID          kernel.ID
	SizeCode    string
	MaxWeightKg float64
	Description string
	IsActive    bool
}

// OverflowBracket returns the synthetic bracket that stands for "requires a special
// agreement". It has ID 0 and an infinite bound and is never persisted.
func OverflowBracket() PackageType {
	return PackageType{
		ID:          0,
		MaxWeightKg: math.Inf(1),
		Description: OverflowDescription,
		IsActive:    true,
	}
}

// IsOverflow reports whether p is the synthetic overflow bracket.
func (p PackageType) IsOverflow() bool {
	return p.ID == 0 && math.IsInf(p.MaxWeightKg, 1)
}

// Label is "<size> - <description>", or just the description for the overflow bracket.
func (p PackageType) Label() string {
	if p.SizeCode == "" {
		return p.Description
	}
	return p.SizeCode + " - " + p.Description
}
