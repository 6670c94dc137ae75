package catalog

import "logistics/internal/core/domain/model/kernel"

// Unclassified and NoStandardBracket are the classifier's non-bracket answers.
const (
	Unclassified      int64 = 0
	NoStandardBracket int64 = -1
)

// Catalogs is the reference data a workflow instance needs to render and validate
// an order form. Each workflow instance owns its own snapshot.
type Catalogs struct {
	Addresses     []Address
	PackageTypes  []PackageType
	StatusOptions []StatusOption
}

// NewCatalogs keeps active brackets only and appends the overflow bracket.
func NewCatalogs(addresses []Address, packageTypes []PackageType, statusOptions []StatusOption) Catalogs {
	brackets := make([]PackageType, 0, len(packageTypes)+1)
	for _, p := range packageTypes {
		if p.IsActive && !p.IsOverflow() {
			brackets = append(brackets, p)
		}
	}
	brackets = append(brackets, OverflowBracket())

	return Catalogs{
		Addresses:     addresses,
		PackageTypes:  brackets,
		StatusOptions: statusOptions,
	}
}

// HasAddress reports whether id is one of the loaded address options.
func (c Catalogs) HasAddress(id kernel.ID) bool {
	for _, a := range c.Addresses {
		if a.ID == id {
			return true
		}
	}
	return false
}

// HasStatus reports whether value is one of the loaded status options.
func (c Catalogs) HasStatus(value string) bool {
	for _, s := range c.StatusOptions {
		if s.Value == value {
			return true
		}
	}
	return false
}

// StatusLabel returns the label for value, falling back to value itself.
func (c Catalogs) StatusLabel(value string) string {
	for _, s := range c.StatusOptions {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}

// Describe translates a classifier answer into the bracket to present.
// NoStandardBracket maps to the overflow bracket; unknown ids report false.
func (c Catalogs) Describe(packageTypeID int64) (PackageType, bool) {
	if packageTypeID == NoStandardBracket {
		for _, p := range c.PackageTypes {
			if p.IsOverflow() {
				return p, true
			}
		}
		return OverflowBracket(), true
	}
	if packageTypeID <= 0 {
		return PackageType{}, false
	}
	for _, p := range c.PackageTypes {
		if !p.IsOverflow() && int64(p.ID) == packageTypeID {
			return p, true
		}
	}
	return PackageType{}, false
}
