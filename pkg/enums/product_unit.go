package enums

import "fmt"

// ProductUnit is the sale unit a product is priced by.
type ProductUnit string

const (
	ProductUnitKilogram   ProductUnit = "kg"
	ProductUnitGram       ProductUnit = "g"
	ProductUnitEach       ProductUnit = "un"
	ProductUnitMilliliter ProductUnit = "ml"
	ProductUnitLiter      ProductUnit = "l"
)

var validProductUnits = []ProductUnit{
	ProductUnitKilogram,
	ProductUnitGram,
	ProductUnitEach,
	ProductUnitMilliliter,
	ProductUnitLiter,
}

// UnitClass splits units into whole-count versus measured quantity semantics.
type UnitClass string

const (
	UnitClassDiscrete   UnitClass = "discrete"
	UnitClassContinuous UnitClass = "continuous"
)

// String implements fmt.Stringer.
func (u ProductUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known ProductUnit.
func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// Class returns the quantity semantics for the unit. Only "un" counts whole
// items; every other unit is a measured amount.
func (u ProductUnit) Class() UnitClass {
	if u == ProductUnitEach {
		return UnitClassDiscrete
	}
	return UnitClassContinuous
}

// Label returns the display form of the unit.
func (u ProductUnit) Label() string {
	if u == ProductUnitLiter {
		return "L"
	}
	return string(u)
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
