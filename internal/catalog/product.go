package catalog

import (
	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is one purchasable catalog record. The catalog owns these values;
// they are immutable for the lifetime of a session and carts reference them
// by id only.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    enums.ProductCategory `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	Unit        enums.ProductUnit     `json:"unit"`
	Image       string                `json:"image"`
}

// DefaultQuantity is the add-to-cart starting quantity the UI offers:
// one whole item for discrete units, half a measure otherwise.
func (p Product) DefaultQuantity() decimal.Decimal {
	if p.Unit.Class() == enums.UnitClassDiscrete {
		return decimal.NewFromInt(1)
	}
	return decimal.RequireFromString("0.5")
}
