package cart

import (
	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
)

// Line holds a single cart entry. Quantities are kept exactly as set;
// prices are never stored on the line and are resolved at read time.
type Line struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// Cart is an ordered collection of lines keyed by product id. Lines keep
// their insertion order; re-adding a product replaces its quantity in place.
type Cart struct {
	lines []Line
	index map[string]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

var minContinuousQuantity = decimal.RequireFromString("0.01")

// ValidateQuantity checks a quantity against the unit class of the product.
// Discrete units take whole quantities of at least 1; continuous units take
// any quantity of at least 0.01.
func ValidateQuantity(unit enums.ProductUnit, quantity decimal.Decimal) error {
	switch unit.Class() {
	case enums.UnitClassDiscrete:
		if !quantity.IsInteger() {
			return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be a whole number for unit "+string(unit))
		}
		if quantity.LessThan(decimal.NewFromInt(1)) {
			return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 1 for unit "+string(unit))
		}
	default:
		if quantity.LessThan(minContinuousQuantity) {
			return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 0.01 for unit "+string(unit))
		}
	}
	return nil
}

// SetItem adds a line for the product or replaces the quantity of an
// existing line. The cart is left untouched when the quantity is invalid.
func (c *Cart) SetItem(product catalog.Product, quantity decimal.Decimal) error {
	if err := ValidateQuantity(product.Unit, quantity); err != nil {
		return err
	}
	if pos, ok := c.index[product.ID]; ok {
		c.lines[pos].Quantity = quantity
		return nil
	}
	c.index[product.ID] = len(c.lines)
	c.lines = append(c.lines, Line{ProductID: product.ID, Quantity: quantity})
	return nil
}

// UpdateQuantity changes the quantity of an existing line. A quantity of
// zero or less removes the line instead. Updating a product that is not in
// the cart is a no-op.
func (c *Cart) UpdateQuantity(product catalog.Product, quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		c.Remove(product.ID)
		return nil
	}
	if err := ValidateQuantity(product.Unit, quantity); err != nil {
		return err
	}
	if pos, ok := c.index[product.ID]; ok {
		c.lines[pos].Quantity = quantity
	}
	return nil
}

// Remove drops the line for the product id. Removing an absent product is
// a no-op.
func (c *Cart) Remove(productID string) {
	pos, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
	delete(c.index, productID)
	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].ProductID] = i
	}
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Lines returns the cart lines in insertion order. The slice is a copy.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity returns the quantity for a product id and whether the product
// is in the cart.
func (c *Cart) Quantity(productID string) (decimal.Decimal, bool) {
	pos, ok := c.index[productID]
	if !ok {
		return decimal.Decimal{}, false
	}
	return c.lines[pos].Quantity, true
}

// Total computes the cart total from current lines and the given price
// lookup. Totals are never cached; they are derived on every call. Lines
// whose product cannot be resolved are skipped.
func (c *Cart) Total(priceFor func(productID string) (decimal.Decimal, bool)) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		price, ok := priceFor(line.ProductID)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(line.Quantity))
	}
	return total
}
