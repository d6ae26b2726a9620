package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
)

// Service exposes session cart operations resolved against the catalog.
type Service interface {
	Get(sessionID string) (*View, error)
	SetItem(sessionID, productID string, quantity decimal.Decimal) (*View, error)
	UpdateQuantity(sessionID, productID string, quantity decimal.Decimal) (*View, error)
	RemoveItem(sessionID, productID string) (*View, error)
	Clear(sessionID string) error
}

// View is a cart snapshot with every line resolved against the catalog.
type ViewLine struct {
	Product  catalog.Product
	Quantity decimal.Decimal
	Subtotal decimal.Decimal
}

type View struct {
	Lines []ViewLine
	Total decimal.Decimal
}

// ItemCount reports the number of distinct lines.
func (v *View) ItemCount() int {
	return len(v.Lines)
}

type service struct {
	store   *Store
	catalog *catalog.Catalog
}

// NewService builds a cart service over the session store and catalog.
func NewService(store *Store, cat *catalog.Catalog) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{store: store, catalog: cat}, nil
}

func (s *service) Get(sessionID string) (*View, error) {
	var view *View
	err := s.store.With(sessionID, func(c *Cart) error {
		view = s.snapshot(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) SetItem(sessionID, productID string, quantity decimal.Decimal) (*View, error) {
	product, err := s.lookup(productID)
	if err != nil {
		return nil, err
	}
	var view *View
	err = s.store.With(sessionID, func(c *Cart) error {
		if err := c.SetItem(product, quantity); err != nil {
			return err
		}
		view = s.snapshot(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) UpdateQuantity(sessionID, productID string, quantity decimal.Decimal) (*View, error) {
	product, err := s.lookup(productID)
	if err != nil {
		return nil, err
	}
	var view *View
	err = s.store.With(sessionID, func(c *Cart) error {
		if err := c.UpdateQuantity(product, quantity); err != nil {
			return err
		}
		view = s.snapshot(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) RemoveItem(sessionID, productID string) (*View, error) {
	var view *View
	err := s.store.With(sessionID, func(c *Cart) error {
		c.Remove(productID)
		view = s.snapshot(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) Clear(sessionID string) error {
	return s.store.With(sessionID, func(c *Cart) error {
		c.Clear()
		return nil
	})
}

func (s *service) lookup(productID string) (catalog.Product, error) {
	product, ok := s.catalog.ByID(productID)
	if !ok {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found: "+productID)
	}
	return product, nil
}

// snapshot resolves the cart against the catalog. Lines referencing
// products that have left the catalog are dropped from the view.
func (s *service) snapshot(c *Cart) *View {
	view := &View{Total: decimal.Zero}
	for _, line := range c.Lines() {
		product, ok := s.catalog.ByID(line.ProductID)
		if !ok {
			continue
		}
		subtotal := product.Price.Mul(line.Quantity)
		view.Lines = append(view.Lines, ViewLine{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view
}
