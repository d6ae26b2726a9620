package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/api/middleware"
	"github.com/greenlyfe/greenlyfe-backend/api/responses"
	"github.com/greenlyfe/greenlyfe-backend/api/validators"
	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
)

type cartItemView struct {
	ProductID          string          `json:"product_id"`
	Name               string          `json:"name"`
	Quantity           decimal.Decimal `json:"quantity"`
	QuantityFormatted  string          `json:"quantity_formatted"`
	Unit               string          `json:"unit"`
	UnitLabel          string          `json:"unit_label"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitPriceFormatted string          `json:"unit_price_formatted"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	SubtotalFormatted  string          `json:"subtotal_formatted"`
}

type cartView struct {
	Items          []cartItemView  `json:"items"`
	ItemCount      int             `json:"item_count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

func newCartView(view *cart.View, formatter *money.Formatter) cartView {
	out := cartView{
		Items:          make([]cartItemView, 0, len(view.Lines)),
		ItemCount:      view.ItemCount(),
		Total:          view.Total,
		TotalFormatted: formatter.Price(view.Total),
	}
	for _, line := range view.Lines {
		out.Items = append(out.Items, cartItemView{
			ProductID:          line.Product.ID,
			Name:               line.Product.Name,
			Quantity:           line.Quantity,
			QuantityFormatted:  formatter.Quantity(line.Quantity),
			Unit:               string(line.Product.Unit),
			UnitLabel:          line.Product.Unit.Label(),
			UnitPrice:          line.Product.Price,
			UnitPriceFormatted: formatter.Price(line.Product.Price),
			Subtotal:           line.Subtotal,
			SubtotalFormatted:  formatter.Price(line.Subtotal),
		})
	}
	return out
}

func sessionID(r *http.Request, w http.ResponseWriter, logg *logger.Logger) (string, bool) {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
		return "", false
	}
	return id, true
}

// GetCart returns the session cart with totals recomputed on read.
func GetCart(svc cart.Service, formatter *money.Formatter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(r, w, logg)
		if !ok {
			return
		}
		view, err := svc.Get(sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(view, formatter))
	}
}

type setCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Quantity rules depend on the product's unit, so the cart validates it.
	Quantity decimal.Decimal `json:"quantity"`
}

// SetCartItem adds a product line or replaces the quantity of an existing
// one. Adding twice never accumulates.
func SetCartItem(svc cart.Service, formatter *money.Formatter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(r, w, logg)
		if !ok {
			return
		}
		var payload setCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.SetItem(sid, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(view, formatter))
	}
}

type updateCartItemRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// UpdateCartItem changes the quantity of an existing line. Zero or negative
// quantities remove the line.
func UpdateCartItem(svc cart.Service, formatter *money.Formatter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(r, w, logg)
		if !ok {
			return
		}
		productID := chi.URLParam(r, "productID")
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.UpdateQuantity(sid, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(view, formatter))
	}
}

// RemoveCartItem drops a line. Removing a product that is not in the cart
// still succeeds.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(r, w, logg)
		if !ok {
			return
		}
		productID := chi.URLParam(r, "productID")
		if _, err := svc.RemoveItem(sid, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
