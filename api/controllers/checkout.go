package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/api/responses"
	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	"github.com/greenlyfe/greenlyfe-backend/internal/checkout"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
)

type checkoutResponse struct {
	Message        string          `json:"message"`
	DispatchURL    string          `json:"dispatch_url"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	LineCount      int             `json:"line_count"`
}

// Checkout snapshots the session cart into an order summary and returns the
// WhatsApp dispatch link. The cart itself is left untouched so the shopper
// can keep editing until the order is actually sent.
func Checkout(cartSvc cart.Service, checkoutSvc checkout.Service, formatter *money.Formatter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(r, w, logg)
		if !ok {
			return
		}
		view, err := cartSvc.Get(sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		summary, err := checkoutSvc.Summarize(view)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutResponse{
			Message:        checkoutSvc.RenderText(summary),
			DispatchURL:    checkoutSvc.DispatchURL(summary),
			Total:          summary.Total,
			TotalFormatted: formatter.Price(summary.Total),
			LineCount:      len(summary.Lines),
		})
	}
}
