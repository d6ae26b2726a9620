package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
)

// Line is one order summary entry with resolved pricing.
type Line struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Summary is a point-in-time order snapshot built from the cart. It keeps
// line order and carries the recomputed total.
type Summary struct {
	StoreName string          `json:"store_name"`
	Lines     []Line          `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}

// Service builds order summaries and dispatch URLs.
type Service interface {
	Summarize(view *cart.View) (*Summary, error)
	RenderText(summary *Summary) string
	DispatchURL(summary *Summary) string
}

type service struct {
	storeName      string
	whatsAppNumber string
	formatter      *money.Formatter
}

// NewService builds a checkout service. The WhatsApp number is digits only,
// country code included.
func NewService(storeName, whatsAppNumber string, formatter *money.Formatter) (Service, error) {
	if storeName == "" {
		return nil, fmt.Errorf("store name required")
	}
	if whatsAppNumber == "" {
		return nil, fmt.Errorf("whatsapp number required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("money formatter required")
	}
	return &service{
		storeName:      storeName,
		whatsAppNumber: whatsAppNumber,
		formatter:      formatter,
	}, nil
}

// Summarize converts a cart view into an order summary. An empty cart
// cannot be summarized.
func (s *service) Summarize(view *cart.View) (*Summary, error) {
	if view == nil || len(view.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	summary := &Summary{
		StoreName: s.storeName,
		Lines:     make([]Line, 0, len(view.Lines)),
		Total:     decimal.Zero,
	}
	for _, line := range view.Lines {
		summary.Lines = append(summary.Lines, Line{
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Unit:      line.Product.Unit.Label(),
			UnitPrice: line.Product.Price,
			Subtotal:  line.Subtotal,
		})
		summary.Total = summary.Total.Add(line.Subtotal)
	}
	return summary, nil
}

// RenderText formats the summary as the WhatsApp order message.
func (s *service) RenderText(summary *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Pedido - %s*\n\n", summary.StoreName)
	for i, line := range summary.Lines {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, line.Name)
		fmt.Fprintf(&b, "   Quantidade: %s %s\n", s.formatter.Quantity(line.Quantity), line.Unit)
		fmt.Fprintf(&b, "   Preço unitário: %s/%s\n", s.formatter.Price(line.UnitPrice), line.Unit)
		fmt.Fprintf(&b, "   Subtotal: %s\n\n", s.formatter.Price(line.Subtotal))
	}
	fmt.Fprintf(&b, "💰 *Total Geral: %s*\n\n", s.formatter.Price(summary.Total))
	b.WriteString("Por favor, confirme este pedido! 😊")
	return b.String()
}

// DispatchURL builds the wa.me link carrying the rendered order message.
func (s *service) DispatchURL(summary *Summary) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + s.whatsAppNumber,
	}
	q := url.Values{}
	q.Set("text", s.RenderText(summary))
	u.RawQuery = q.Encode()
	return u.String()
}
