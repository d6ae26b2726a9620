package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/api/responses"
	"github.com/greenlyfe/greenlyfe-backend/api/validators"
	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
)

const (
	defaultPageSize   = 12
	defaultPageOffset = 0
)

type productView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	PriceFormatted  string          `json:"price_formatted"`
	Unit            string          `json:"unit"`
	UnitLabel       string          `json:"unit_label"`
	Image           string          `json:"image"`
	Badges          []string        `json:"badges,omitempty"`
	DefaultQuantity decimal.Decimal `json:"default_quantity"`
}

type productListResponse struct {
	Items      []productView `json:"items"`
	Total      int           `json:"total"`
	HasMore    bool          `json:"has_more"`
	PageSize   int           `json:"page_size"`
	PageOffset int           `json:"page_offset"`
}

func newProductView(p catalog.Product, rules []catalog.BadgeRule, formatter *money.Formatter) productView {
	badges := enums.UIBadgeStrings(catalog.ApplyBadgeRules(rules, p))
	return productView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        string(p.Category),
		Price:           p.Price,
		PriceFormatted:  formatter.Price(p.Price),
		Unit:            string(p.Unit),
		UnitLabel:       p.Unit.Label(),
		Image:           p.Image,
		Badges:          badges,
		DefaultQuantity: p.DefaultQuantity(),
	}
}

// ListProducts serves the storefront grid: text search, category scoping,
// sorting, and cumulative paging.
func ListProducts(cat *catalog.Catalog, rules []catalog.BadgeRule, formatter *money.Formatter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageSize, err := validators.ParseQueryInt(r, "page_size", defaultPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageOffset, err := validators.ParseQueryInt(r, "page_offset", defaultPageOffset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := catalog.Query{
			SearchTerm: validators.ParseQueryString(r, "q", ""),
			Category:   validators.ParseQueryString(r, "category", catalog.CategoryAll),
			Sort:       enums.SortKey(validators.ParseQueryString(r, "sort", string(enums.SortKeyRelevance))),
			PageSize:   pageSize,
			PageOffset: pageOffset,
		}

		page, err := cat.Search(query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]productView, 0, len(page.Items))
		for _, p := range page.Items {
			items = append(items, newProductView(p, rules, formatter))
		}

		responses.WriteSuccess(w, productListResponse{
			Items:      items,
			Total:      page.Total,
			HasMore:    page.HasMore,
			PageSize:   pageSize,
			PageOffset: pageOffset,
		})
	}
}
