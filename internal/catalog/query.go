package catalog

import (
	"sort"
	"strings"

	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
)

// CategoryAll widens the category filter to the whole catalog.
const CategoryAll = "all"

// Query configures one catalog lookup. The zero value of SearchTerm means no
// text filter; an empty Category or CategoryAll means no category scoping.
type Query struct {
	SearchTerm string
	Category   string
	Sort       enums.SortKey
	PageSize   int
	PageOffset int
}

// Page is the cumulative result window for a query: everything from the start
// of the filtered sequence up to offset+size ("load more" semantics).
type Page struct {
	Items   []Product
	Total   int
	HasMore bool
}

// Search runs the query pipeline: scope selection, text filter, stable sort,
// cumulative windowing. It is a pure function of the catalog and the query and
// is safe to re-run on every keystroke.
//
// A non-empty search term widens the scope to the whole catalog, ignoring
// the selected category, so a match outside the current tab is still found.
func (c *Catalog) Search(q Query) (Page, error) {
	category, err := q.validate()
	if err != nil {
		return Page{}, err
	}

	term := foldTerm(q.SearchTerm)

	var matched []Product
	if term != "" {
		for _, p := range c.products {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				matched = append(matched, p)
			}
		}
	} else if category != "" {
		for _, p := range c.products {
			if p.Category == category {
				matched = append(matched, p)
			}
		}
	} else {
		matched = append(matched, c.products...)
	}

	c.sortProducts(matched, q.Sort)

	total := len(matched)
	// The sum wraps around for huge but contract-valid inputs; a wrapped
	// end means the window already covers everything.
	end := q.PageOffset + q.PageSize
	if end < q.PageOffset || end > total {
		end = total
	}

	return Page{
		Items:   matched[:end],
		Total:   total,
		HasMore: end < total,
	}, nil
}

// validate enforces the query contract and resolves the category scope.
// Violations are programmer errors, not user input problems.
func (q Query) validate() (enums.ProductCategory, error) {
	if q.PageSize <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeInvalidQuery, "page size must be positive").
			WithDetails(map[string]any{"page_size": q.PageSize})
	}
	if q.PageOffset < 0 {
		return "", pkgerrors.New(pkgerrors.CodeInvalidQuery, "page offset must not be negative").
			WithDetails(map[string]any{"page_offset": q.PageOffset})
	}
	if q.Sort != "" && !q.Sort.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeInvalidQuery, "unknown sort key").
			WithDetails(map[string]any{"sort": string(q.Sort)})
	}

	if q.Category == "" || q.Category == CategoryAll {
		return "", nil
	}
	category, err := enums.ParseProductCategory(q.Category)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInvalidQuery, err, "unknown category").
			WithDetails(map[string]any{"category": q.Category})
	}
	return category, nil
}

// sortProducts applies the sort key as a stable sort so ties keep catalog
// order. Relevance is catalog insertion order and needs no reordering.
func (c *Catalog) sortProducts(products []Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case enums.SortKeyName:
		// collate.Collator mutates internal iterator state on every
		// comparison, so name sorts serialize on the catalog's mutex.
		c.collMu.Lock()
		sort.SliceStable(products, func(i, j int) bool {
			return c.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
		c.collMu.Unlock()
	}
}

func foldTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
