package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is the immutable product set for a session. It is loaded once at
// process start and never mutated afterwards. The collator is the one
// exception: CompareString is stateful, so uses are guarded by collMu.
type Catalog struct {
	products []Product
	byID     map[string]Product

	collMu   sync.Mutex
	collator *collate.Collator
}

// New validates the provided records and builds the catalog. All problems are
// collected and reported together rather than failing on the first bad record.
// The locale drives name collation for alphabetic sorting.
func New(products []Product, locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}

	var errs error
	byID := make(map[string]Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: missing id", i))
			continue
		}
		if _, dup := byID[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %q: duplicate id", p.ID))
			continue
		}
		if p.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %q: missing name", p.ID))
		}
		if !p.Category.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("product %q: invalid category %q", p.ID, p.Category))
		}
		if !p.Unit.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("product %q: invalid unit %q", p.ID, p.Unit))
		}
		if p.Price.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("product %q: negative price %s", p.ID, p.Price))
		}
		byID[p.ID] = p
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid catalog seed: %w", errs)
	}

	owned := make([]Product, len(products))
	copy(owned, products)

	return &Catalog{
		products: owned,
		byID:     byID,
		collator: collate.New(tag),
	}, nil
}

// LoadSeedFile reads a JSON product list from disk.
func LoadSeedFile(path string) ([]Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog seed: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog seed: %w", err)
	}
	return products, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product.
func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []Product {
	return c.products
}
