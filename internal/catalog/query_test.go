package catalog

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	products := []Product{
		{ID: "quinoa", Name: "Quinoa", Category: enums.ProductCategoryGrains, Price: decimal.RequireFromString("25.50"), Unit: enums.ProductUnitGram},
		{ID: "chia", Name: "Chia", Description: "sementes ricas em fibras", Category: enums.ProductCategoryGrains, Price: decimal.RequireFromString("15.00"), Unit: enums.ProductUnitGram},
		{ID: "vitamin-d", Name: "Vitamina D3", Category: enums.ProductCategorySupplements, Price: decimal.RequireFromString("45.00"), Unit: enums.ProductUnitEach},
		{ID: "agua-coco", Name: "Água de Coco", Category: enums.ProductCategoryJuices, Price: decimal.RequireFromString("15.00"), Unit: enums.ProductUnitMilliliter},
		{ID: "green-juice", Name: "Suco Verde", Category: enums.ProductCategoryJuices, Price: decimal.RequireFromString("18.00"), Unit: enums.ProductUnitMilliliter},
	}
	c, err := New(products, "pt-BR")
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

func ids(items []Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchTermOverridesCategory(t *testing.T) {
	c := testCatalog(t)

	// "vitamina" is a supplement, but the selected tab is grains.
	page, err := c.Search(Query{SearchTerm: "vitamina", Category: "grains", PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(page.Items), "vitamin-d") {
		t.Fatalf("expected category override to find vitamin-d, got %v", ids(page.Items))
	}
}

func TestEmptySearchScopesToCategory(t *testing.T) {
	c := testCatalog(t)

	page, err := c.Search(Query{Category: "grains", PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range page.Items {
		if p.Category != enums.ProductCategoryGrains {
			t.Fatalf("expected only grains, got %s in %v", p.ID, ids(page.Items))
		}
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 grains, got %d", len(page.Items))
	}
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	c := testCatalog(t)

	page, err := c.Search(Query{SearchTerm: "  FIBRAS ", Category: "all", PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(page.Items), "chia") {
		t.Fatalf("expected description match for chia, got %v", ids(page.Items))
	}
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	c := testCatalog(t)

	page, err := c.Search(Query{SearchTerm: "inexistente", PageSize: 10})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 0 || page.HasMore {
		t.Fatalf("expected empty page, got %+v", page)
	}
}

func TestSortStability(t *testing.T) {
	c := testCatalog(t)

	t.Run("priceAscTiesKeepCatalogOrder", func(t *testing.T) {
		page, err := c.Search(Query{Category: "all", Sort: enums.SortKeyPriceAsc, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// chia and agua-coco tie at 15.00; chia precedes it in the catalog.
		if !equalIDs(ids(page.Items), "chia", "agua-coco", "green-juice", "quinoa", "vitamin-d") {
			t.Fatalf("unexpected order %v", ids(page.Items))
		}
	})

	t.Run("priceDescTiesKeepCatalogOrder", func(t *testing.T) {
		page, err := c.Search(Query{Category: "all", Sort: enums.SortKeyPriceDesc, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(page.Items), "vitamin-d", "quinoa", "green-juice", "chia", "agua-coco") {
			t.Fatalf("unexpected order %v", ids(page.Items))
		}
	})

	t.Run("repeatedSortIsDeterministic", func(t *testing.T) {
		first, err := c.Search(Query{Category: "all", Sort: enums.SortKeyName, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := c.Search(Query{Category: "all", Sort: enums.SortKeyName, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(first.Items), ids(second.Items)...) {
			t.Fatalf("sort not deterministic: %v vs %v", ids(first.Items), ids(second.Items))
		}
	})

	t.Run("nameUsesLocaleCollation", func(t *testing.T) {
		page, err := c.Search(Query{Category: "all", Sort: enums.SortKeyName, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Under pt-BR collation "Água" sorts with "a", ahead of "Chia";
		// raw byte order would push the accented Á after "Vitamina".
		if ids(page.Items)[0] != "agua-coco" {
			t.Fatalf("expected Água de Coco first under locale collation, got %v", ids(page.Items))
		}
	})

	t.Run("relevanceKeepsCatalogOrder", func(t *testing.T) {
		page, err := c.Search(Query{Category: "all", Sort: enums.SortKeyRelevance, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(page.Items), "quinoa", "chia", "vitamin-d", "agua-coco", "green-juice") {
			t.Fatalf("unexpected order %v", ids(page.Items))
		}
	})
}

func TestCumulativePaging(t *testing.T) {
	c := testCatalog(t)

	first, err := c.Search(Query{Category: "all", PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != 2 || !first.HasMore {
		t.Fatalf("expected first window of 2 with more available, got %+v", first)
	}

	wider, err := c.Search(Query{Category: "all", PageSize: 2, PageOffset: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wider.Items) != 4 {
		t.Fatalf("expected cumulative window of 4, got %d", len(wider.Items))
	}
	// Prefix stability: the wider window starts with the first window.
	for i, p := range first.Items {
		if wider.Items[i].ID != p.ID {
			t.Fatalf("prefix not stable at %d: %s vs %s", i, wider.Items[i].ID, p.ID)
		}
	}

	all, err := c.Search(Query{Category: "all", PageSize: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Items) != c.Len() || all.HasMore {
		t.Fatalf("oversized window should yield everything with no more, got %+v", all)
	}
}

func TestCumulativePagingHugeWindowDoesNotWrap(t *testing.T) {
	c := testCatalog(t)

	// Offset and size are each valid on their own but overflow when summed.
	page, err := c.Search(Query{Category: "all", PageSize: math.MaxInt, PageOffset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != c.Len() || page.HasMore {
		t.Fatalf("huge window should yield everything with no more, got %+v", page)
	}

	page, err = c.Search(Query{Category: "all", PageSize: math.MaxInt, PageOffset: math.MaxInt})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != c.Len() || page.HasMore {
		t.Fatalf("huge window should yield everything with no more, got %+v", page)
	}
}

func TestConcurrentNameSortsStayConsistent(t *testing.T) {
	c := testCatalog(t)

	baseline, err := c.Search(Query{Category: "all", Sort: enums.SortKeyName, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const workers = 8
	const rounds = 200

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				page, err := c.Search(Query{Category: "all", Sort: enums.SortKeyName, PageSize: 10})
				if err != nil {
					errs <- err
					return
				}
				if !equalIDs(ids(page.Items), ids(baseline.Items)...) {
					errs <- fmt.Errorf("order diverged: %v vs %v", ids(page.Items), ids(baseline.Items))
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		t.Fatalf("concurrent name sort: %v", err)
	}
}

func TestSearchInvalidQuery(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		query Query
	}{
		{"zeroPageSize", Query{PageSize: 0}},
		{"negativePageSize", Query{PageSize: -1}},
		{"negativeOffset", Query{PageSize: 10, PageOffset: -1}},
		{"unknownSort", Query{PageSize: 10, Sort: "cheapest"}},
		{"unknownCategory", Query{PageSize: 10, Category: "gadgets"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Search(tt.query)
			if err == nil {
				t.Fatal("expected invalid query error")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeInvalidQuery {
				t.Fatalf("expected INVALID_QUERY, got %v", err)
			}
		})
	}
}
