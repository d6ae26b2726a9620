package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func TestNewRejectsBadSeedCollectingAllProblems(t *testing.T) {
	products := []Product{
		{ID: "", Name: "sem id", Category: enums.ProductCategoryGrains, Unit: enums.ProductUnitGram},
		{ID: "dup", Name: "ok", Category: enums.ProductCategoryGrains, Unit: enums.ProductUnitGram},
		{ID: "dup", Name: "duplicado", Category: enums.ProductCategoryGrains, Unit: enums.ProductUnitGram},
		{ID: "weird", Name: "categoria ruim", Category: "widgets", Unit: "box", Price: decimal.NewFromInt(-1)},
	}

	_, err := New(products, "pt-BR")
	if err == nil {
		t.Fatal("expected seed validation to fail")
	}
	msg := err.Error()
	for _, want := range []string{"missing id", "duplicate id", "invalid category", "invalid unit", "negative price"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected combined error to mention %q, got %v", want, err)
		}
	}
}

func TestDefaultSeedIsValid(t *testing.T) {
	c, err := New(DefaultSeed(), "pt-BR")
	if err != nil {
		t.Fatalf("default seed must build: %v", err)
	}
	if c.Len() != 28 {
		t.Fatalf("expected 28 seeded products, got %d", c.Len())
	}
	if _, ok := c.ByID("quinoa"); !ok {
		t.Fatal("expected quinoa in default seed")
	}
}

func TestLoadSeedFile(t *testing.T) {
	seed := []Product{
		{ID: "mate", Name: "Chá Mate", Category: enums.ProductCategoryJuices, Price: decimal.RequireFromString("9.90"), Unit: enums.ProductUnitGram},
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	loaded, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "mate" {
		t.Fatalf("unexpected seed %+v", loaded)
	}
	if !loaded[0].Price.Equal(decimal.RequireFromString("9.90")) {
		t.Fatalf("price not preserved: %s", loaded[0].Price)
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultQuantityHint(t *testing.T) {
	discrete := Product{Unit: enums.ProductUnitEach}
	if !discrete.DefaultQuantity().Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected 1 for discrete units, got %s", discrete.DefaultQuantity())
	}
	continuous := Product{Unit: enums.ProductUnitGram}
	if !continuous.DefaultQuantity().Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("expected 0.5 for continuous units, got %s", continuous.DefaultQuantity())
	}
}
