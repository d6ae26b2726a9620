package controllers

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func testFormatter(t *testing.T) *money.Formatter {
	t.Helper()
	return money.NewFormatter("pt-BR", "R$")
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	products := []catalog.Product{
		{
			ID:          "quinoa",
			Name:        "Quinoa em Grãos",
			Description: "Grão rico em proteínas",
			Category:    enums.ProductCategoryGrains,
			Price:       decimal.RequireFromString("18.90"),
			Unit:        enums.ProductUnitKilogram,
			Image:       "quinoa.jpg",
		},
		{
			ID:          "chia",
			Name:        "Semente de Chia",
			Description: "Rica em fibras e ômega 3",
			Category:    enums.ProductCategoryGrains,
			Price:       decimal.RequireFromString("5.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "chia.jpg",
		},
		{
			ID:          "suco-verde",
			Name:        "Suco Verde",
			Description: "Couve, limão e gengibre",
			Category:    enums.ProductCategoryJuices,
			Price:       decimal.RequireFromString("10.00"),
			Unit:        enums.ProductUnitEach,
			Image:       "suco-verde.jpg",
		},
	}
	cat, err := catalog.New(products, "pt-BR")
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func testCartService(t *testing.T, cat *catalog.Catalog) cart.Service {
	t.Helper()
	svc, err := cart.NewService(cart.NewStore(time.Hour), cat)
	if err != nil {
		t.Fatalf("build cart service: %v", err)
	}
	return svc
}
