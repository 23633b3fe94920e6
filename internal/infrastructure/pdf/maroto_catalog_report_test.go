package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/pdf"
)

func TestCatalogReport_Generate(t *testing.T) {
	records := entity.WrapProducts([]*entity.Product{
		{ID: "P1", Name: "Widget", Category: entity.CategoryElectronics, Price: decimal.RequireFromString("9.99"), Quantity: 2, ReorderLevel: 5},
		{ID: "P2", Name: "Novel", Category: entity.CategoryBooks, Price: decimal.NewFromInt(12), Quantity: 10, ReorderLevel: 1},
	})

	out, err := pdf.NewCatalogReport().Generate(context.Background(), "Catalog", records)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestCatalogReport_RegistroVacio(t *testing.T) {
	out, err := pdf.NewCatalogReport().Generate(context.Background(), "Empty", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
