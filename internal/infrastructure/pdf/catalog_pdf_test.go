package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func TestCatalogGenerator_Render(t *testing.T) {
	catalog := &dto.CatalogDTO{
		Title:       "Catálogo",
		GeneratedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Sections: []dto.CatalogSectionDTO{{
			Category: dto.CategoryResponse{ID: 1, Name: "Bebidas", Description: "Bebidas frías"},
			Products: []dto.CatalogItemDTO{
				{ID: 1, Name: "Agua", Description: "Agua mineral", Price: decimal.RequireFromString("1.50"), Stock: decimal.NewFromInt(10)},
			},
		}},
	}

	doc, err := NewCatalogGenerator().Render(catalog)
	require.NoError(t, err)
	assert.True(t, len(doc) > 4)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestCatalogGenerator_RenderEmpty(t *testing.T) {
	doc, err := NewCatalogGenerator().Render(&dto.CatalogDTO{Title: "Vacío", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)

	_, err = NewCatalogGenerator().Render(nil)
	assert.Error(t, err)
}
