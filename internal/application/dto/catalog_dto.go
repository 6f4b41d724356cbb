package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogDTO datos del catálogo exportable: productos activos agrupados por categoría.
type CatalogDTO struct {
	Title       string
	GeneratedAt time.Time
	Sections    []CatalogSectionDTO
}

// CatalogSectionDTO una categoría con sus productos activos.
type CatalogSectionDTO struct {
	Category CategoryResponse
	Products []CatalogItemDTO
}

// CatalogItemDTO fila del catálogo.
type CatalogItemDTO struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       decimal.Decimal
}
