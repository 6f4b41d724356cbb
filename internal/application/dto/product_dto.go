package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=150"`
	Description string          `json:"description" validate:"required,min=5,max=500"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	CategoryID  int64           `json:"category_id" validate:"gt=0"`
	ImageURL    string          `json:"image_url" validate:"max=250"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo).
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=150"`
	Description string          `json:"description" validate:"required,min=5,max=500"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	CategoryID  int64           `json:"category_id" validate:"gt=0"`
	ImageURL    string          `json:"image_url" validate:"max=250"`
}

// ProductResponse detalle de un producto con su categoría.
type ProductResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       decimal.Decimal   `json:"stock"`
	Category    *CategoryResponse `json:"category"`
	ImageURL    string            `json:"image_url"`
}

// ProductReadResponse proyección liviana (sin id), usada al desactivar.
type ProductReadResponse struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	Stock       decimal.Decimal       `json:"stock"`
	Category    *CategoryReadResponse `json:"category"`
	ImageURL    string                `json:"image_url"`
}
