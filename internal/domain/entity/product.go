package entity

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	MinProductNameLength        = 3
	MinProductDescriptionLength = 5
	MaxImageURLLength           = 250

	// Escala de las columnas NUMERIC(18,2) y NUMERIC(18,3).
	PriceDecimals = 2
	StockDecimals = 3
)

// Product representa un producto del catálogo. Category la carga el repositorio
// (JOIN); la entidad sólo es dueña de CategoryID.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       decimal.Decimal // cantidad, admite fracciones (kg, litros)
	CategoryID  int64
	Category    *Category
	ImageURL    string
	Active      bool
}

// ProductFields agrupa los campos editables de un producto.
type ProductFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       decimal.Decimal
	CategoryID  int64
	ImageURL    string
}

// NewProduct construye un producto activo y validado.
func NewProduct(f ProductFields) (*Product, error) {
	p := &Product{Active: true}
	if err := p.Update(f); err != nil {
		return nil, err
	}
	return p, nil
}

// Update valida y reemplaza los campos editables. No comprueba que la categoría
// exista: eso lo garantiza la FK en base de datos.
func (p *Product) Update(f ProductFields) error {
	if err := validateNameAndDescription(f.Name, f.Description, MinProductNameLength, MinProductDescriptionLength); err != nil {
		return err
	}
	if f.Price.IsNegative() {
		return domain.NewValidationError("price", "Valor del precio inválido.")
	}
	if !f.Price.Equal(f.Price.Truncate(PriceDecimals)) {
		return domain.NewValidationError("price", "El precio admite como máximo 2 decimales.")
	}
	if f.Stock.IsNegative() {
		return domain.NewValidationError("stock", "Stock inválido.")
	}
	if !f.Stock.Equal(f.Stock.Truncate(StockDecimals)) {
		return domain.NewValidationError("stock", "El stock admite como máximo 3 decimales.")
	}
	if f.CategoryID <= 0 {
		return domain.NewValidationError("category_id", "Categoría inválida.")
	}
	if utf8.RuneCountInString(f.ImageURL) > MaxImageURLLength {
		return domain.NewValidationError("image_url", "La URL de la imagen no puede superar 250 caracteres.")
	}
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
	p.Stock = f.Stock
	p.CategoryID = f.CategoryID
	p.ImageURL = f.ImageURL
	if p.Category != nil && p.Category.ID != f.CategoryID {
		p.Category = nil
	}
	return nil
}

// Deactivate marca el producto como inactivo (borrado lógico).
func (p *Product) Deactivate() {
	p.Active = false
}
