package entity

import (
	"unicode/utf8"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	MinCategoryNameLength        = 3
	MinCategoryDescriptionLength = 5

	// Máximos de las columnas name y description (categorías y productos).
	MaxNameLength        = 150
	MaxDescriptionLength = 500
)

// Category representa una categoría de productos.
type Category struct {
	ID          int64
	Name        string
	Description string
	Active      bool
}

// NewCategory construye una categoría activa y validada.
func NewCategory(name, description string) (*Category, error) {
	c := &Category{Active: true}
	if err := c.Update(name, description); err != nil {
		return nil, err
	}
	return c, nil
}

// Update valida y reemplaza nombre y descripción.
func (c *Category) Update(name, description string) error {
	if err := validateNameAndDescription(name, description, MinCategoryNameLength, MinCategoryDescriptionLength); err != nil {
		return err
	}
	c.Name = name
	c.Description = description
	return nil
}

// Deactivate marca la categoría como inactiva (borrado lógico).
func (c *Category) Deactivate() {
	c.Active = false
}

func validateNameAndDescription(name, description string, minName, minDescription int) error {
	if name == "" {
		return domain.NewValidationError("name", "El nombre es obligatorio.")
	}
	if utf8.RuneCountInString(name) < minName {
		return domain.NewValidationError("name", "El nombre debe tener al menos 3 caracteres.")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return domain.NewValidationError("name", "El nombre no puede superar 150 caracteres.")
	}
	if description == "" {
		return domain.NewValidationError("description", "La descripción es obligatoria.")
	}
	if utf8.RuneCountInString(description) < minDescription {
		return domain.NewValidationError("description", "La descripción debe tener al menos 5 caracteres.")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domain.NewValidationError("description", "La descripción no puede superar 500 caracteres.")
	}
	return nil
}
