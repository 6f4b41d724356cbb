package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas filtran por active = true.
type CategoryRepository interface {
	Add(ctx context.Context, category *entity.Category) (*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Remove(ctx context.Context, id int64) (*entity.Category, error)
}
