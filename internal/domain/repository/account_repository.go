package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para titulares de cuenta (DIP).
// Una misma implementación sirve a usuarios y clientes según el AccountKind.
// "No encontrado" se devuelve como (nil, nil).
type AccountRepository interface {
	Add(ctx context.Context, account *entity.Account) (*entity.Account, error)
	// GetByID devuelve la cuenta esté activa o no.
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	// GetByEmail sólo considera cuentas activas.
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAll(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error)
	// Remove desactiva la cuenta y devuelve el registro actualizado.
	Remove(ctx context.Context, id int64) (*entity.Account, error)
}
