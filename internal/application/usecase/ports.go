package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AccountTxRunner ejecuta fn dentro de una transacción con el repositorio de cuentas del tipo dado.
// Se usa para que la comprobación de email y el alta ocurran en la misma tx.
type AccountTxRunner interface {
	RunAccounts(ctx context.Context, kind entity.AccountKind, fn func(repo repository.AccountRepository) error) error
}

// CatalogTxRunner ejecuta fn con repos de categorías y productos sobre una misma foto de la base.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CatalogRenderer genera el documento del catálogo (implementación en infrastructure/pdf).
type CatalogRenderer interface {
	Render(catalog *dto.CatalogDTO) ([]byte, error)
}
