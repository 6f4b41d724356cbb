package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// countingAccounts cuenta las llamadas a Add para verificar que un alta rechazada no persiste.
type countingAccounts struct {
	repository.AccountRepository
	adds *int
}

func (c countingAccounts) Add(ctx context.Context, a *entity.Account) (*entity.Account, error) {
	*c.adds++
	return c.AccountRepository.Add(ctx, a)
}

// countingTx envuelve el Store y cuenta transacciones y altas.
type countingTx struct {
	store *memory.Store
	adds  *int
	calls int
}

func (t *countingTx) RunAccounts(ctx context.Context, kind entity.AccountKind, fn func(repository.AccountRepository) error) error {
	t.calls++
	return t.store.RunAccounts(ctx, kind, func(r repository.AccountRepository) error {
		return fn(countingAccounts{AccountRepository: r, adds: t.adds})
	})
}

type accountFixture struct {
	uc   *usecase.AccountUseCase
	repo *memory.AccountRepo
	tx   *countingTx
	adds int
}

func newAccountUC(kind entity.AccountKind) *accountFixture {
	store := memory.NewStore()
	fx := &accountFixture{repo: store.Accounts(kind)}
	fx.tx = &countingTx{store: store, adds: &fx.adds}
	fx.uc = usecase.NewAccountUseCase(kind, fx.repo, fx.tx, zerolog.Nop())
	return fx
}

// stored lee la fila tal cual quedó en el repositorio (incluye el hash).
func (fx *accountFixture) stored(t *testing.T, id int64) *entity.Account {
	t.Helper()
	acc, err := fx.repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc
}
