//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/validation"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/migrations"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/migration"
)

// RepositorySuite levanta un PostgreSQL real y aplica las migraciones embebidas.
type RepositorySuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.container, err = tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("catalogo_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	require.NoError(s.T(), err, "levantar contenedor postgres")

	dsn, err := s.container.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pool, err = postgres.NewPool(s.ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 5})
	require.NoError(s.T(), err)

	m := migration.NewMigrator(migration.Config{FS: migrations.FS, Path: migrations.Dir}, s.pool, zerolog.Nop())
	require.NoError(s.T(), m.Up())
	v, dirty, err := m.Version()
	require.NoError(s.T(), err)
	require.False(s.T(), dirty)
	require.EqualValues(s.T(), 1, v)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE users, customers, products, categories RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) account(kind entity.AccountKind, name, email string) *entity.Account {
	acc, err := entity.NewAccount(kind, name, email, "$2a$10$hashdeprueba")
	s.Require().NoError(err)
	return acc
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestAccount_AltaYLecturas() {
	repo := postgres.NewAccountRepository(s.pool, entity.KindUser)

	created, err := repo.Add(s.ctx, s.account(entity.KindUser, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)
	s.True(created.Active)

	byEmail, err := repo.GetByEmail(s.ctx, "zezin@gmail.com")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal(created.ID, byEmail.ID)
	s.Equal("$2a$10$hashdeprueba", byEmail.PasswordHash)

	missing, err := repo.GetByID(s.ctx, 999)
	s.NoError(err)
	s.Nil(missing)

	all, err := repo.GetAll(s.ctx)
	s.NoError(err)
	s.Len(all, 1)
}

func (s *RepositorySuite) TestAccount_EmailUnicoEntreActivos() {
	repo := postgres.NewAccountRepository(s.pool, entity.KindCustomer)

	first, err := repo.Add(s.ctx, s.account(entity.KindCustomer, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)

	_, err = repo.Add(s.ctx, s.account(entity.KindCustomer, "Otro Zezin", "zezin@gmail.com"))
	s.ErrorIs(err, domain.ErrEmailAlreadyExists)

	removed, err := repo.Remove(s.ctx, first.ID)
	s.Require().NoError(err)
	s.False(removed.Active)

	// Desactivada la cuenta, el email vuelve a estar libre.
	again, err := repo.Add(s.ctx, s.account(entity.KindCustomer, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)
	s.NotEqual(first.ID, again.ID)

	// La cuenta inactiva sigue visible por id.
	old, err := repo.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Require().NotNil(old)
	s.False(old.Active)
}

func (s *RepositorySuite) TestAccount_TablasSeparadasPorTipo() {
	users := postgres.NewAccountRepository(s.pool, entity.KindUser)
	customers := postgres.NewAccountRepository(s.pool, entity.KindCustomer)

	_, err := users.Add(s.ctx, s.account(entity.KindUser, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)
	_, err = customers.Add(s.ctx, s.account(entity.KindCustomer, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)

	found, err := customers.GetByEmail(s.ctx, "zezin@gmail.com")
	s.Require().NoError(err)
	s.Equal(entity.KindCustomer, found.Kind)
}

func (s *RepositorySuite) TestAccount_UpdateYPassword() {
	repo := postgres.NewAccountRepository(s.pool, entity.KindUser)
	created, err := repo.Add(s.ctx, s.account(entity.KindUser, "Zezin", "zezin@gmail.com"))
	s.Require().NoError(err)

	s.Require().NoError(created.Rename("Zezin Souza", "souza@gmail.com"))
	updated, err := repo.Update(s.ctx, created)
	s.Require().NoError(err)
	s.Equal("Zezin Souza", updated.Name)
	s.Equal("$2a$10$hashdeprueba", updated.PasswordHash)

	ok, err := repo.UpdatePassword(s.ctx, created.ID, "$2a$10$otrohash")
	s.NoError(err)
	s.True(ok)

	ok, err = repo.UpdatePassword(s.ctx, 999, "$2a$10$otrohash")
	s.NoError(err)
	s.False(ok)
}

func (s *RepositorySuite) TestTxRunner_RollbackEnError() {
	runner := postgres.NewTxRunner(s.pool)
	boom := errors.New("boom")

	err := runner.RunAccounts(s.ctx, entity.KindUser, func(repo repository.AccountRepository) error {
		if _, err := repo.Add(s.ctx, s.account(entity.KindUser, "Zezin", "zezin@gmail.com")); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	repo := postgres.NewAccountRepository(s.pool, entity.KindUser)
	found, err := repo.GetByEmail(s.ctx, "zezin@gmail.com")
	s.NoError(err)
	s.Nil(found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y productos
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestCategory_CRUD() {
	repo := postgres.NewCategoryRepository(s.pool)
	cat, err := entity.NewCategory("Bebidas", "Bebidas frías")
	s.Require().NoError(err)

	created, err := repo.Add(s.ctx, cat)
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)

	s.Require().NoError(created.Update("Lácteos", "Leche y quesos"))
	updated, err := repo.Update(s.ctx, created)
	s.Require().NoError(err)
	s.Equal("Lácteos", updated.Name)

	removed, err := repo.Remove(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(removed)
	s.False(removed.Active)

	gone, err := repo.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Nil(gone)

	again, err := repo.Remove(s.ctx, created.ID)
	s.NoError(err)
	s.Nil(again)
}

func (s *RepositorySuite) TestProduct_CategoriaYDecimales() {
	categories := postgres.NewCategoryRepository(s.pool)
	products := postgres.NewProductRepository(s.pool)

	cat, err := entity.NewCategory("Bebidas", "Bebidas frías")
	s.Require().NoError(err)
	cat, err = categories.Add(s.ctx, cat)
	s.Require().NoError(err)

	p, err := entity.NewProduct(entity.ProductFields{
		Name:        "Café molido",
		Description: "Café de origen 500g",
		Price:       decimal.RequireFromString("18900.50"),
		Stock:       decimal.RequireFromString("2.5"),
		CategoryID:  99,
	})
	s.Require().NoError(err)

	_, err = products.Add(s.ctx, p)
	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("category_id", verr.Field)

	p.CategoryID = cat.ID
	created, err := products.Add(s.ctx, p)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("18900.50").Equal(created.Price))
	s.True(decimal.RequireFromString("2.5").Equal(created.Stock))
	s.Require().NotNil(created.Category)
	s.Equal("Bebidas", created.Category.Name)
	s.Empty(created.ImageURL)

	removed, err := products.Remove(s.ctx, created.ID)
	s.Require().NoError(err)
	s.False(removed.Active)

	all, err := products.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *RepositorySuite) TestTxRunner_RunCatalog() {
	categories := postgres.NewCategoryRepository(s.pool)
	cat, err := entity.NewCategory("Bebidas", "Bebidas frías")
	s.Require().NoError(err)
	_, err = categories.Add(s.ctx, cat)
	s.Require().NoError(err)

	runner := postgres.NewTxRunner(s.pool)
	var seen int
	err = runner.RunCatalog(s.ctx, func(cr repository.CategoryRepository, pr repository.ProductRepository) error {
		list, err := cr.GetAll(s.ctx)
		if err != nil {
			return err
		}
		seen = len(list)
		_, err = pr.GetAll(s.ctx)
		return err
	})
	s.NoError(err)
	s.Equal(1, seen)
}

// Los máximos que aceptan las reglas de dominio caben en las columnas.
func (s *RepositorySuite) TestLimitesDeDominioCabenEnElEsquema() {
	accounts := postgres.NewAccountRepository(s.pool, entity.KindUser)
	email := strings.Repeat("a", 140) + "@gmail.com"
	acc, err := entity.NewAccount(entity.KindUser, strings.Repeat("z", validation.MaxNameLength), email, "$2a$10$hashdeprueba")
	s.Require().NoError(err)
	_, err = accounts.Add(s.ctx, acc)
	s.Require().NoError(err)

	_, err = entity.NewAccount(entity.KindUser, strings.Repeat("z", validation.MaxNameLength+1), "otro@gmail.com", "$2a$10$hashdeprueba")
	s.ErrorIs(err, domain.ErrInvalidInput)

	categories := postgres.NewCategoryRepository(s.pool)
	cat, err := entity.NewCategory(strings.Repeat("c", entity.MaxNameLength), strings.Repeat("d", entity.MaxDescriptionLength))
	s.Require().NoError(err)
	cat, err = categories.Add(s.ctx, cat)
	s.Require().NoError(err)

	products := postgres.NewProductRepository(s.pool)
	p, err := entity.NewProduct(entity.ProductFields{
		Name:        strings.Repeat("p", entity.MaxNameLength),
		Description: strings.Repeat("d", entity.MaxDescriptionLength),
		Price:       decimal.RequireFromString("1.99"),
		Stock:       decimal.RequireFromString("0.125"),
		CategoryID:  cat.ID,
		ImageURL:    strings.Repeat("u", entity.MaxImageURLLength),
	})
	s.Require().NoError(err)
	created, err := products.Add(s.ctx, p)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1.99").Equal(created.Price), "el precio no se redondea")
	s.True(decimal.RequireFromString("0.125").Equal(created.Stock))
}
