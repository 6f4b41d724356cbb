// Package memory implementa los repositorios en memoria. Se usa con
// STORAGE_DRIVER=memory (desarrollo sin PostgreSQL) y en los tests.
// Replica las reglas de la base: email único entre cuentas activas, FK de
// producto a categoría y lecturas filtradas por active.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var (
	_ usecase.AccountTxRunner = (*Store)(nil)
	_ usecase.CatalogTxRunner = (*Store)(nil)
)

// Store agrupa las tablas en memoria. Un único mutex serializa todas las
// operaciones, incluidas las "transacciones" de RunAccounts y RunCatalog.
type Store struct {
	mu         sync.Mutex
	accounts   map[string]*table[entity.Account]
	categories *table[entity.Category]
	products   *table[entity.Product]
}

type table[T any] struct {
	nextID int64
	rows   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[int64]T{}}
}

func (t *table[T]) insert(row T) int64 {
	t.nextID++
	t.rows[t.nextID] = row
	return t.nextID
}

// NewStore crea un almacén vacío con tablas para usuarios, clientes, categorías y productos.
func NewStore() *Store {
	return &Store{
		accounts: map[string]*table[entity.Account]{
			entity.KindUser.Table:     newTable[entity.Account](),
			entity.KindCustomer.Table: newTable[entity.Account](),
		},
		categories: newTable[entity.Category](),
		products:   newTable[entity.Product](),
	}
}

// Accounts devuelve el repositorio del tipo de cuenta indicado.
func (s *Store) Accounts(kind entity.AccountKind) *AccountRepo {
	return &AccountRepo{s: s, kind: kind}
}

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo {
	return &CategoryRepo{s: s}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo {
	return &ProductRepo{s: s}
}

// RunAccounts ejecuta fn con el lock tomado: consulta y alta son atómicas.
func (s *Store) RunAccounts(_ context.Context, kind entity.AccountKind, fn func(repo repository.AccountRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&AccountRepo{s: s, kind: kind, locked: true})
}

// RunCatalog ejecuta fn con el lock tomado: categorías y productos se leen sobre el mismo estado.
func (s *Store) RunCatalog(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&CategoryRepo{s: s, locked: true}, &ProductRepo{s: s, locked: true})
}

// lock toma el mutex salvo que el repo ya corra dentro de Run*.
func (s *Store) lock(locked bool) func() {
	if locked {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
