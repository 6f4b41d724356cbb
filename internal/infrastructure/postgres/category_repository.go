package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Add persiste una nueva categoría y devuelve la entidad con el id generado.
func (r *CategoryRepo) Add(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	query := `
		INSERT INTO categories (name, description, active)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, c.Description, c.Active).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// GetByID obtiene una categoría activa por id.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT id, name, description, active FROM categories WHERE id = $1 AND active`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetAll lista las categorías activas ordenadas por id.
func (r *CategoryRepo) GetAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name, description, active FROM categories WHERE active ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update persiste nombre y descripción. (nil, nil) si no existe o está inactiva.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	query := `
		UPDATE categories SET name = $2, description = $3
		WHERE id = $1 AND active
		RETURNING id, name, description, active`
	updated, err := scanCategory(r.q.QueryRow(ctx, query, c.ID, c.Name, c.Description))
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

// Remove desactiva la categoría. (nil, nil) si no existe o ya estaba inactiva.
func (r *CategoryRepo) Remove(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		UPDATE categories SET active = FALSE
		WHERE id = $1 AND active
		RETURNING id, name, description, active`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("deactivate category: %w", err)
	}
	return c, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
