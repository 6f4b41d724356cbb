package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// La categoría se carga con LEFT JOIN; c.* puede venir NULL si la fila se borró físicamente.
const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.image_url, p.active,
	       c.id, c.name, c.description, c.active
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Add persiste un producto y lo relee con su categoría.
func (r *ProductRepo) Add(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category_id, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, p.CategoryID, nullIfEmpty(p.ImageURL), p.Active,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewValidationError("category_id", "La categoría no existe.")
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return r.get(ctx, p.ID, false)
}

// GetByID obtiene un producto activo por id.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

// GetAll lista los productos activos ordenados por id.
func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` WHERE p.active ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update persiste los campos editables. (nil, nil) si no existe o está inactivo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category_id = $6, image_url = $7
		WHERE id = $1 AND active`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, nullIfEmpty(p.ImageURL),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewValidationError("category_id", "La categoría no existe.")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.get(ctx, p.ID, true)
}

// Remove desactiva el producto. (nil, nil) si no existe o ya estaba inactivo.
func (r *ProductRepo) Remove(ctx context.Context, id int64) (*entity.Product, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return nil, fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.get(ctx, id, false)
}

func (r *ProductRepo) get(ctx context.Context, id int64, onlyActive bool) (*entity.Product, error) {
	query := productSelect + ` WHERE p.id = $1`
	if onlyActive {
		query += ` AND p.active`
	}
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p        entity.Product
		imageURL *string
		catID    *int64
		catName  *string
		catDesc  *string
		catAct   *bool
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &imageURL, &p.Active,
		&catID, &catName, &catDesc, &catAct,
	)
	if err != nil {
		return nil, err
	}
	if imageURL != nil {
		p.ImageURL = *imageURL
	}
	if catID != nil {
		p.Category = &entity.Category{ID: *catID, Name: deref(catName), Description: deref(catDesc), Active: catAct != nil && *catAct}
	}
	return &p, nil
}
