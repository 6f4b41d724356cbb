package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	s      *Store
	locked bool
}

func (r *CategoryRepo) Add(_ context.Context, c *entity.Category) (*entity.Category, error) {
	defer r.s.lock(r.locked)()
	c.ID = r.s.categories.insert(*c)
	r.s.categories.rows[c.ID] = *c
	out := *c
	return &out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	defer r.s.lock(r.locked)()
	row, ok := r.s.categories.rows[id]
	if !ok || !row.Active {
		return nil, nil
	}
	return &row, nil
}

func (r *CategoryRepo) GetAll(_ context.Context) ([]*entity.Category, error) {
	defer r.s.lock(r.locked)()
	out := make([]*entity.Category, 0)
	for _, row := range r.s.categories.rows {
		if row.Active {
			cp := row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	defer r.s.lock(r.locked)()
	cur, ok := r.s.categories.rows[c.ID]
	if !ok || !cur.Active {
		return nil, nil
	}
	cur.Name = c.Name
	cur.Description = c.Description
	r.s.categories.rows[c.ID] = cur
	return &cur, nil
}

func (r *CategoryRepo) Remove(_ context.Context, id int64) (*entity.Category, error) {
	defer r.s.lock(r.locked)()
	cur, ok := r.s.categories.rows[id]
	if !ok || !cur.Active {
		return nil, nil
	}
	cur.Active = false
	r.s.categories.rows[id] = cur
	return &cur, nil
}

// ProductRepo productos en memoria; la categoría se adjunta en cada lectura.
type ProductRepo struct {
	s      *Store
	locked bool
}

func (r *ProductRepo) withCategory(p entity.Product) *entity.Product {
	p.Category = nil
	if c, ok := r.s.categories.rows[p.CategoryID]; ok {
		p.Category = &c
	}
	return &p
}

func (r *ProductRepo) checkCategory(id int64) error {
	if _, ok := r.s.categories.rows[id]; !ok {
		return domain.NewValidationError("category_id", "La categoría no existe.")
	}
	return nil
}

func (r *ProductRepo) Add(_ context.Context, p *entity.Product) (*entity.Product, error) {
	defer r.s.lock(r.locked)()
	if err := r.checkCategory(p.CategoryID); err != nil {
		return nil, err
	}
	row := *p
	row.Category = nil
	p.ID = r.s.products.insert(row)
	row.ID = p.ID
	r.s.products.rows[p.ID] = row
	return r.withCategory(row), nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.s.lock(r.locked)()
	row, ok := r.s.products.rows[id]
	if !ok || !row.Active {
		return nil, nil
	}
	return r.withCategory(row), nil
}

func (r *ProductRepo) GetAll(_ context.Context) ([]*entity.Product, error) {
	defer r.s.lock(r.locked)()
	out := make([]*entity.Product, 0)
	for _, row := range r.s.products.rows {
		if row.Active {
			out = append(out, r.withCategory(row))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	defer r.s.lock(r.locked)()
	cur, ok := r.s.products.rows[p.ID]
	if !ok || !cur.Active {
		return nil, nil
	}
	if err := r.checkCategory(p.CategoryID); err != nil {
		return nil, err
	}
	row := *p
	row.Active = cur.Active
	row.Category = nil
	r.s.products.rows[p.ID] = row
	return r.withCategory(row), nil
}

func (r *ProductRepo) Remove(_ context.Context, id int64) (*entity.Product, error) {
	defer r.s.lock(r.locked)()
	cur, ok := r.s.products.rows[id]
	if !ok || !cur.Active {
		return nil, nil
	}
	cur.Active = false
	r.s.products.rows[id] = cur
	return r.withCategory(cur), nil
}
