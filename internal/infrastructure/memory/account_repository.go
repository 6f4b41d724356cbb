package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo cuentas de un AccountKind.
type AccountRepo struct {
	s      *Store
	kind   entity.AccountKind
	locked bool
}

func (r *AccountRepo) table() *table[entity.Account] {
	return r.s.accounts[r.kind.Table]
}

func (r *AccountRepo) Add(_ context.Context, a *entity.Account) (*entity.Account, error) {
	defer r.s.lock(r.locked)()
	t := r.table()
	if a.Active {
		for _, row := range t.rows {
			if row.Active && row.Email == a.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
	}
	a.Kind = r.kind
	a.ID = t.insert(*a)
	t.rows[a.ID] = *a
	out := *a
	return &out, nil
}

func (r *AccountRepo) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	defer r.s.lock(r.locked)()
	row, ok := r.table().rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	defer r.s.lock(r.locked)()
	for _, row := range r.table().rows {
		if row.Active && row.Email == email {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) GetAll(_ context.Context) ([]*entity.Account, error) {
	defer r.s.lock(r.locked)()
	out := make([]*entity.Account, 0)
	for _, row := range r.table().rows {
		if row.Active {
			cp := row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepo) Update(_ context.Context, a *entity.Account) (*entity.Account, error) {
	defer r.s.lock(r.locked)()
	t := r.table()
	cur, ok := t.rows[a.ID]
	if !ok {
		return nil, nil
	}
	if cur.Active {
		for id, row := range t.rows {
			if id != a.ID && row.Active && row.Email == a.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
	}
	cur.Name = a.Name
	cur.Email = a.Email
	t.rows[a.ID] = cur
	return &cur, nil
}

func (r *AccountRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) (bool, error) {
	defer r.s.lock(r.locked)()
	t := r.table()
	cur, ok := t.rows[id]
	if !ok {
		return false, nil
	}
	cur.PasswordHash = passwordHash
	t.rows[id] = cur
	return true, nil
}

func (r *AccountRepo) Remove(_ context.Context, id int64) (*entity.Account, error) {
	defer r.s.lock(r.locked)()
	t := r.table()
	cur, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	cur.Active = false
	t.rows[id] = cur
	return &cur, nil
}
