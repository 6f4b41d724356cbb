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

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, name, email, password_hash, registered_at, active`

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable con pool o tx).
// La tabla sale del AccountKind: users o customers.
type AccountRepo struct {
	q     Querier
	kind  entity.AccountKind
	table string
}

// NewAccountRepository construye el adaptador para el tipo de cuenta indicado. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier, kind entity.AccountKind) *AccountRepo {
	return &AccountRepo{q: q, kind: kind, table: pgx.Identifier{kind.Table}.Sanitize()}
}

// Add persiste una nueva cuenta y devuelve la entidad con el id generado.
// El índice único parcial (email WHERE active) es la fuente de verdad de la unicidad.
func (r *AccountRepo) Add(ctx context.Context, acc *entity.Account) (*entity.Account, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, password_hash, registered_at, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, r.table)
	err := r.q.QueryRow(ctx, query, acc.Name, acc.Email, acc.PasswordHash, acc.RegisteredAt, acc.Active).Scan(&acc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert %s: %w", r.kind.Name, err)
	}
	acc.Kind = r.kind
	return acc, nil
}

// GetByID obtiene una cuenta por id, activa o no.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, accountColumns, r.table)
	acc, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", r.kind.Name, err)
	}
	return acc, nil
}

// GetByEmail obtiene la cuenta activa con ese email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = $1 AND active LIMIT 1`, accountColumns, r.table)
	acc, err := r.scanOne(r.q.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("get %s by email: %w", r.kind.Name, err)
	}
	return acc, nil
}

// GetAll lista las cuentas activas ordenadas por id.
func (r *AccountRepo) GetAll(ctx context.Context) ([]*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE active ORDER BY id`, accountColumns, r.table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind.Table, err)
	}
	defer rows.Close()
	list := make([]*entity.Account, 0)
	for rows.Next() {
		acc := entity.Account{Kind: r.kind}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.RegisteredAt, &acc.Active); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.kind.Name, err)
		}
		list = append(list, &acc)
	}
	return list, rows.Err()
}

// Update persiste nombre y email. Devuelve (nil, nil) si el id no existe.
func (r *AccountRepo) Update(ctx context.Context, acc *entity.Account) (*entity.Account, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $2, email = $3
		WHERE id = $1
		RETURNING %s`, r.table, accountColumns)
	updated, err := r.scanOne(r.q.QueryRow(ctx, query, acc.ID, acc.Name, acc.Email))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update %s: %w", r.kind.Name, err)
	}
	return updated, nil
}

// UpdatePassword reemplaza el hash de la contraseña. false si el id no existe.
func (r *AccountRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	query := fmt.Sprintf(`UPDATE %s SET password_hash = $2 WHERE id = $1`, r.table)
	cmd, err := r.q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return false, fmt.Errorf("update %s password: %w", r.kind.Name, err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Remove desactiva la cuenta (active = false) y devuelve el registro actualizado.
func (r *AccountRepo) Remove(ctx context.Context, id int64) (*entity.Account, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET active = FALSE
		WHERE id = $1
		RETURNING %s`, r.table, accountColumns)
	acc, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("deactivate %s: %w", r.kind.Name, err)
	}
	return acc, nil
}

// scanOne lee una fila; pgx.ErrNoRows se traduce a (nil, nil).
func (r *AccountRepo) scanOne(row pgx.Row) (*entity.Account, error) {
	acc := entity.Account{Kind: r.kind}
	err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.RegisteredAt, &acc.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}
