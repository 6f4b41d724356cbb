package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AccountUseCase casos de uso de titulares de cuenta. Una instancia por AccountKind
// (usuarios y clientes comparten reglas y flujo).
type AccountUseCase struct {
	kind entity.AccountKind
	repo repository.AccountRepository
	tx   AccountTxRunner
	log  zerolog.Logger
}

// NewAccountUseCase construye el caso de uso. tx puede ser nil: el alta corre entonces sin transacción.
func NewAccountUseCase(kind entity.AccountKind, repo repository.AccountRepository, tx AccountTxRunner, log zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		kind: kind,
		repo: repo,
		tx:   tx,
		log:  log.With().Str("component", kind.Name+"_usecase").Logger(),
	}
}

// Kind devuelve el tipo de cuenta que atiende este caso de uso.
func (uc *AccountUseCase) Kind() entity.AccountKind {
	return uc.kind
}

// Register da de alta una cuenta. El email duplicado se detecta antes de validar
// los campos; el índice único de la base cubre la carrera entre la consulta y el INSERT.
func (uc *AccountUseCase) Register(ctx context.Context, in *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in == nil {
		return nil, domain.NewValidationError("body", "Los datos del "+uc.kind.Label+" son obligatorios.")
	}
	var created *entity.Account
	err := uc.withRepo(ctx, func(repo repository.AccountRepository) error {
		existing, err := repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := uc.kind.Rules().ValidateCreate(in.Name, in.Email, in.Password); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		acc, err := entity.NewAccount(uc.kind, in.Name, in.Email, string(hash))
		if err != nil {
			return err
		}
		created, err = repo.Add(ctx, acc)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) || errors.Is(err, domain.ErrInvalidInput) {
			uc.log.Debug().Err(err).Str("email", in.Email).Msg("alta rechazada")
		}
		return nil, err
	}
	uc.log.Info().Int64("id", created.ID).Msg(uc.kind.Name + " registrado")
	return toAccountResponse(created), nil
}

// GetByID obtiene una cuenta por id (activa o no).
func (uc *AccountUseCase) GetByID(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	acc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(acc), nil
}

// GetByEmail obtiene la cuenta activa con ese email.
func (uc *AccountUseCase) GetByEmail(ctx context.Context, email string) (*dto.AccountResponse, error) {
	acc, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(acc), nil
}

// GetAll lista las cuentas activas. Una lista vacía no es error.
func (uc *AccountUseCase) GetAll(ctx context.Context) ([]*dto.AccountResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, toAccountResponse(acc))
	}
	return out, nil
}

// Update cambia nombre y email; la contraseña se conserva.
func (uc *AccountUseCase) Update(ctx context.Context, in *dto.UpdateAccountRequest, id int64) (*dto.AccountResponse, error) {
	if in == nil {
		return nil, domain.NewValidationError("body", "Los datos del "+uc.kind.Label+" son obligatorios.")
	}
	acc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	if err := acc.Rename(in.Name, in.Email); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, acc)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Int64("id", id).Msg(uc.kind.Name + " actualizado")
	return toAccountResponse(updated), nil
}

// UpdatePassword aplica la regla de cambio de contraseña y guarda el nuevo hash.
// Devuelve el resultado del repositorio (false si no se actualizó ninguna fila).
func (uc *AccountUseCase) UpdatePassword(ctx context.Context, id int64, newPassword string) (bool, error) {
	acc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if acc == nil {
		return false, domain.ErrNotFound
	}
	if err := uc.kind.Rules().ValidatePasswordChange(newPassword); err != nil {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	ok, err := uc.repo.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		return false, err
	}
	if ok {
		uc.log.Info().Int64("id", id).Msg("contraseña actualizada")
	}
	return ok, nil
}

// Delete desactiva la cuenta y devuelve su estado final.
func (uc *AccountUseCase) Delete(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	acc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	removed, err := uc.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Int64("id", id).Msg(uc.kind.Name + " desactivado")
	return toAccountResponse(removed), nil
}

// Authenticate devuelve la cuenta activa si email y contraseña coinciden; si no, ErrUnauthorized.
func (uc *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*entity.Account, error) {
	acc, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return acc, nil
}

func (uc *AccountUseCase) withRepo(ctx context.Context, fn func(repo repository.AccountRepository) error) error {
	if uc.tx == nil {
		return fn(uc.repo)
	}
	return uc.tx.RunAccounts(ctx, uc.kind, fn)
}

// ToAccountResponse convierte la entidad en la salida pública (sin hash).
func ToAccountResponse(acc *entity.Account) *dto.AccountResponse {
	return toAccountResponse(acc)
}

func toAccountResponse(acc *entity.Account) *dto.AccountResponse {
	if acc == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:           acc.ID,
		Name:         acc.Name,
		Email:        acc.Email,
		RegisteredAt: acc.RegisteredAt,
		Active:       acc.Active,
	}
}
