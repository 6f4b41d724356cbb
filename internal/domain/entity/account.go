package entity

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/validation"
)

// AccountKind identifica una de las dos encarnaciones de titular de cuenta.
// Comparten reglas y persistencia; difieren en tabla y en la etiqueta de mensajes.
type AccountKind struct {
	Name  string // user, customer
	Label string // usuario, cliente
	Table string
}

var (
	KindUser     = AccountKind{Name: "user", Label: "usuario", Table: "users"}
	KindCustomer = AccountKind{Name: "customer", Label: "cliente", Table: "customers"}
)

// Rules devuelve las reglas de validación con la etiqueta de este tipo.
func (k AccountKind) Rules() validation.AccountRules {
	return validation.NewAccountRules(k.Label)
}

// Account es un titular de cuenta (usuario o cliente). Nunca se borra físicamente:
// Deactivate pone Active en false.
type Account struct {
	ID           int64
	Kind         AccountKind
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca la contraseña plana
	RegisteredAt time.Time
	Active       bool
}

// NewAccount construye una cuenta válida. La contraseña ya debe venir hasheada;
// la regla de complejidad se aplica antes, sobre el texto plano.
func NewAccount(kind AccountKind, name, email, passwordHash string) (*Account, error) {
	if err := kind.Rules().ValidateUpdate(name, email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password", "La contraseña es obligatoria.")
	}
	return &Account{
		Kind:         kind,
		Name:         validation.NormalizeName(name),
		Email:        email,
		PasswordHash: passwordHash,
		RegisteredAt: time.Now().UTC(),
		Active:       true,
	}, nil
}

// Rename reemplaza nombre y email tras validarlos. La contraseña no cambia.
func (a *Account) Rename(name, email string) error {
	if err := a.Kind.Rules().ValidateUpdate(name, email); err != nil {
		return err
	}
	a.Name = validation.NormalizeName(name)
	a.Email = email
	return nil
}

// ChangePassword reemplaza el hash de la contraseña.
func (a *Account) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return domain.NewValidationError("password", "La contraseña es obligatoria.")
	}
	a.PasswordHash = passwordHash
	return nil
}

// Deactivate marca la cuenta como inactiva (borrado lógico).
func (a *Account) Deactivate() {
	a.Active = false
}
