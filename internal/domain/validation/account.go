// Package validation concentra las reglas de entrada de los titulares de cuenta
// (usuarios y clientes). Ambos comparten las mismas reglas; sólo cambia la
// etiqueta usada en los mensajes.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	MinNameLength     = 3
	MaxNameLength     = 150
	MaxEmailLength    = 150
	MinPasswordLength = 8
	MaxPasswordBytes  = 72 // límite de bcrypt
)

var (
	// Espacios: ASCII, NEL y cualquier separador Unicode (NBSP incluido).
	nameRegex  = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s\x{85}\p{Z}]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// AccountRules valida nombre, email y contraseña de un titular de cuenta.
// Label se usa en los mensajes ("usuario", "cliente").
type AccountRules struct {
	Label string
}

// NewAccountRules construye las reglas para la etiqueta indicada.
func NewAccountRules(label string) AccountRules {
	return AccountRules{Label: label}
}

// NormalizeName devuelve el nombre en forma NFC: "José" escrito con acento
// combinante pasa a ser el mismo rune que el precompuesto.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// ValidateName: obligatorio, mínimo 3 caracteres, sólo letras (con diacríticos) y espacios.
func (r AccountRules) ValidateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "El nombre del "+r.Label+" es obligatorio.")
	}
	name = NormalizeName(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return domain.NewValidationError("name", "El nombre debe tener al menos 3 caracteres.")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return domain.NewValidationError("name", "El nombre no puede superar 150 caracteres.")
	}
	if !nameRegex.MatchString(name) {
		return domain.NewValidationError("name", "Nombre inválido. El nombre no puede contener números ni caracteres especiales.")
	}
	return nil
}

// ValidateEmail: obligatorio y con forma usuario@dominio.tld.
func (r AccountRules) ValidateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email", "El email del "+r.Label+" es obligatorio.")
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return domain.NewValidationError("email", "El email no puede superar 150 caracteres.")
	}
	if !emailRegex.MatchString(email) {
		return domain.NewValidationError("email", "El email es inválido.")
	}
	return nil
}

// ValidatePassword aplica la regla de alta: al menos 8 caracteres, una mayúscula,
// un dígito y un carácter especial.
func (r AccountRules) ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" || utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.NewValidationError("password", "La contraseña debe tener al menos 8 caracteres.")
	}
	if len(password) > MaxPasswordBytes {
		return domain.NewValidationError("password", "La contraseña no puede superar 72 bytes.")
	}
	var upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case unicode.IsDigit(c):
			digit = true
		}
		if c == '_' || !(unicode.IsLetter(c) || unicode.IsDigit(c)) {
			special = true
		}
	}
	if !upper || !digit || !special {
		return domain.NewValidationError("password", "La contraseña debe contener una letra mayúscula, un número y un carácter especial.")
	}
	return nil
}

// ValidatePasswordChange aplica la regla del cambio de contraseña: al menos 8
// caracteres con minúscula, mayúscula y dígito. No exige carácter especial,
// a diferencia de ValidatePassword.
func (r AccountRules) ValidatePasswordChange(password string) error {
	if strings.TrimSpace(password) == "" || utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.NewValidationError("password", "La contraseña debe tener al menos 8 caracteres.")
	}
	if len(password) > MaxPasswordBytes {
		return domain.NewValidationError("password", "La contraseña no puede superar 72 bytes.")
	}
	var lower, upper, digit bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case unicode.IsDigit(c):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return domain.NewValidationError("password", "La contraseña debe contener al menos una letra minúscula, una mayúscula y un número.")
	}
	return nil
}

// ValidateCreate valida un alta completa en el orden nombre, email, contraseña.
func (r AccountRules) ValidateCreate(name, email, password string) error {
	if err := r.ValidateName(name); err != nil {
		return err
	}
	if err := r.ValidateEmail(email); err != nil {
		return err
	}
	return r.ValidatePassword(password)
}

// ValidateUpdate valida nombre y email; la contraseña tiene su propia operación.
func (r AccountRules) ValidateUpdate(name, email string) error {
	if err := r.ValidateName(name); err != nil {
		return err
	}
	return r.ValidateEmail(email)
}
