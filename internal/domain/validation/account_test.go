package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/validation"
)

func TestValidateName(t *testing.T) {
	rules := validation.NewAccountRules("usuario")

	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"simple", "Zezin", true},
		{"con espacios", "Maria da Silva", true},
		{"con diacríticos", "João Ávila", true},
		{"diacrítico combinante", "José", true},
		{"espacio no separable", "Ana\u00a0Paula", true},
		{"150 caracteres", strings.Repeat("a", 150), true},
		{"151 caracteres", strings.Repeat("a", 151), false},
		{"vacío", "", false},
		{"corto", "Jo", false},
		{"con números", "Zezin2", false},
		{"con especiales", "Ze@zin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rules.ValidateName(tc.input)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestValidateName_MensajeUsaEtiqueta(t *testing.T) {
	err := validation.NewAccountRules("cliente").ValidateName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cliente")

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)
}

func TestValidateEmail(t *testing.T) {
	rules := validation.NewAccountRules("usuario")

	assert.NoError(t, rules.ValidateEmail("zezin@gmail.com"))
	assert.NoError(t, rules.ValidateEmail("ze.zin+tag@mail.example.com"))
	assert.Error(t, rules.ValidateEmail(""))
	assert.Error(t, rules.ValidateEmail("zezin"))
	assert.Error(t, rules.ValidateEmail("zezin@gmail"))
	assert.Error(t, rules.ValidateEmail("ze zin@gmail.com"))
	assert.Error(t, rules.ValidateEmail(strings.Repeat("a", 141)+"@gmail.com"), "más de 150 caracteres")
}

func TestValidatePassword_Alta(t *testing.T) {
	rules := validation.NewAccountRules("usuario")

	assert.NoError(t, rules.ValidatePassword("Password1!"))
	assert.NoError(t, rules.ValidatePassword("NovaSenha1!"))
	assert.NoError(t, rules.ValidatePassword("SENHA_123"), "el guion bajo cuenta como carácter especial")

	assert.Error(t, rules.ValidatePassword(""))
	assert.Error(t, rules.ValidatePassword("Pa1!"), "menos de 8 caracteres")
	assert.Error(t, rules.ValidatePassword("NovaSenha1"), "sin carácter especial")
	assert.Error(t, rules.ValidatePassword("password1!"), "sin mayúscula")
	assert.Error(t, rules.ValidatePassword("Password!!"), "sin dígito")
}

func TestValidatePasswordChange_ReglaMasDebil(t *testing.T) {
	rules := validation.NewAccountRules("usuario")

	assert.NoError(t, rules.ValidatePasswordChange("NovaSenha1!"))
	assert.NoError(t, rules.ValidatePasswordChange("NovaSenha1"), "el cambio no exige carácter especial")

	assert.Error(t, rules.ValidatePasswordChange("   "))
	assert.Error(t, rules.ValidatePasswordChange("Nova1"))
	assert.Error(t, rules.ValidatePasswordChange("novasenha1"), "sin mayúscula")
	assert.Error(t, rules.ValidatePasswordChange("NOVASENHA1"), "sin minúscula")
	assert.Error(t, rules.ValidatePasswordChange("NovaSenha!"), "sin dígito")
}

func TestValidateCreate_OrdenDeReglas(t *testing.T) {
	rules := validation.NewAccountRules("usuario")

	// Nombre y email inválidos a la vez: gana el nombre.
	err := rules.ValidateCreate("Z", "no-es-email", "x")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)

	err = rules.ValidateCreate("Zezin", "no-es-email", "x")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "email", vErr.Field)

	err = rules.ValidateCreate("Zezin", "zezin@gmail.com", "x")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "password", vErr.Field)

	assert.NoError(t, rules.ValidateCreate("Zezin", "zezin@gmail.com", "Password1!"))
}

// bcrypt rechaza más de 72 bytes: ambas reglas lo devuelven como error de validación.
func TestValidatePassword_LimiteDeBcrypt(t *testing.T) {
	rules := validation.NewAccountRules("usuario")
	at72 := "Password1!" + strings.Repeat("a", 62)
	over := "Password1!" + strings.Repeat("a", 70)
	require.Len(t, at72, 72)

	assert.NoError(t, rules.ValidatePassword(at72))
	assert.NoError(t, rules.ValidatePasswordChange(at72))

	for name, validate := range map[string]func(string) error{
		"alta":   rules.ValidatePassword,
		"cambio": rules.ValidatePasswordChange,
	} {
		t.Run(name, func(t *testing.T) {
			err := validate(over)
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "password", vErr.Field)
		})
	}

	// Runas multibyte: el límite es en bytes, no en caracteres.
	assert.Error(t, rules.ValidatePassword("Señá1!"+strings.Repeat("ñ", 35)))
}
