package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

func zezin() *dto.CreateAccountRequest {
	return &dto.CreateAccountRequest{Name: "Zezin", Email: "zezin@gmail.com", Password: "Password1!"}
}

func TestAccountUseCase_Register_Zezin(t *testing.T) {
	for _, kind := range []entity.AccountKind{entity.KindUser, entity.KindCustomer} {
		t.Run(kind.Name, func(t *testing.T) {
			fx := newAccountUC(kind)

			out, err := fx.uc.Register(context.Background(), zezin())
			require.NoError(t, err)
			assert.Equal(t, int64(1), out.ID)
			assert.Equal(t, "Zezin", out.Name)
			assert.Equal(t, "zezin@gmail.com", out.Email)
			assert.True(t, out.Active)
			assert.Equal(t, 1, fx.tx.calls, "el alta corre dentro de una transacción")

			stored := fx.stored(t, 1)
			assert.NotEqual(t, "Password1!", stored.PasswordHash, "la contraseña se guarda hasheada")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Password1!")))
		})
	}
}

func TestAccountUseCase_Register_SinTx(t *testing.T) {
	repo := memory.NewStore().Accounts(entity.KindUser)
	uc := usecase.NewAccountUseCase(entity.KindUser, repo, nil, zerolog.Nop())

	out, err := uc.Register(context.Background(), zezin())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

// El email duplicado se detecta antes de validar campos y Add nunca se invoca.
func TestAccountUseCase_Register_EmailDuplicado(t *testing.T) {
	fx := newAccountUC(entity.KindUser)
	_, err := fx.uc.Register(context.Background(), zezin())
	require.NoError(t, err)
	require.Equal(t, 1, fx.adds)

	dup := &dto.CreateAccountRequest{Name: "X", Email: "zezin@gmail.com", Password: "x"}
	_, err = fx.uc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, fx.adds, "Add no debe llamarse con email duplicado")
}

func TestAccountUseCase_Register_EmailDeCuentaInactivaSePuedeReusar(t *testing.T) {
	fx := newAccountUC(entity.KindCustomer)
	uc := fx.uc
	first, err := uc.Register(context.Background(), zezin())
	require.NoError(t, err)
	_, err = uc.Delete(context.Background(), first.ID)
	require.NoError(t, err)

	second, err := uc.Register(context.Background(), zezin())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestAccountUseCase_Register_Invalido(t *testing.T) {
	cases := map[string]*dto.CreateAccountRequest{
		"nil":                    nil,
		"nombre vacío":           {Name: "", Email: "a@b.com", Password: "Password1!"},
		"nombre corto":           {Name: "Zé", Email: "a@b.com", Password: "Password1!"},
		"nombre con números":     {Name: "Zezin2", Email: "a@b.com", Password: "Password1!"},
		"email vacío":            {Name: "Zezin", Email: "", Password: "Password1!"},
		"email inválido":         {Name: "Zezin", Email: "zezin.gmail.com", Password: "Password1!"},
		"password corta":         {Name: "Zezin", Email: "a@b.com", Password: "Pa1!"},
		"password sin especial":  {Name: "Zezin", Email: "a@b.com", Password: "Password1"},
		"password sin mayúscula": {Name: "Zezin", Email: "a@b.com", Password: "password1!"},
		"password de 80 bytes":   {Name: "Zezin", Email: "a@b.com", Password: "Password1!" + strings.Repeat("a", 70)},
		"nombre de 151":          {Name: strings.Repeat("z", 151), Email: "a@b.com", Password: "Password1!"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			fx := newAccountUC(entity.KindUser)
			_, err := fx.uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, fx.adds)
		})
	}
}

func TestAccountUseCase_NoEncontrado(t *testing.T) {
	fx := newAccountUC(entity.KindUser)
	uc, repo := fx.uc, fx.repo
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByEmail(ctx, "nadie@gmail.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, &dto.UpdateAccountRequest{Name: "Zezin", Email: "z@gmail.com"}, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err := uc.UpdatePassword(ctx, 999, "NovaSenha1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, ok)

	_, err = uc.Delete(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, id := range []int64{0, -1} {
		_, err = uc.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "id %d", id)
	}

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna operación debe mutar el estado")
}

func TestAccountUseCase_GetAll(t *testing.T) {
	fx := newAccountUC(entity.KindCustomer)
	uc := fx.uc
	ctx := context.Background()

	list, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list, "lista vacía no es error")

	_, err = uc.Register(ctx, zezin())
	require.NoError(t, err)
	_, err = uc.Register(ctx, &dto.CreateAccountRequest{Name: "Maria José", Email: "maria@gmail.com", Password: "Segura_2024"})
	require.NoError(t, err)

	list, err = uc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zezin", list[0].Name)
	assert.Equal(t, "Maria José", list[1].Name)
}

// Actualizar nombre/email no toca la contraseña.
func TestAccountUseCase_Update_ConservaPassword(t *testing.T) {
	fx := newAccountUC(entity.KindUser)
	uc := fx.uc
	ctx := context.Background()
	created, err := uc.Register(ctx, zezin())
	require.NoError(t, err)
	hashBefore := fx.stored(t, created.ID).PasswordHash

	out, err := uc.Update(ctx, &dto.UpdateAccountRequest{Name: "Zezin Souza", Email: "souza@gmail.com"}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zezin Souza", out.Name)
	assert.Equal(t, "souza@gmail.com", out.Email)
	assert.Equal(t, hashBefore, fx.stored(t, created.ID).PasswordHash)

	_, err = uc.Update(ctx, &dto.UpdateAccountRequest{Name: "Z1", Email: "souza@gmail.com"}, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Zezin Souza", fx.stored(t, created.ID).Name)
}

// El cambio de contraseña usa la regla débil: sin carácter especial también vale.
func TestAccountUseCase_UpdatePassword(t *testing.T) {
	fx := newAccountUC(entity.KindUser)
	uc := fx.uc
	ctx := context.Background()
	created, err := uc.Register(ctx, zezin())
	require.NoError(t, err)

	for _, pw := range []string{"NovaSenha1!", "NovaSenha1"} {
		ok, err := uc.UpdatePassword(ctx, created.ID, pw)
		require.NoError(t, err, pw)
		assert.True(t, ok)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(fx.stored(t, created.ID).PasswordHash), []byte(pw)))
	}

	for _, pw := range []string{"", "Nova1", "novasenha1", "NOVASENHA1", "NovaSenha", "NovaSenha1" + strings.Repeat("a", 70)} {
		ok, err := uc.UpdatePassword(ctx, created.ID, pw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, pw)
		assert.False(t, ok)
	}
}

func TestAccountUseCase_Delete_SoftDelete(t *testing.T) {
	fx := newAccountUC(entity.KindCustomer)
	uc := fx.uc
	ctx := context.Background()
	created, err := uc.Register(ctx, zezin())
	require.NoError(t, err)

	out, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.Equal(t, "Zezin", out.Name)

	// El registro sigue existiendo, inactivo.
	assert.False(t, fx.stored(t, created.ID).Active)
	list, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = uc.GetByEmail(ctx, "zezin@gmail.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byID, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, byID.Active)

	// Borrar de nuevo no falla: el efecto es el mismo.
	again, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, again.Active)
}

func TestAccountUseCase_Authenticate(t *testing.T) {
	fx := newAccountUC(entity.KindUser)
	uc := fx.uc
	ctx := context.Background()
	_, err := uc.Register(ctx, zezin())
	require.NoError(t, err)

	acc, err := uc.Authenticate(ctx, "zezin@gmail.com", "Password1!")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)

	_, err = uc.Authenticate(ctx, "zezin@gmail.com", "Otra1234!")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "nadie@gmail.com", "Password1!")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
