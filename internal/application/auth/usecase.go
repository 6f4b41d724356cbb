package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Authenticator verifica credenciales de una cuenta activa.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.Account, error)
}

// AuthUseCase login de usuarios. El registro reutiliza AccountUseCase(KindUser).
type AuthUseCase struct {
	users  Authenticator
	jwtCfg JWTConfig
	log    zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users Authenticator, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log.With().Str("component", "auth_usecase").Logger()}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("credentials", "Email y contraseña son obligatorios.")
	}
	acc, err := uc.users.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		uc.log.Warn().Str("email", in.Email).Msg("login fallido")
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.ID, acc.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", acc.ID).Str("jti", token.ID).Msg("login")
	return &dto.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      *usecase.ToAccountResponse(acc),
	}, nil
}
