package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// AccountHandler maneja /api/users y /api/customers. La misma implementación
// sirve a ambos recursos; el AccountUseCase determina el tipo de cuenta.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar usuario o cliente
// @Tags         users, customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "name, email, password"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
// @Router       /api/customers [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cuentas activas
// @Tags         users, customers
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/users [get]
// @Router       /api/customers [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuenta por ID
// @Tags         users, customers
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
// @Router       /api/customers/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := accountID(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Obtener cuenta activa por email
// @Tags         users, customers
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200    {object}  dto.AccountResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/email/{email} [get]
// @Router       /api/customers/email/{email} [get]
func (h *AccountHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email es requerido"})
	}
	out, err := h.uc.GetByEmail(c.UserContext(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre y email
// @Tags         users, customers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.UpdateAccountRequest  true  "name, email"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
// @Router       /api/customers/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, ok, err := accountID(c)
	if !ok {
		return err
	}
	var in dto.UpdateAccountRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), &in, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña
// @Description  Acepta un string JSON ("NovaSenha1") o {"password": "..."}.
// @Tags         users, customers
// @Accept       json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.UpdatePasswordRequest  true  "Nueva contraseña"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/senha [patch]
// @Router       /api/customers/{id}/senha [patch]
func (h *AccountHandler) UpdatePassword(c *fiber.Ctx) error {
	id, ok, err := accountID(c)
	if !ok {
		return err
	}
	password, ok := parsePassword(c)
	if !ok {
		return invalidBody(c)
	}
	updated, err := h.uc.UpdatePassword(c.UserContext(), id, password)
	if err != nil {
		return writeError(c, err)
	}
	if !updated {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_UPDATED", Message: "no se pudo actualizar la contraseña"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Desactivar cuenta
// @Tags         users, customers
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
// @Router       /api/customers/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := accountID(c)
	if !ok {
		return err
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parsePassword acepta un string JSON o un objeto {"password": "..."}.
func parsePassword(c *fiber.Ctx) (string, bool) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return "", false
	}
	decode := c.App().Config().JSONDecoder
	if body[0] == '"' {
		var s string
		if err := decode(body, &s); err != nil {
			return "", false
		}
		return s, true
	}
	var in dto.UpdatePasswordRequest
	if err := decode(body, &in); err != nil {
		return "", false
	}
	return in.Password, true
}
