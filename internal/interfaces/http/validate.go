package http

import (
	"bytes"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON parsea el cuerpo y aplica las etiquetas validate del DTO.
// Responde 400 y devuelve false si algo falla; el handler debe retornar inmediatamente.
func bindJSON(c *fiber.Ctx, out any) (bool, error) {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return false, invalidBody(c)
	}
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if err := validate.Struct(out); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func validationFailed(c *fiber.Ctx, err error) error {
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "no puede superar " + fe.Param() + " caracteres"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	}
	return "valor inválido"
}

// paramID lee :id como entero positivo. Responde 400 si no lo es.
func paramID(c *fiber.Ctx) (int64, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	return int64(id), true, nil
}

// accountID lee :id como entero sin exigir que sea positivo: en cuentas un id
// que no existe (0 o negativo incluidos) es 404, no 400.
func accountID(c *fiber.Ctx) (int64, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	return int64(id), true, nil
}
