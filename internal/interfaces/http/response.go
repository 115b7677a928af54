package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/domain"
)

// LocalError guarda en c.Locals el error devuelto al cliente (lo lee el logger de peticiones).
const LocalError = "error"

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// statusFor traduce el código de dominio a estado HTTP.
func statusFor(code string) int {
	switch code {
	case domain.CodeInsufficientStock, domain.CodeCreditLimitExceeded, domain.CodeAmountExceedsBalance:
		return fiber.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return fiber.StatusNotFound
	case domain.CodeConflict:
		return fiber.StatusConflict
	case domain.CodePINInvalid:
		return fiber.StatusForbidden
	case domain.CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// errorField identifica el producto o cliente al que se refiere el error.
func errorField(err error) string {
	var (
		stockErr    *domain.StockError
		limitErr    *domain.CreditLimitError
		notFoundErr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &stockErr):
		return stockErr.ProductID
	case errors.As(err, &limitErr):
		return limitErr.CustomerID
	case errors.As(err, &notFoundErr):
		return notFoundErr.ID
	}
	return ""
}

// writeError responde con dto.ErrorResponse según el código del error.
func writeError(c *fiber.Ctx, err error) error {
	c.Locals(LocalError, err)
	code := domain.Code(err)
	return c.Status(statusFor(code)).JSON(dto.ErrorResponse{
		Code:    code,
		Message: err.Error(),
		Field:   errorField(err),
	})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// bind parsea el cuerpo JSON y valida las etiquetas `validate`.
// Devuelve false si ya respondió con 400.
func bind(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    domain.CodeValidation,
				Message: validationMessage(e),
				Field:   e.Field(),
			})
		}
		return false, badRequest(c, domain.CodeValidation, err.Error())
	}
	return true, nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo requerido"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "gte":
		return "debe ser mayor o igual que " + e.Param()
	case "numeric":
		return "debe ser numérico"
	default:
		return "valor inválido"
	}
}

// queryDate lee un parámetro YYYY-MM-DD en hora local. Vacío = nil.
func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// endOfDay lleva t al último instante de su día.
func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	e := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &e
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
