package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgercore/ledger-core/common"
)

// ResponseError is a struct used to return errors to the client.
type ResponseError struct {
	Code    int    `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the message of the ResponseError.
//
// No parameters.
// Returns a string.
func (r ResponseError) Error() string {
	return r.Message
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string           `json:"entityType,omitempty"`
	Title      string           `json:"title,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Fields     FieldValidations `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
//
// No parameters.
// Returns a string.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// FieldValidations is a map of known fields and their validation errors.
type FieldValidations map[string]string

// ValidationUnknownFieldsError records an error that occurred during a validation of unknown fields.
type ValidationUnknownFieldsError struct {
	EntityType string        `json:"entityType,omitempty"`
	Title      string        `json:"title,omitempty"`
	Code       string        `json:"code,omitempty"`
	Message    string        `json:"message,omitempty"`
	Fields     UnknownFields `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationUnknownFieldsError.
//
// No parameters.
// Returns a string.
func (r ValidationUnknownFieldsError) Error() string {
	return r.Message
}

// UnknownFields is a map of unknown fields and their error messages.
type UnknownFields map[string]any

// WithError returns an error with the given status code and message.
func WithError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case common.EntityNotFoundError:
		return NotFound(c, e.Code, e.Title, e.Message)
	case common.EntityConflictError:
		return Conflict(c, e.Code, e.Title, e.Message)
	case common.ValidationError:
		return BadRequest(c, ValidationKnownFieldsError{
			Code:    e.Code,
			Title:   e.Title,
			Message: e.Message,
			Fields:  nil,
		})
	case common.UnprocessableOperationError:
		return UnprocessableEntity(c, e.Code, e.Title, e.Message)
	case common.UnauthorizedError:
		return Unauthorized(c, e.Code, e.Title, e.Message)
	case common.ForbiddenError:
		return Forbidden(c, e.Code, e.Title, e.Message)
	case *ValidationKnownFieldsError, ValidationKnownFieldsError:
		return BadRequest(c, e)
	case ResponseError:
		var rErr ResponseError
		_ = errors.As(err, &rErr)

		return JSONResponseError(c, rErr)
	default:
		var iErr common.InternalServerError
		_ = errors.As(common.ValidateInternalError(err, ""), &iErr)

		return InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}

// OK writes a 200 response with body as the JSON payload.
func OK(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// Created writes a 201 response with body as the JSON payload.
func Created(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}

// NoContent writes a 204 response with an empty body.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// TooManyRequests writes a 429 response, used by the rate limiter middleware.
func TooManyRequests(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusTooManyRequests, code, title, message)
}

// ServiceUnavailable writes a 503 response, used when a collaborator the
// request strictly depends on (fail-closed rate limiting) is unreachable.
func ServiceUnavailable(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusServiceUnavailable, code, title, message)
}

func jsonStatus(c *fiber.Ctx, status int, code, title, message string) error {
	return c.Status(status).JSON(ResponseError{
		Code:    status,
		Title:   title,
		Message: message,
	})
}

// NotFound writes a 404 response.
func NotFound(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusNotFound, code, title, message)
}

// Conflict writes a 409 response.
func Conflict(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusConflict, code, title, message)
}

// BadRequest writes a 400 response carrying a field-level validation payload.
func BadRequest(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// UnprocessableEntity writes a 422 response for a syntactically valid request that
// violates a ledger business rule.
func UnprocessableEntity(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusUnprocessableEntity, code, title, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusUnauthorized, code, title, message)
}

// Forbidden writes a 403 response.
func Forbidden(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusForbidden, code, title, message)
}

// InternalServerError writes a 500 response. The message must already be client-safe.
func InternalServerError(c *fiber.Ctx, code, title, message string) error {
	return jsonStatus(c, fiber.StatusInternalServerError, code, title, message)
}

// JSONResponseError writes a raw ResponseError with its own status code.
func JSONResponseError(c *fiber.Ctx, err ResponseError) error {
	status := err.Code
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(err)
}
