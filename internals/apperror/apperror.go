// Package apperror carries domain errors together with the HTTP status they
// map to, so services can fail with one value and controllers translate it
// without switch-on-string code.
package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeIllegalState       = "ILLEGAL_STATE"
	CodePriceNotConfigured = "PRICE_NOT_CONFIGURED"
	CodeBadRequest         = "BAD_REQUEST"
)

type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is lets errors.Is match two apperror values by code, so sentinel-style
// comparisons work even when messages differ.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, CodeNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, CodeConflict, message)
}

func IllegalState(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, CodeIllegalState, message)
}

func PriceNotConfigured(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, CodePriceNotConfigured, message)
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, CodeBadRequest, message)
}

// CodeOf returns the app error code, or "" for foreign errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ToFiber maps any error to a *fiber.Error for the controller layer.
func ToFiber(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return fiber.NewError(e.Status, e.Message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
