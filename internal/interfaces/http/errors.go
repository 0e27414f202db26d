package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
)

// mapDomainError traduce un error de dominio a status HTTP y cuerpo de error.
// Los errores de validación son 400, los de existencia 404, los de estado 409.
func mapDomainError(err error) (int, dto.ErrorResponse) {
	var invalidQty *domain.InvalidQuantityError
	if errors.As(err, &invalidQty) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()}
	}
	var notFound *domain.StoreNotFoundError
	if errors.As(err, &notFound) {
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: err.Error()}
	}
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()}
	}
	var notEmpty *domain.StoreNotEmptyError
	if errors.As(err, &notEmpty) {
		return fiber.StatusConflict, dto.ErrorResponse{Code: "STORE_NOT_EMPTY", Message: err.Error()}
	}
	var noCapacity *domain.NoCapacityError
	if errors.As(err, &noCapacity) {
		return fiber.StatusConflict, dto.ErrorResponse{Code: "NO_CAPACITY", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

// errorBody cuerpo de error para ítems de batch (sin status, el batch responde 200).
func errorBody(err error) *dto.ErrorResponse {
	_, body := mapDomainError(err)
	return &body
}
