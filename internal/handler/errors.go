package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/pool"
	"github.com/nulln0ne/amm-quoter/internal/service"
	"github.com/nulln0ne/amm-quoter/pkg/cpmm"
)

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrInvalidBody indicates that the request body could not be parsed into the
// expected structure.
var ErrInvalidBody = fiber.NewError(fiber.StatusBadRequest, "invalid request body")

// ErrSameTokens is returned when src and dst tokens are identical.
var ErrSameTokens = fiber.NewError(fiber.StatusBadRequest, "src and dst tokens cannot be the same")

// ErrAmountRequired is returned when an amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrInvalidAmountFormat is returned when an amount cannot be parsed as a
// non-negative base-10 integer.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount format")

// ErrAmountZero is returned when an amount that must be positive is zero.
var ErrAmountZero = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrInvalidPoolID is returned when a pool ID cannot be parsed.
var ErrInvalidPoolID = fiber.NewError(fiber.StatusBadRequest, "invalid pool id")

// ErrPoolNotFound maps a missing pool to a 404.
var ErrPoolNotFound = fiber.NewError(fiber.StatusNotFound, "pool not found")

// ErrPoolExists maps a duplicate token pair to a 409.
var ErrPoolExists = fiber.NewError(fiber.StatusConflict, "pool already exists for token pair")

// ErrEmptyReservesBadRequest maps empty-reserve pool state to a 400 error.
var ErrEmptyReservesBadRequest = fiber.NewError(fiber.StatusBadRequest, "pool has insufficient reserves")

// ErrChainUnavailable is returned when pair import is requested without a
// configured RPC endpoint.
var ErrChainUnavailable = fiber.NewError(fiber.StatusServiceUnavailable, "chain access is not configured")

// ErrInternal signals a generic server-side failure.
var ErrInternal = fiber.NewError(fiber.StatusInternalServerError, "operation failed")

// NewFieldRequired returns a 400 Bad Request for a missing field.
func NewFieldRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}

// NewUnprocessable returns a 422 carrying the domain error's message.
func NewUnprocessable(err error) error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
}

// mapDomainError translates service, pool and math-core errors to HTTP
// errors. Anything unrecognized maps to ErrInternal; the caller logs it.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, pool.ErrNotFound):
		return ErrPoolNotFound
	case errors.Is(err, pool.ErrAlreadyExists):
		return ErrPoolExists
	case errors.Is(err, service.ErrSameToken), errors.Is(err, pool.ErrSameToken):
		return ErrSameTokens
	case errors.Is(err, service.ErrEmptyReserves), errors.Is(err, cpmm.ErrEmptyReserves):
		return ErrEmptyReservesBadRequest
	case errors.Is(err, cpmm.ErrZeroAmount), errors.Is(err, pool.ErrZeroAmount):
		return ErrAmountZero
	case errors.Is(err, service.ErrChainDisabled):
		return ErrChainUnavailable
	case errors.Is(err, service.ErrPairMismatch),
		errors.Is(err, service.ErrReservesTooLarge),
		errors.Is(err, pool.ErrEmptyToken),
		errors.Is(err, pool.ErrInvalidFee),
		errors.Is(err, pool.ErrUnknownToken),
		errors.Is(err, pool.ErrInsufficientShares),
		errors.Is(err, pool.ErrDustDeposit),
		errors.Is(err, pool.ErrExcessiveOutput),
		errors.Is(err, pool.ErrReserveOverflow),
		errors.Is(err, cpmm.ErrAmountOverflow):
		return NewUnprocessable(err)
	default:
		return nil
	}
}
