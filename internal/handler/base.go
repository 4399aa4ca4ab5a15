// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"strconv"

	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// domainError maps a service/pool/core error to its HTTP error, logging and
// masking anything unrecognized.
func (h *BaseHandler) domainError(err error) error {
	if mapped := mapDomainError(err); mapped != nil {
		return mapped
	}
	h.logger.Error("unhandled domain error", "err", err)
	return ErrInternal
}

func parsePoolID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidPoolID
	}
	return id, nil
}

func parseAmount(s string) (uint64, error) {
	if s == "" {
		return 0, ErrAmountRequired
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}
	if v == 0 {
		return 0, ErrAmountZero
	}
	return v, nil
}

func pathPoolID(c fiber.Ctx) (uint64, error) {
	return parsePoolID(c.Params("id"))
}
