package handler

import (
	"context"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/service"
)

type ImportHandler struct {
	BaseHandler
	service *service.PairService
}

func NewImportHandler(logger *slog.Logger, svc *service.PairService) *ImportHandler {
	return &ImportHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type ImportRequest struct {
	Pair   string `json:"pair"`
	Owner  string `json:"owner"`
	FeeBps uint64 `json:"fee_bps"`
}

// Handle seeds a managed pool from an on-chain V2 pair contract.
func (h *ImportHandler) Handle(defaultFeeBps uint64) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req ImportRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind body", "err", err)
			return ErrInvalidBody
		}
		if req.Pair == "" {
			return NewFieldRequired("pair")
		}
		if !common.IsHexAddress(req.Pair) {
			return NewInvalidAddress("pair")
		}
		if req.Owner == "" {
			return NewFieldRequired("owner")
		}
		feeBps := req.FeeBps
		if feeBps == 0 {
			feeBps = defaultFeeBps
		}

		p, err := h.service.Import(context.Background(), common.HexToAddress(req.Pair), req.Owner, feeBps)
		if err != nil {
			return h.domainError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(poolResponse(p))
	}
}
