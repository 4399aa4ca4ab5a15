package handler

import (
	"strconv"

	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/service"
)

type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type QuoteRequest struct {
	Pool   string `query:"pool" json:"pool"`
	Src    string `query:"src" json:"src"`
	Dst    string `query:"dst" json:"dst"`
	Amount string `query:"amount" json:"amount"`
}

func (h *QuoteHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		poolID, err := parsePoolID(req.Pool)
		if err != nil {
			return err
		}
		amountIn, err := parseAmount(req.Amount)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Quote(poolID, req.Src, req.Dst, amountIn)
		if err != nil {
			return h.domainError(err)
		}

		h.logger.Debug("quote computed", "pool", poolID, "src", req.Src, "dst", req.Dst, "in", amountIn, "out", amountOut)
		return c.SendString(strconv.FormatUint(amountOut, 10))
	}
}

func (h *QuoteHandler) parseAndValidateRequest(c fiber.Ctx) (*QuoteRequest, error) {
	var req QuoteRequest

	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return nil, ErrInvalidQueryParameters
	}

	if req.Pool == "" {
		return nil, ErrInvalidPoolID
	}
	if req.Src == "" {
		return nil, NewFieldRequired("src")
	}
	if req.Dst == "" {
		return nil, NewFieldRequired("dst")
	}
	if req.Src == req.Dst {
		return nil, ErrSameTokens
	}

	return &req, nil
}
