package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/service"
)

type LiquidityHandler struct {
	BaseHandler
	service *service.LiquidityService
}

func NewLiquidityHandler(logger *slog.Logger, svc *service.LiquidityService) *LiquidityHandler {
	return &LiquidityHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type DepositRequest struct {
	Owner   string `json:"owner"`
	AmountX string `json:"amount_x"`
	AmountY string `json:"amount_y"`
}

type DepositResponse struct {
	Minted uint64 `json:"minted"`
}

type WithdrawRequest struct {
	Owner    string `json:"owner"`
	LPAmount string `json:"lp_amount"`
}

type WithdrawResponse struct {
	AmountX uint64 `json:"amount_x"`
	AmountY uint64 `json:"amount_y"`
}

// Deposit mints LP shares for both-asset deposits. With ?preview=true the
// mint is computed without changing pool state, and no owner is required.
func (h *LiquidityHandler) Deposit() fiber.Handler {
	return func(c fiber.Ctx) error {
		poolID, err := pathPoolID(c)
		if err != nil {
			return err
		}

		var req DepositRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind body", "err", err)
			return ErrInvalidBody
		}
		amountX, err := parseAmount(req.AmountX)
		if err != nil {
			return err
		}
		amountY, err := parseAmount(req.AmountY)
		if err != nil {
			return err
		}

		var minted uint64
		if c.Query("preview") == "true" {
			minted, err = h.service.PreviewDeposit(poolID, amountX, amountY)
		} else {
			if req.Owner == "" {
				return NewFieldRequired("owner")
			}
			minted, err = h.service.Deposit(poolID, req.Owner, amountX, amountY)
		}
		if err != nil {
			return h.domainError(err)
		}
		return c.JSON(DepositResponse{Minted: minted})
	}
}

// Withdraw burns LP shares and pays out both assets. With ?preview=true the
// payout is computed without changing pool state.
func (h *LiquidityHandler) Withdraw() fiber.Handler {
	return func(c fiber.Ctx) error {
		poolID, err := pathPoolID(c)
		if err != nil {
			return err
		}

		var req WithdrawRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind body", "err", err)
			return ErrInvalidBody
		}
		lpAmount, err := parseAmount(req.LPAmount)
		if err != nil {
			return err
		}

		var amountX, amountY uint64
		if c.Query("preview") == "true" {
			amountX, amountY, err = h.service.PreviewWithdraw(poolID, lpAmount)
		} else {
			if req.Owner == "" {
				return NewFieldRequired("owner")
			}
			amountX, amountY, err = h.service.Withdraw(poolID, req.Owner, lpAmount)
		}
		if err != nil {
			return h.domainError(err)
		}
		return c.JSON(WithdrawResponse{AmountX: amountX, AmountY: amountY})
	}
}
