package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/amm-quoter/internal/pool"
)

type PoolsHandler struct {
	BaseHandler
	pools *pool.Manager
}

func NewPoolsHandler(logger *slog.Logger, pools *pool.Manager) *PoolsHandler {
	return &PoolsHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		pools: pools,
	}
}

type CreatePoolRequest struct {
	Owner   string `json:"owner"`
	TokenX  string `json:"token_x"`
	TokenY  string `json:"token_y"`
	AmountX string `json:"amount_x"`
	AmountY string `json:"amount_y"`
	FeeBps  uint64 `json:"fee_bps"`
}

// PoolResponse is a pool snapshot plus its geometric liquidity.
type PoolResponse struct {
	pool.Pool
	Liquidity uint64 `json:"liquidity"`
}

func poolResponse(p pool.Pool) PoolResponse {
	return PoolResponse{Pool: p, Liquidity: p.Liquidity()}
}

func (h *PoolsHandler) Create(defaultFeeBps uint64) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req CreatePoolRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind body", "err", err)
			return ErrInvalidBody
		}
		if req.Owner == "" {
			return NewFieldRequired("owner")
		}

		amountX, err := parseAmount(req.AmountX)
		if err != nil {
			return err
		}
		amountY, err := parseAmount(req.AmountY)
		if err != nil {
			return err
		}
		feeBps := req.FeeBps
		if feeBps == 0 {
			feeBps = defaultFeeBps
		}

		p, err := h.pools.Create(req.Owner, req.TokenX, req.TokenY, amountX, amountY, feeBps)
		if err != nil {
			return h.domainError(err)
		}

		h.logger.Info("pool created", "pool", p.ID, "pair", p.TokenX+"/"+p.TokenY, "owner", req.Owner)
		return c.Status(fiber.StatusCreated).JSON(poolResponse(p))
	}
}

func (h *PoolsHandler) List() fiber.Handler {
	return func(c fiber.Ctx) error {
		pools := h.pools.List()
		out := make([]PoolResponse, 0, len(pools))
		for _, p := range pools {
			out = append(out, poolResponse(p))
		}
		return c.JSON(out)
	}
}

func (h *PoolsHandler) Get() fiber.Handler {
	return func(c fiber.Ctx) error {
		poolID, err := pathPoolID(c)
		if err != nil {
			return err
		}
		p, err := h.pools.Get(poolID)
		if err != nil {
			return h.domainError(err)
		}
		return c.JSON(poolResponse(p))
	}
}
