package service

import (
	"log/slog"

	"github.com/nulln0ne/amm-quoter/internal/pool"
	"github.com/nulln0ne/amm-quoter/pkg/cpmm"
)

// QuoteService prices swaps against managed pools without mutating them.
type QuoteService struct {
	BaseService
	pools *pool.Manager
}

// NewQuoteService constructs a QuoteService over the given pool manager.
func NewQuoteService(logger *slog.Logger, pools *pool.Manager) *QuoteService {
	return &QuoteService{
		BaseService: BaseService{logger: logger},
		pools:       pools,
	}
}

// Quote computes the output amount for swapping amountIn of src to dst in
// the given pool. It validates the token pair against the pool, reads a
// reserve snapshot and applies the constant-product formula with the pool's
// fee. Reserves are left untouched; Swap on the manager is the mutating path.
func (s *QuoteService) Quote(poolID uint64, src, dst string, amountIn uint64) (uint64, error) {
	s.logger.Debug("quoting swap", "pool", poolID, "src", src, "dst", dst, "in", amountIn)

	if src == dst {
		return 0, ErrSameToken
	}

	p, err := s.pools.Get(poolID)
	if err != nil {
		return 0, err
	}

	var reserveIn, reserveOut uint64
	switch {
	case src == p.TokenX && dst == p.TokenY:
		reserveIn, reserveOut = p.ReserveX, p.ReserveY
	case src == p.TokenY && dst == p.TokenX:
		reserveIn, reserveOut = p.ReserveY, p.ReserveX
	default:
		return 0, ErrPairMismatch
	}

	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrEmptyReserves
	}

	out, err := cpmm.SwapOutput(amountIn, reserveIn, reserveOut, p.FeeBps)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("amount out computed", "pool", poolID, "out", out)
	return out, nil
}
