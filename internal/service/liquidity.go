package service

import (
	"log/slog"

	"github.com/nulln0ne/amm-quoter/internal/pool"
	"github.com/nulln0ne/amm-quoter/pkg/cpmm"
)

// LiquidityService previews and executes deposits and withdrawals against
// managed pools. Previews are pure calls into the math core on a snapshot;
// executes go through the manager, which applies the result to its state.
type LiquidityService struct {
	BaseService
	pools *pool.Manager
}

func NewLiquidityService(logger *slog.Logger, pools *pool.Manager) *LiquidityService {
	return &LiquidityService{
		BaseService: BaseService{logger: logger},
		pools:       pools,
	}
}

// PreviewDeposit returns the LP shares a deposit would mint without minting
// them.
func (s *LiquidityService) PreviewDeposit(poolID, amountX, amountY uint64) (uint64, error) {
	p, err := s.pools.Get(poolID)
	if err != nil {
		return 0, err
	}
	return cpmm.SubsequentLiquidity(amountX, amountY, p.ReserveX, p.ReserveY, p.LPSupply)
}

// Deposit adds both assets to the pool and mints shares to owner.
func (s *LiquidityService) Deposit(poolID uint64, owner string, amountX, amountY uint64) (uint64, error) {
	minted, err := s.pools.AddLiquidity(poolID, owner, amountX, amountY)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("liquidity added", "pool", poolID, "owner", owner, "minted", minted)
	return minted, nil
}

// PreviewWithdraw returns the payout burning lpAmount shares would produce
// without burning them.
func (s *LiquidityService) PreviewWithdraw(poolID, lpAmount uint64) (amountX, amountY uint64, err error) {
	p, err := s.pools.Get(poolID)
	if err != nil {
		return 0, 0, err
	}
	return cpmm.RemoveLiquidity(lpAmount, p.LPSupply, p.ReserveX, p.ReserveY)
}

// Withdraw burns lpAmount of the owner's shares and pays out both assets.
func (s *LiquidityService) Withdraw(poolID uint64, owner string, lpAmount uint64) (amountX, amountY uint64, err error) {
	amountX, amountY, err = s.pools.RemoveLiquidity(poolID, owner, lpAmount)
	if err != nil {
		return 0, 0, err
	}
	s.logger.Debug("liquidity removed", "pool", poolID, "owner", owner, "burned", lpAmount, "x", amountX, "y", amountY)
	return amountX, amountY, nil
}
