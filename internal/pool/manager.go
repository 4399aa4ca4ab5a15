// Package pool owns the mutable exchange state: reserves, LP supply and
// provider positions. The math core never sees this state directly; every
// operation reads a consistent snapshot under the manager's lock, calls the
// core, and applies the result.
package pool

import (
	"math"
	"math/big"
	"sync"

	"github.com/nulln0ne/amm-quoter/pkg/cpmm"
)

// Pool is a snapshot of one liquidity pool. TokenX < TokenY always holds;
// pairs are ordered lexicographically on creation.
type Pool struct {
	ID       uint64 `json:"id"`
	TokenX   string `json:"token_x"`
	TokenY   string `json:"token_y"`
	ReserveX uint64 `json:"reserve_x"`
	ReserveY uint64 `json:"reserve_y"`
	LPSupply uint64 `json:"lp_supply"`
	FeeBps   uint64 `json:"fee_bps"`
}

// Liquidity reports the pool's geometric liquidity sqrt(reserveX*reserveY),
// computed in the widened domain since the product can exceed 64 bits.
func (p *Pool) Liquidity() uint64 {
	rx := new(big.Int).SetUint64(p.ReserveX)
	ry := new(big.Int).SetUint64(p.ReserveY)
	// sqrt of a 128-bit product always fits back in 64 bits.
	return cpmm.SqrtBig(rx.Mul(rx, ry)).Uint64()
}

// Manager serializes all access to pool state. Methods return snapshot
// copies; callers never observe a pool mid-mutation.
type Manager struct {
	mu        sync.RWMutex
	pools     map[uint64]*Pool
	byPair    map[[2]string]uint64
	positions map[uint64]map[string]uint64 // poolID -> owner -> shares
	nextID    uint64
}

func NewManager() *Manager {
	return &Manager{
		pools:     make(map[uint64]*Pool),
		byPair:    make(map[[2]string]uint64),
		positions: make(map[uint64]map[string]uint64),
		nextID:    1,
	}
}

// Create opens a pool for a new token pair and mints the initial LP shares
// (the geometric mean of the deposit) to owner. Tokens are ordered
// lexicographically; amounts follow their tokens when the pair is swapped.
func (m *Manager) Create(owner, tokenX, tokenY string, amountX, amountY, feeBps uint64) (Pool, error) {
	if tokenX == "" || tokenY == "" {
		return Pool{}, ErrEmptyToken
	}
	if tokenX == tokenY {
		return Pool{}, ErrSameToken
	}
	if amountX == 0 || amountY == 0 {
		return Pool{}, ErrZeroAmount
	}
	if feeBps > cpmm.FeeDenominator {
		return Pool{}, ErrInvalidFee
	}
	if tokenX > tokenY {
		tokenX, tokenY = tokenY, tokenX
		amountX, amountY = amountY, amountX
	}

	minted := cpmm.InitialLiquidity(amountX, amountY)
	if minted == 0 {
		return Pool{}, ErrDustDeposit
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	pair := [2]string{tokenX, tokenY}
	if _, ok := m.byPair[pair]; ok {
		return Pool{}, ErrAlreadyExists
	}

	p := &Pool{
		ID:       m.nextID,
		TokenX:   tokenX,
		TokenY:   tokenY,
		ReserveX: amountX,
		ReserveY: amountY,
		LPSupply: minted,
		FeeBps:   feeBps,
	}
	m.nextID++
	m.pools[p.ID] = p
	m.byPair[pair] = p.ID
	m.positions[p.ID] = map[string]uint64{owner: minted}
	return *p, nil
}

// AddLiquidity deposits both assets into an existing pool and mints shares
// proportional to the smaller contribution. Both amounts are absorbed in
// full; depositors keep the pool ratio themselves to avoid donating the
// excess side.
func (m *Manager) AddLiquidity(poolID uint64, owner string, amountX, amountY uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pools[poolID]
	if !ok {
		return 0, ErrNotFound
	}

	minted, err := cpmm.SubsequentLiquidity(amountX, amountY, p.ReserveX, p.ReserveY, p.LPSupply)
	if err != nil {
		return 0, err
	}

	newRX, err := addUint64(p.ReserveX, amountX)
	if err != nil {
		return 0, err
	}
	newRY, err := addUint64(p.ReserveY, amountY)
	if err != nil {
		return 0, err
	}
	newSupply, err := addUint64(p.LPSupply, minted)
	if err != nil {
		return 0, err
	}

	p.ReserveX, p.ReserveY, p.LPSupply = newRX, newRY, newSupply
	m.positions[poolID][owner] += minted
	return minted, nil
}

// RemoveLiquidity burns lpAmount of the owner's shares and pays out both
// assets proportionally.
func (m *Manager) RemoveLiquidity(poolID uint64, owner string, lpAmount uint64) (amountX, amountY uint64, err error) {
	if lpAmount == 0 {
		return 0, 0, ErrZeroAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pools[poolID]
	if !ok {
		return 0, 0, ErrNotFound
	}
	held := m.positions[poolID][owner]
	if held < lpAmount {
		return 0, 0, ErrInsufficientShares
	}

	amountX, amountY, err = cpmm.RemoveLiquidity(lpAmount, p.LPSupply, p.ReserveX, p.ReserveY)
	if err != nil {
		return 0, 0, err
	}

	p.ReserveX -= amountX
	p.ReserveY -= amountY
	p.LPSupply -= lpAmount
	if held == lpAmount {
		delete(m.positions[poolID], owner)
	} else {
		m.positions[poolID][owner] = held - lpAmount
	}
	return amountX, amountY, nil
}

// Swap trades amountIn of tokenIn for the other pooled asset and applies the
// result to the reserves. The output bound against the reserve is enforced
// here, not in the math core.
func (m *Manager) Swap(poolID uint64, tokenIn string, amountIn uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pools[poolID]
	if !ok {
		return 0, ErrNotFound
	}

	var reserveIn, reserveOut uint64
	switch tokenIn {
	case p.TokenX:
		reserveIn, reserveOut = p.ReserveX, p.ReserveY
	case p.TokenY:
		reserveIn, reserveOut = p.ReserveY, p.ReserveX
	default:
		return 0, ErrUnknownToken
	}

	amountOut, err := cpmm.SwapOutput(amountIn, reserveIn, reserveOut, p.FeeBps)
	if err != nil {
		return 0, err
	}
	if amountOut >= reserveOut {
		return 0, ErrExcessiveOutput
	}
	newIn, err := addUint64(reserveIn, amountIn)
	if err != nil {
		return 0, err
	}

	if tokenIn == p.TokenX {
		p.ReserveX, p.ReserveY = newIn, reserveOut-amountOut
	} else {
		p.ReserveY, p.ReserveX = newIn, reserveOut-amountOut
	}
	return amountOut, nil
}

// Get returns a snapshot of one pool.
func (m *Manager) Get(poolID uint64) (Pool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pools[poolID]
	if !ok {
		return Pool{}, ErrNotFound
	}
	return *p, nil
}

// List returns snapshots of all pools ordered by ID.
func (m *Manager) List() []Pool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Pool, 0, len(m.pools))
	for id := uint64(1); id < m.nextID; id++ {
		if p, ok := m.pools[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// Position returns the owner's LP shares in a pool. A missing position is
// zero shares, not an error.
func (m *Manager) Position(poolID uint64, owner string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.pools[poolID]; !ok {
		return 0, ErrNotFound
	}
	return m.positions[poolID][owner], nil
}

func addUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrReserveOverflow
	}
	return a + b, nil
}
