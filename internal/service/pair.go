package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/nulln0ne/amm-quoter/internal/pool"
)

// PairService seeds managed pools from Uniswap-V2-style pair contracts by
// reading their storage directly. The client may be nil when no RPC endpoint
// is configured; Import then fails with ErrChainDisabled.
type PairService struct {
	BaseService
	ethereumClient *ethclient.Client
	pools          *pool.Manager
}

func NewPairService(logger *slog.Logger, ec *ethclient.Client, pools *pool.Manager) *PairService {
	return &PairService{
		BaseService:    BaseService{logger: logger},
		ethereumClient: ec,
		pools:          pools,
	}
}

// PairSnapshot is one pair's state read at a single block.
type PairSnapshot struct {
	Token0, Token1     common.Address
	Reserve0, Reserve1 *big.Int
	Block              uint64
}

// Import reads the pair's tokens and reserves at the latest block and creates
// a managed pool mirroring them, owned by owner. Reserves are uint112 on
// chain and must fit uint64 here; larger pairs are rejected with
// ErrReservesTooLarge.
func (s *PairService) Import(ctx context.Context, pair common.Address, owner string, feeBps uint64) (pool.Pool, error) {
	snap, err := s.Snapshot(ctx, pair)
	if err != nil {
		return pool.Pool{}, err
	}

	if snap.Reserve0.Sign() == 0 || snap.Reserve1.Sign() == 0 {
		return pool.Pool{}, ErrEmptyReserves
	}
	if !snap.Reserve0.IsUint64() || !snap.Reserve1.IsUint64() {
		return pool.Pool{}, ErrReservesTooLarge
	}

	// Lowercase hex keeps lexicographic token order identical to the
	// numeric token0 < token1 order the pair contract guarantees.
	token0 := strings.ToLower(snap.Token0.Hex())
	token1 := strings.ToLower(snap.Token1.Hex())

	p, err := s.pools.Create(owner, token0, token1, snap.Reserve0.Uint64(), snap.Reserve1.Uint64(), feeBps)
	if err != nil {
		return pool.Pool{}, err
	}
	s.logger.Info("pair imported", "pair", pair.Hex(), "pool", p.ID, "block", snap.Block)
	return p, nil
}

// Snapshot reads token0, token1 and the packed reserves from the pair's
// storage at the latest block.
func (s *PairService) Snapshot(ctx context.Context, pair common.Address) (*PairSnapshot, error) {
	if s.ethereumClient == nil {
		return nil, ErrChainDisabled
	}

	bn, err := s.ethereumClient.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}
	blockNum := new(big.Int).SetUint64(bn)

	// token0 and token1 live in slots 6 and 7 of the pair contract.
	b0, err := s.readSlot(ctx, pair, blockNum, 6)
	if err != nil {
		return nil, err
	}
	b1, err := s.readSlot(ctx, pair, blockNum, 7)
	if err != nil {
		return nil, err
	}

	// reserves (uint112 | uint112 | uint32) are packed into slot 8.
	br, err := s.readSlot(ctx, pair, blockNum, 8)
	if err != nil {
		return nil, err
	}
	reserve0, reserve1 := parseReserves(br)

	return &PairSnapshot{
		Token0:   common.BytesToAddress(b0),
		Token1:   common.BytesToAddress(b1),
		Reserve0: reserve0,
		Reserve1: reserve1,
		Block:    bn,
	}, nil
}

func (s *PairService) readSlot(ctx context.Context, pair common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := s.ethereumClient.StorageAt(ctx, pair, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pair %s, block %s): %w",
			slot, pair.Hex(), blockNum.String(), err)
	}
	return b, nil
}

// parseReserves unpacks two uint112 reserves from the 32-byte storage word
// used by V2 pairs. The layout is:
//
//	[ 112 bits reserve0 | 112 bits reserve1 | 32 bits timestamp ]
//
// Values are treated as big-endian within the 256-bit word.
func parseReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	tmp := new(big.Int).Rsh(v, 112)
	reserve1 = new(big.Int).And(tmp, mask112)
	return
}
