package service

import "errors"

var (
	ErrSameToken        = errors.New("src and dst are equal")
	ErrPairMismatch     = errors.New("pool does not match src/dst")
	ErrEmptyReserves    = errors.New("empty reserves")
	ErrChainDisabled    = errors.New("no RPC endpoint configured")
	ErrReservesTooLarge = errors.New("on-chain reserves exceed uint64")
)
