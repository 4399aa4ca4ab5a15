package pool

import "errors"

var (
	ErrNotFound           = errors.New("pool not found")
	ErrAlreadyExists      = errors.New("pool already exists for token pair")
	ErrSameToken          = errors.New("cannot pair a token with itself")
	ErrEmptyToken         = errors.New("token symbol cannot be empty")
	ErrInvalidFee         = errors.New("fee exceeds denominator")
	ErrZeroAmount         = errors.New("amount must be greater than zero")
	ErrUnknownToken       = errors.New("token is not part of the pool")
	ErrInsufficientShares = errors.New("not enough LP shares")
	ErrDustDeposit        = errors.New("initial deposit too small to mint shares")
	ErrExcessiveOutput    = errors.New("swap output would drain the reserve")
	ErrReserveOverflow    = errors.New("reserve would overflow")
)
