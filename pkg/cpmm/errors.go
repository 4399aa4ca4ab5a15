package cpmm

import "errors"

var (
	// ErrZeroAmount indicates an amount argument that must be strictly
	// positive was zero.
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrEmptyReserves indicates a reserve or supply argument that must be
	// strictly positive was zero.
	ErrEmptyReserves = errors.New("empty reserves")

	// ErrAmountOverflow indicates a computed result does not fit the native
	// 64-bit width after narrowing from the widened domain.
	ErrAmountOverflow = errors.New("amount overflows uint64")
)
