package config

import "errors"

// ErrInvalidFeeBps indicates that DEFAULT_FEE_BPS is not an integer in
// [0, 10000].
var ErrInvalidFeeBps = errors.New("DEFAULT_FEE_BPS must be an integer between 0 and 10000")
