// Package service contains the quoting, liquidity and pair-import logic
// backing the HTTP handlers. Services hold no pool state themselves; the
// pool manager owns it.
package service

import "log/slog"

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
}
