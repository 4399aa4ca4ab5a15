package config

import (
	"os"
	"strconv"

	"github.com/nulln0ne/amm-quoter/pkg/cpmm"
)

type Config struct {
	Addr string
	// RPCEndpoint is optional; pair import is disabled when empty.
	RPCEndpoint   string
	LogLevel      string
	DefaultFeeBps uint64
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	feeBps := uint64(30)
	if raw := os.Getenv("DEFAULT_FEE_BPS"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, ErrInvalidFeeBps
		}
		feeBps = v
	}
	if feeBps > cpmm.FeeDenominator {
		return nil, ErrInvalidFeeBps
	}

	cfg := &Config{
		Addr:          addr,
		RPCEndpoint:   os.Getenv("ETH_RPC_URL"),
		LogLevel:      logLevel,
		DefaultFeeBps: feeBps,
	}

	return cfg, nil
}
