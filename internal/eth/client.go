// Package eth wraps go-ethereum client construction.
package eth

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

const dialTimeout = 15 * time.Second

// Dial connects to the JSON-RPC endpoint with a bounded handshake timeout.
// The returned client is used for pair storage reads only.
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	return ethclient.DialContext(ctx, url)
}
