package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/nulln0ne/amm-quoter/internal/config"
	"github.com/nulln0ne/amm-quoter/internal/eth"
	"github.com/nulln0ne/amm-quoter/internal/handler"
	"github.com/nulln0ne/amm-quoter/internal/logging"
	"github.com/nulln0ne/amm-quoter/internal/pool"
	"github.com/nulln0ne/amm-quoter/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pair import works without a chain; the endpoint reports 503 when no
	// RPC URL is configured.
	var ethereumClient *ethclient.Client
	if cfg.RPCEndpoint != "" {
		ethereumClient, err = eth.Dial(ctx, cfg.RPCEndpoint)
		if err != nil {
			return fmt.Errorf("failed to connect to Ethereum node: %w", err)
		}
		defer ethereumClient.Close()
	} else {
		logger.Info("ETH_RPC_URL not set, pair import disabled")
	}

	pools := pool.NewManager()

	quoteService := service.NewQuoteService(logger, pools)
	liquidityService := service.NewLiquidityService(logger, pools)
	pairService := service.NewPairService(logger, ethereumClient, pools)

	quoteHandler := handler.NewQuoteHandler(logger, quoteService)
	poolsHandler := handler.NewPoolsHandler(logger, pools)
	liquidityHandler := handler.NewLiquidityHandler(logger, liquidityService)
	importHandler := handler.NewImportHandler(logger, pairService)

	app.Get("/quote", quoteHandler.Handle())
	app.Get("/pools", poolsHandler.List())
	app.Get("/pools/:id", poolsHandler.Get())
	app.Post("/pools", poolsHandler.Create(cfg.DefaultFeeBps))
	app.Post("/pools/import", importHandler.Handle(cfg.DefaultFeeBps))
	app.Post("/pools/:id/deposit", liquidityHandler.Deposit())
	app.Post("/pools/:id/withdraw", liquidityHandler.Withdraw())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	<-shutdownCtx.Done()
	return nil
}
