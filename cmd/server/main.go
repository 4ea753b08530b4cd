package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dmarenin/amm-pool-service/internal/config"
	"github.com/dmarenin/amm-pool-service/internal/engine"
	"github.com/dmarenin/amm-pool-service/internal/ledger"
	"github.com/dmarenin/amm-pool-service/internal/service"
	"github.com/dmarenin/amm-pool-service/internal/store"
	"github.com/dmarenin/amm-pool-service/internal/store/postgres"
	transport "github.com/dmarenin/amm-pool-service/internal/transport/http"
)

func main() {
	root := &cobra.Command{
		Use:          "amm-pool-service",
		Short:        "Constant-product AMM pool service",
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	}
	serveCmd.Flags().String("config", "", "config file path (falls back to CONFIG_PATH env)")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var poolStore store.Store
	if cfg.PostgresDSN != "" {
		pg, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		poolStore = pg
		logger.Info("using postgres pool store")
	} else {
		poolStore = store.NewMemoryStore()
		logger.Info("using in-memory pool store")
	}

	assets := ledger.NewMemoryAssetLedger()
	claims := ledger.NewMemoryClaimLedger()

	svc := service.NewPoolService(
		poolStore,
		assets,
		claims,
		engine.New(cfg.MinLiquidity),
		logger,
		cfg.MaxCommitRetries,
	)

	var opts []transport.Option
	if cfg.EnableFaucet {
		opts = append(opts, transport.WithFaucet(assets))
		logger.Warn("dev faucet enabled")
	}

	srv, err := transport.NewServer(svc, cfg, logger, opts...)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cfg.ListenAddr)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Printf("unknown log level %q, using info", level)
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
