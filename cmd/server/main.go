package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunarforge/assetforge/internal/config"
	"github.com/lunarforge/assetforge/internal/core/generator"
	"github.com/lunarforge/assetforge/internal/driver"
	"github.com/lunarforge/assetforge/internal/llm"
	"github.com/lunarforge/assetforge/internal/prompts"
	"github.com/lunarforge/assetforge/internal/server"
	"github.com/lunarforge/assetforge/internal/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using environment as is")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfgPath).Msg("failed to load configuration")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm client")
	}
	if cfg.LLM.MockFallback {
		client = llm.WithMockFallback(client, logger)
	}

	retryDelay, err := cfg.Generation.RetryDelayDuration()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid generation config")
	}
	genCfg := generator.Config{
		MaxAttempts: cfg.Generation.MaxAttempts,
		RetryDelay:  retryDelay,
		Fallback:    cfg.Generation.Fallback,
	}
	gen := generator.New(client, genCfg, logger)
	mockGen := generator.New(llm.NewMockClient(), genCfg, logger)

	files := store.NewFileStore(cfg.Storage.OutputDir, logger)

	var graphs *store.GraphStore
	if cfg.Memgraph.URI != "" {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Memgraph")
		}
		defer d.Close(ctx)
		if err := d.BuildIndices(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to build graph indices")
		}
		graphs = store.NewGraphStore(d, logger)
	}

	srv := server.New(gen, mockGen, prompts.NewManager(cfg.Prompts), files, graphs, cfg.Generation.Temperature, logger)
	router := srv.SetupRouter()

	logger.Info().
		Str("addr", cfg.Server.Addr).
		Str("provider", cfg.LLM.Provider).
		Msg("starting asset generation server")
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
