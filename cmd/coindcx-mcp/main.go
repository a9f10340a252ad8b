// coindcx-mcp exposes the CoinDCX exchange REST API as MCP tools over stdio.
//
// Public market data works without credentials; trading and account tools
// need COINDCX_API_KEY and COINDCX_SECRET_KEY in the environment or a .env
// file.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dcxlabs/coindcx-mcp/internal/coindcx"
	"github.com/dcxlabs/coindcx-mcp/internal/config"
	"github.com/dcxlabs/coindcx-mcp/internal/tools"
)

const version = "1.0.0"

func main() {
	// MCP owns stdout, so all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	client := coindcx.NewClient(cfg.APIKey, cfg.SecretKey,
		coindcx.WithBaseURL(cfg.BaseURL),
		coindcx.WithPublicURL(cfg.PublicURL),
		coindcx.WithTimeout(cfg.Timeout),
	)

	if !cfg.HasCredentials() {
		log.Warn().Msg("No credentials - public endpoints only. Set COINDCX_API_KEY and COINDCX_SECRET_KEY for trading.")
	}

	srv := tools.NewServer(client, version)

	log.Info().
		Str("version", version).
		Str("base_url", cfg.BaseURL).
		Bool("authenticated", cfg.HasCredentials()).
		Msg("CoinDCX MCP server starting on stdio")

	if err := server.ServeStdio(srv); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
