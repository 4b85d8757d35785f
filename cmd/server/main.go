package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront-api/internal/config"
	"github.com/MKhiriev/storefront-api/internal/csrf"
	handlerhttp "github.com/MKhiriev/storefront-api/internal/handler/http"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/server"
	"github.com/MKhiriev/storefront-api/internal/service"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/internal/token"
	"github.com/MKhiriev/storefront-api/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storefront-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	tokens, err := token.NewService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token service")
	}

	guard, err := csrf.NewGuard(cfg.App.CsrfHashKey, cfg.App.SecureCookies)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating csrf guard")
	}

	validator, err := schema.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating schema validator")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, vault.New(cfg.App.BcryptCost), tokens, log)
	handler := handlerhttp.NewHandler(services, validator, guard, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
