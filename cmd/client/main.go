package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-massage-link/internal/adapter"
	"github.com/MKhiriev/go-massage-link/internal/client"
	"github.com/MKhiriev/go-massage-link/internal/config"
	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/MKhiriev/go-massage-link/internal/tui"
	"github.com/MKhiriev/go-massage-link/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "massage-link-client"

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		// the terminal is still ours: report config problems on stdout
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)

	version := buildVersion
	if cfg.App.Version != "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	backend, err := adapter.NewHTTPSessionBackend(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session backend adapter")
	}

	services := service.NewClientServices(backend, log)

	ui, err := tui.New(services, buildInfo, backend.BaseURL(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
