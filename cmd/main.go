package main

import (
	"fmt"
	"os"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/data/db"
	"github.com/obradorlabs/obrador-backend/internal/data/repos"
	"github.com/obradorlabs/obrador-backend/internal/http/handlers"
	"github.com/obradorlabs/obrador-backend/internal/label"
	"github.com/obradorlabs/obrador-backend/internal/platform/envutil"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/platform/printer"
	"github.com/obradorlabs/obrador-backend/internal/server"
	"github.com/obradorlabs/obrador-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	port := envutil.String("PORT", "8080", log)
	registryNumber := envutil.String("LABEL_REGISTRY_NUMBER", "10.12345/GI", log)
	daysValid := envutil.Int("LABEL_DAYS_VALID", 2, log)
	printerAddr := envutil.String("PRINTER_ADDR", "", log)
	printerTimeout := envutil.Int("PRINTER_TIMEOUT_SECONDS", 5, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	ingredientRepo := repos.NewIngredientRepo(thePG, log)
	elaborationRepo := repos.NewElaborationRepo(thePG, log)
	lotRepo := repos.NewLotRepo(thePG, log)
	compositionRepo := repos.NewCompositionRepo(thePG, log)

	// Printer sink
	var sink printer.Service
	if printerAddr == "" {
		log.Warn("PRINTER_ADDR not set, printing is disabled")
		sink = printer.NopService{}
	} else {
		sink = printer.NewTCPService(printerAddr, time.Duration(printerTimeout)*time.Second, log)
	}

	// Services
	genealogyService := services.NewGenealogyService(
		thePG, lotRepo, compositionRepo, ingredientRepo, elaborationRepo, log,
	)
	labelService := services.NewLabelService(
		lotRepo, elaborationRepo, sink,
		label.Defaults{DaysValid: daysValid, RegistryNumber: registryNumber},
		log,
	)

	// Handlers
	router := server.NewRouter(server.RouterConfig{
		Log:                log,
		IngredientHandler:  handlers.NewIngredientHandler(log, ingredientRepo),
		ElaborationHandler: handlers.NewElaborationHandler(log, elaborationRepo),
		LotHandler:         handlers.NewLotHandler(log, genealogyService),
		LabelHandler:       handlers.NewLabelHandler(log, labelService),
	})

	log.Info("starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
