package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	_ "atelie_gestor/docs"
	"atelie_gestor/internal/adapter/http/routes"
	"atelie_gestor/pkg/config"
	"atelie_gestor/pkg/logger"
)

// @title           Atelie Gestor API
// @version         1.0
// @description     Management API for small ateliers: catalog, orders, schedule, cash and finances over DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey OwnerID
// @in header
// @name X-User-ID
// @description Owner id injected by the auth proxy.

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "atelie-gestor",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Output:      os.Stdout,
	})

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
