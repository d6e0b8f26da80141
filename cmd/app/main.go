package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shootdesk/cmd"
	httpin "shootdesk/internal/adapters/in/http"
	"shootdesk/internal/adapters/out/postgres/deliveryrepo"
	"shootdesk/internal/adapters/out/postgres/listingrepo"
	"shootdesk/internal/adapters/out/postgres/mediarepo"
	"shootdesk/internal/adapters/out/postgres/orderrepo"
	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db, logger)

	registerJobHandlers(app, logger)
	defer app.JobDispatcher().Close()

	jobManager := jobs.NewJobManager(
		app.CreateExpireDeliveryPackagesCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	if cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST")); err == nil {
		config.BcryptCost = cost
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.TaskDTO{},
		&deliveryrepo.PackageDTO{}, &deliveryrepo.ItemDTO{}, &deliveryrepo.AccessDTO{},
		&listingrepo.ListingDTO{}, &listingrepo.MediaRefDTO{}, &listingrepo.AgentSnapshotDTO{},
		&mediarepo.MediaAssetDTO{}, &mediarepo.VariantDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

// registerJobHandlers binds the background job types the command handlers
// enqueue. The processing job only acknowledges the handoff by moving the
// asset to Processing; the provider callback reports Ready or Failed.
func registerJobHandlers(app *cmd.CompositionRoot, logger *slog.Logger) {
	processHandler := app.CreateUpdateMediaProcessingCommandHandler()

	err := app.JobDispatcher().Register(commands.ProcessMediaAssetJobType,
		func(ctx context.Context, args map[string]string) error {
			assetID, err := kernel.UUIDFromString(args["assetId"])
			if err != nil {
				return err
			}
			processCmd, err := commands.NewUpdateMediaProcessingCommand(assetID, media.Processing)
			if err != nil {
				return err
			}
			return processHandler.Handle(ctx, processCmd)
		})
	if err != nil {
		log.Fatalf("Failed to register job handlers: %v", err)
	}
	logger.Info("job handlers registered", "component", "main")
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
