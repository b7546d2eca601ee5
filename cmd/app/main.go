package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ordering/cmd"
	apihttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/cardtyperepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/requestrepo"

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

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager(time.Duration(configs.GracePeriodSeconds) * time.Second)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	gracePeriod, err := strconv.Atoi(goDotEnvVariable("GRACE_PERIOD_SECONDS"))
	if err != nil {
		log.Fatalf("Invalid GRACE_PERIOD_SECONDS: %v", err)
	}

	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		GracePeriodSeconds: gracePeriod,
	}
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

	// TranslateError turns unique-key violations into gorm.ErrDuplicatedKey,
	// which the request-dedupe ledger depends on.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&requestrepo.RequestDTO{},
		&cardtyperepo.CardTypeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = cardtyperepo.Seed(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed card types: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := apihttp.NewServer(
		root.CreateIdentifiedCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateShipOrderCommandHandler(),
		root.CreateCreateOrderDraftCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.CreateGetCardTypesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
