package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery/cmd"
	adapterhttp "grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/kafka"
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/adapters/out/postgres/partnerrepo"
	"grocery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)

	producer, err := kafka.NewProducer(
		configs.KafkaHost,
		configs.KafkaDeliveryCompletedTopic,
		configs.KafkaStockRestoreTopic,
	)
	if err != nil {
		log.Fatalf("Failed to create Kafka producer: %v", err)
	}
	defer producer.Close()

	app := cmd.NewCompositionRoot(configs, db, producer, producer, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetPendingOrderIDsQueryHandler(),
		app.CreateAssignOrderCommandHandler(),
		configs.AssignmentJobSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                    goDotEnvVariable("HTTP_PORT"),
		DBHost:                      goDotEnvVariable("DB_HOST"),
		DBPort:                      goDotEnvVariable("DB_PORT"),
		DBUser:                      goDotEnvVariable("DB_USER"),
		DBPassword:                  goDotEnvVariable("DB_PASSWORD"),
		DBName:                      goDotEnvVariable("DB_NAME"),
		DBSslMode:                   goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                   goDotEnvVariable("KAFKA_HOST"),
		KafkaDeliveryCompletedTopic: goDotEnvVariable("KAFKA_DELIVERY_COMPLETED_TOPIC"),
		KafkaStockRestoreTopic:      goDotEnvVariable("KAFKA_STOCK_RESTORE_TOPIC"),
		AssignmentJobSchedule:       goDotEnvVariable("ASSIGNMENT_JOB_SCHEDULE"),
	}
	if config.AssignmentJobSchedule == "" {
		config.AssignmentJobSchedule = "*/5 * * * * *"
	}
	if raw := goDotEnvVariable("AVAILABILITY_STALE_AFTER"); raw != "" {
		staleAfter, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid AVAILABILITY_STALE_AFTER value %q: %v", raw, err)
		}
		config.AvailabilityStaleAfter = staleAfter
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreatePartnerCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordCODPaymentCommandHandler(),
		app.CreateSetAvailabilityCommandHandler(),
		app.CreateHeartbeatCommandHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetAssignedOrdersQueryHandler(),
		app.CreateGetEarningsSummaryQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("Web server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
