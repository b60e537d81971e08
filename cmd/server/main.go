package main

import (
	"context"
	"health_data_api/internal/api"
	"health_data_api/internal/app/service"
	"health_data_api/internal/app/validation"
	"health_data_api/internal/domain/repository"
	"health_data_api/internal/platform/config"
	"health_data_api/internal/platform/database"
	"health_data_api/internal/platform/logging"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Logger
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("Configuration loaded.", zap.String("env", cfg.AppEnv), zap.String("store", cfg.StoreDriver))

	// 3. Initialize Store and Repositories
	var (
		client         *mongo.Client
		userRepo       repository.UserRepository
		healthDataRepo repository.HealthDataRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := repository.NewMemoryStore()
		userRepo = repository.NewMemoryUserRepository(store)
		healthDataRepo = repository.NewMemoryHealthDataRepository(store)
		logger.Warn("Using in-memory store, data is lost on restart.")
	case config.StoreDriverMongo:
		client, err = database.Connect(context.Background(), cfg, logger)
		if err != nil {
			logger.Fatal("Database connection failed", zap.Error(err))
		}
		db := client.Database(cfg.MongoDatabase)
		userRepo = repository.NewMongoUserRepository(db)
		healthDataRepo = repository.NewMongoHealthDataRepository(db)
	default:
		logger.Fatal("Unknown store driver", zap.String("store", cfg.StoreDriver))
	}

	// 4. Initialize Services
	v := validation.New()
	userService := service.NewUserService(userRepo, v, logger)
	healthDataService := service.NewHealthDataService(healthDataRepo, v, logger)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(userService, healthDataService, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Could not listen", zap.String("port", cfg.APIPort), zap.Error(err))
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	// The store goes last so that draining requests can still finish.
	database.Close(shutdownCtx, client, logger)

	logger.Info("Server stopped gracefully.")
}
