package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/churchpool/churchpool/internal/pkg/config"
	"github.com/churchpool/churchpool/internal/pkg/database"
	"github.com/churchpool/churchpool/internal/pkg/health"
	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/metrics"
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
	nrpkg "github.com/churchpool/churchpool/internal/pkg/newrelic"
	wspkg "github.com/churchpool/churchpool/internal/pkg/websocket"

	bookingGateway "github.com/churchpool/churchpool/services/bookings/gateway"
	bookingHandler "github.com/churchpool/churchpool/services/bookings/handler"
	bookingHTTP "github.com/churchpool/churchpool/services/bookings/handler/http"
	bookingRepository "github.com/churchpool/churchpool/services/bookings/repository"
	bookingUsecase "github.com/churchpool/churchpool/services/bookings/usecase"
	locationGateway "github.com/churchpool/churchpool/services/location/gateway"
	locationHandler "github.com/churchpool/churchpool/services/location/handler"
	locationHTTP "github.com/churchpool/churchpool/services/location/handler/http"
	locationRepository "github.com/churchpool/churchpool/services/location/repository"
	locationUsecase "github.com/churchpool/churchpool/services/location/usecase"
	messagingGateway "github.com/churchpool/churchpool/services/messaging/gateway"
	messagingHandler "github.com/churchpool/churchpool/services/messaging/handler"
	messagingHTTP "github.com/churchpool/churchpool/services/messaging/handler/http"
	messagingNATS "github.com/churchpool/churchpool/services/messaging/handler/nats"
	messagingRepository "github.com/churchpool/churchpool/services/messaging/repository"
	messagingUsecase "github.com/churchpool/churchpool/services/messaging/usecase"
	realtimeHandler "github.com/churchpool/churchpool/services/realtime/handler"
	realtimeNATS "github.com/churchpool/churchpool/services/realtime/handler/nats"
	rideGateway "github.com/churchpool/churchpool/services/rides/gateway"
	rideHandler "github.com/churchpool/churchpool/services/rides/handler"
	rideHTTP "github.com/churchpool/churchpool/services/rides/handler/http"
	rideRepository "github.com/churchpool/churchpool/services/rides/repository"
	rideUsecase "github.com/churchpool/churchpool/services/rides/usecase"
	userHandler "github.com/churchpool/churchpool/services/users/handler"
	userHTTP "github.com/churchpool/churchpool/services/users/handler/http"
	userRepository "github.com/churchpool/churchpool/services/users/repository"
	userUsecase "github.com/churchpool/churchpool/services/users/usecase"
)

func main() {
	appName := "churchpool"
	configPath := config.GetEnv("CONFIG_PATH", "config/carpool.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repositories
	userRepo := userRepository.NewUserRepository(configs, db)
	rideRepo := rideRepository.NewRideRepository(configs, db)
	bookingRepo := bookingRepository.NewBookingRepository(configs, db)
	conversationRepo := messagingRepository.NewConversationRepository(configs, db)
	messageRepo := messagingRepository.NewMessageRepository(configs, db)
	sessionRepo := locationRepository.NewSessionRepository(configs, db)
	liveRepo := locationRepository.NewLiveLocationRepository(redisClient)

	// Gateways
	rideGW := rideGateway.NewRideGW(natsClient)
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	emailGW := bookingGateway.NewEmailGW(configs.Email)
	messagingGW := messagingGateway.NewMessagingGW(natsClient)
	locationGW := locationGateway.NewLocationGW(natsClient)

	// Usecases
	userUC := userUsecase.NewUserUC(configs, userRepo)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, userRepo, rideGW)
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo, rideRepo, userRepo, bookingGW, emailGW)
	messagingUC := messagingUsecase.NewMessagingUC(configs, conversationRepo, messageRepo, userRepo, messagingGW)
	locationUC := locationUsecase.NewLocationUC(configs, sessionRepo, liveRepo, bookingRepo, rideRepo, locationGW)

	// Handlers
	usersHandler := userHandler.NewHandler(
		userHTTP.NewAuthHandler(userUC),
		userHTTP.NewUserHandler(userUC),
		configs)
	ridesHandler := rideHandler.NewHandler(rideHTTP.NewRideHandler(rideUC), configs)
	bookingsHandler := bookingHandler.NewHandler(bookingHTTP.NewBookingHandler(bookingUC), configs)
	messagingSvcHandler := messagingHandler.NewHandler(
		messagingHTTP.NewMessagingHandler(messagingUC),
		messagingNATS.NewNatsHandler(messagingUC),
		configs)

	wsManager := wspkg.NewManager(configs.JWT)
	realtimeSvcHandler := realtimeHandler.NewHandler(
		realtimeHandler.NewWebSocketHandler(wsManager),
		realtimeNATS.NewNatsHandler(wsManager),
		configs)
	locationSvcHandler := locationHandler.NewHandler(locationHTTP.NewLocationHandler(locationUC), configs)

	if err := messagingSvcHandler.InitNATSConsumers(natsClient); err != nil {
		zapLogger.Fatal("Failed to initialize messaging consumers", zap.Error(err))
	}
	defer messagingSvcHandler.Stop()

	if err := realtimeSvcHandler.InitNATSConsumers(natsClient); err != nil {
		zapLogger.Fatal("Failed to initialize realtime consumers", zap.Error(err))
	}
	defer realtimeSvcHandler.Stop()

	e := echo.New()
	e.HideBanner = true

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrpkg.Middleware(nrApp))
	}

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	metrics.Register(e)

	usersHandler.RegisterRoutes(e)
	ridesHandler.RegisterRoutes(e)
	bookingsHandler.RegisterRoutes(e)
	messagingSvcHandler.RegisterRoutes(e)
	locationSvcHandler.RegisterRoutes(e)
	realtimeSvcHandler.RegisterRoutes(e)

	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}
