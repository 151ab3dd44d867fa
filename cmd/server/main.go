package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"metargb/datepicker-service/internal/config"
	"metargb/datepicker-service/internal/converter"
	"metargb/datepicker-service/internal/handler"
	"metargb/datepicker-service/internal/middleware"
	"metargb/datepicker-service/internal/service"
	"metargb/datepicker-service/pkg/logger"
	"metargb/datepicker-service/pkg/metrics"
)

func main() {
	// Load .env before the logger so LOG_LEVEL applies.
	envMissing := godotenv.Load() != nil

	log := logger.NewLogger("datepicker-service")
	log.Info("Starting DatePicker Service...")
	if envMissing {
		log.Debug("No .env file found, using process environment")
	}

	cfg := config.LoadConfig()

	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		log.WithField("timezone", cfg.Calendar.Timezone).Warn("Unknown timezone, falling back to UTC")
		location = time.UTC
	}

	// Initialize services
	serviceMetrics := metrics.NewMetrics("datepicker")
	conv := converter.New(log, serviceMetrics)
	datePickerService := service.NewDatePickerService(conv, location)

	// HTTP server
	httpHandler := handler.NewDatePickerHandler(datePickerService)
	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	chain := middleware.Logging(log)(
		middleware.CORS(cfg.CORS.AllowedOrigins)(
			middleware.Metrics(serviceMetrics)(mux)))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: chain,
	}

	go func() {
		log.WithField("port", cfg.Server.HTTPPort).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("error", err).Fatal("Failed to serve HTTP")
		}
	}()

	// gRPC server for health probes
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(log),
			metrics.UnaryServerInterceptor(serviceMetrics),
		),
	)
	healthServer := health.NewServer()
	healthServer.SetServingStatus("datepicker-service", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// Enable reflection for debugging
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		log.WithField("port", cfg.Server.GRPCPort).WithField("error", err).Fatal("Failed to listen on gRPC port")
	}

	go func() {
		log.WithField("port", cfg.Server.GRPCPort).Info("gRPC health server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.WithField("error", err).Fatal("Failed to serve gRPC")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	healthServer.SetServingStatus("datepicker-service", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithField("error", err).Error("HTTP shutdown error")
	}
	grpcServer.GracefulStop()

	log.Info("Server stopped")
}
