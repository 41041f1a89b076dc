package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/healthwatch/vital-monitor/internal/risk"
	mlservicev1 "github.com/healthwatch/vital-monitor/proto/mlservice"
)

func main() {
	log.Printf("[INFO] Starting ML stub server...")

	port := os.Getenv("ML_STUB_PORT")
	if port == "" {
		port = "50052"
	}

	grpcServer := grpc.NewServer()

	mlservicev1.RegisterMLServiceServer(grpcServer, &risk.MLStub{})

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	address := fmt.Sprintf(":%s", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatalf("[FATAL] Failed to listen on %s: %v", address, err)
	}

	log.Printf("[INFO] gRPC server listening on %s", address)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("mlservice.v1.MLService", grpc_health_v1.HealthCheckResponse_SERVING)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			serverErrChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		log.Printf("[ERROR] Server error: %v", err)

	case sig := <-shutdownChan:
		log.Printf("[INFO] Received signal %v, starting graceful shutdown...", sig)

		// Помечает все сервисы как NOT_SERVING
		healthServer.Shutdown()

		grpcServer.GracefulStop()
	}

	log.Printf("[INFO] Server stopped")
}
