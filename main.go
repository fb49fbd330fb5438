package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blink/action"
	"blink/config"
)

func main() {
	cfg := config.FromEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	svc := action.NewService(rpc.New(cfg.RPCURL), cfg, logger)

	// Probe the RPC node once at startup. A lagging node is not fatal, the
	// handle recovers on its own.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.HealthCheck(ctx); err != nil {
		logger.Warn("rpc node health check failed",
			zap.String("rpc_url", cfg.RPCURL),
			zap.Error(err),
		)
	}
	cancel()

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: action.NewRouter(svc),
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Addr),
			zap.String("cluster", cfg.Cluster),
			zap.String("action", action.TransferPath),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
