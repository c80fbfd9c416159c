package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bidhouse/api"
)

func main() {
	// .env 只是本機開發用，不存在時直接忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Fail to load .env file", slog.Any("error", err))
	}

	args := ParseArgs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: args.Level()}))
	slog.SetDefault(logger)

	if err := args.Validate(); err != nil {
		logger.Error("Invalid arguments", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := api.NewServer(ctx, args.ServerConfig, logger)
	if err != nil {
		logger.Error("Fail to create server", slog.Any("error", err))
		os.Exit(1)
	}
	server.Start()
	defer server.Close()

	router := gin.Default()
	server.RegisterHandlers(router)
	httpServer := &http.Server{
		Addr:    args.ServerURL,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", slog.String("addr", args.ServerURL))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), args.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Fail to shutdown http server", slog.Any("error", err))
	}
}
