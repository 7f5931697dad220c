package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/santoshmanaguli/finpay-dashboard/configs"
	"github.com/santoshmanaguli/finpay-dashboard/internal/handlers"
	"github.com/santoshmanaguli/finpay-dashboard/internal/logger"
	"github.com/santoshmanaguli/finpay-dashboard/internal/routes"
	"github.com/santoshmanaguli/finpay-dashboard/internal/seed"
	"github.com/santoshmanaguli/finpay-dashboard/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := configs.LoadConfig(); err != nil {
		logger.Log.Fatal("configuration error", zap.Error(err))
	}

	db, err := store.Open(configs.AppConfig.DB.DSN)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Log.Info("connected to the database")

	if err := store.Migrate(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}
	logger.Log.Info("migrations loaded")

	if err := seed.Run(db); err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}

	st := store.New(db)
	router := routes.New(handlers.New(st), configs.AppConfig.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         configs.AppConfig.Server.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error("db close skipped, reason:", zap.Error(err))
	} else {
		sqlDB.Close()
		logger.Log.Info("db closed")
	}

	logger.Log.Info("server stopped")
}
