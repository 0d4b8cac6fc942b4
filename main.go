package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api/handlers"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()
	defer zap.L().Sync() //nolint:errcheck

	if err := a.Config.Validate(); err != nil {
		zap.S().With(zap.Error(err)).Fatal("invalid configuration")
	}
	if err := a.Initialize(); err != nil { //initialize database and router
		zap.S().With(zap.Error(err)).Fatal("failed to initialize")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.S().Infow("health-tracker-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().With(zap.Error(err)).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().With(zap.Error(err)).Error("failed to shut down server")
	}
	if err := a.Shutdown(shutdownCtx); err != nil {
		zap.S().With(zap.Error(err)).Error("failed to disconnect from database")
	}
}
