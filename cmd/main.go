package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/milkledger/server/internal/api/http/router"
	"github.com/milkledger/server/internal/config"
	"github.com/milkledger/server/internal/identity"
	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/repository"
	"github.com/milkledger/server/internal/service"
	"github.com/milkledger/server/internal/session"
	"github.com/milkledger/server/internal/store"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	snapshots, err := repository.New(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to initialize snapshot store", "error", err)
	}

	st := store.New(ctx, snapshots, logger)
	idgen := identity.NewUUID()

	courierStore := store.NewCouriers(st)
	deliveryStore := store.NewDeliveries(st)
	depositStore := store.NewDeposits(st)

	courierService := service.NewCourier(courierStore, idgen, logger)
	deliveryService := service.NewDelivery(deliveryStore, courierStore, idgen, logger)
	depositService := service.NewDeposit(depositStore, courierStore, idgen, logger)
	statsService := service.NewStats(courierStore, deliveryStore, depositStore, logger)
	authService := service.NewAuth(
		session.NewMemory(),
		service.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password},
		cfg.Auth.SessionTTL,
		idgen,
		logger,
	)

	r := router.New(courierService, deliveryService, depositService, statsService, authService, st, cfg.Auth.Enabled, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: r.Register(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPeriodicSave(ctx, st, cfg.Store.SaveInterval, logger)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	if err := st.Flush(shutdownCtx); err != nil {
		logger.Error("final snapshot save failed", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// runPeriodicSave flushes the snapshot on a timer as a durability safety
// net. A failed save is logged and the timer keeps going.
func runPeriodicSave(ctx context.Context, st *store.Store, interval time.Duration, logger *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := st.Flush(ctx); err != nil {
				logger.Error("periodic snapshot save failed", "error", err)
				continue
			}
			logger.Debug("periodic snapshot saved")
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
