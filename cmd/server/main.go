package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"barista/internal/admin"
	"barista/internal/commons"
	"barista/internal/config"
	"barista/internal/customer"
	"barista/internal/dashboard"
	"barista/internal/infrastructure/logger"
	"barista/internal/infrastructure/mysql"
	"barista/internal/menu"
	"barista/internal/notifier"
	"barista/internal/rewards"
	"barista/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var reminders notifier.ReminderPublisher = notifier.NoopPublisher{}
	if cfg.Broker.Host != "" {
		publisher, err := notifier.Dial(cfg.Broker, zapLogger)
		if err != nil {
			zapLogger.Fatal("connecting to broker", zap.Error(err))
		}
		reminders = publisher
		zapLogger.Info("broker connected", zap.String("exchange", cfg.Broker.Exchange))
	}
	defer reminders.Close()

	customerModule := customer.NewModule(db, cfg, reminders, zapLogger)
	menuCtrl := menu.NewModule(db, zapLogger)
	rewardsCtrl := rewards.NewController(rewards.NewOverviewUseCase(customerModule.Repo), zapLogger)
	dashboardCtrl := dashboard.NewController(dashboard.NewStatsUseCase(customerModule.Repo), zapLogger)

	adminSvc := admin.NewService(admin.NewMySQLAdminRepository(db), cfg.Auth, zapLogger)
	adminCtrl := admin.NewController(adminSvc, zapLogger)

	router := server.NewRouter(server.Controllers{
		Customer:  customerModule,
		Menu:      menuCtrl,
		Rewards:   rewardsCtrl,
		Dashboard: dashboardCtrl,
		Admin:     adminCtrl,
		AdminAuth: adminSvc,
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
