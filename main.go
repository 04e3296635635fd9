package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/100adim/project-cost-manager/internal/api"
	"github.com/100adim/project-cost-manager/internal/config"
	"github.com/100adim/project-cost-manager/internal/handler"
	"github.com/100adim/project-cost-manager/internal/repository"
	"github.com/100adim/project-cost-manager/internal/service"
)

type stores struct {
	users   repository.User
	costs   repository.Cost
	reports repository.Report
	logs    repository.RequestLog
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading the environment only")
	}

	cfg, err := config.Parse()
	if err != nil {
		logrus.Fatal(err)
	}
	setupLogger(cfg.Log)

	loc, err := cfg.Location()
	if err != nil {
		logrus.Fatal(err)
	}

	var s stores
	switch cfg.Storage {
	case config.StorageMemory:
		logrus.Warn("using in-memory storage, data is lost on restart")
		s = stores{
			users:   repository.NewUserMemory(),
			costs:   repository.NewCostMemory(),
			reports: repository.NewReportMemory(),
			logs:    repository.NewRequestLogMemory(),
		}
	default:
		client, err := connectMongo(ctx, cfg.Mongo)
		if err != nil {
			logrus.Fatal(err)
		}
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer disconnectCancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logrus.Errorf("couldn't disconnect from mongo: %v", err)
			}
		}()

		db := client.Database(cfg.Mongo.Database)
		indexCtx, indexCancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
		err = repository.EnsureIndexes(indexCtx, db)
		indexCancel()
		if err != nil {
			logrus.Fatal(err)
		}
		s = stores{
			users:   repository.NewUserMongo(db),
			costs:   repository.NewCostMongo(db),
			reports: repository.NewReportMongo(db),
			logs:    repository.NewRequestLogMongo(db),
		}
	}

	calendar := service.NewCalendar(loc)
	validate := service.NewValidator()

	costService := service.NewCostService(s.users, s.costs, calendar, validate)
	userService := service.NewUserService(s.users, costService, calendar, validate)
	reportService := service.NewReportService(s.users, s.costs, s.reports, calendar, validate)
	requestLogService := service.NewRequestLogService(s.logs, calendar)

	h := handler.New(userService, costService, reportService, requestLogService, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: api.NewRouter(h, requestLogService, cfg.HTTP.RequestTimeout),
	}

	go func() {
		logrus.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("server stopped: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	logrus.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server couldn't shut down gracefully: %v", err)
	}
}

func connectMongo(ctx context.Context, cfg config.Mongo) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}
	logrus.Infof("connected to mongo database %s", cfg.Database)
	return client, nil
}

func setupLogger(cfg config.Log) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
