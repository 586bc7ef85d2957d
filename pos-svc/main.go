package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restopos/config"
	httpapi "restopos/pos-svc/internal/api/http"
	"restopos/pos-svc/internal/service"
	"restopos/pos-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	settings := config.Load()

	db := config.MustInitPostgres(settings.StatementTimeoutMS)
	defer db.Close()

	if settings.RunMigrations {
		if err := storage.Migrate(db); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, settings.StatusCacheTTL)

	var publisher service.EventPublisher
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(settings.EventsTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(settings.EventsTopic, settings.ProjectorGroupID)
		defer reader.Close()
		go service.NewProjector(reader, cache).Start(ctx)
	} else {
		log.Warn("KAFKA_BROKER not set, events are disabled")
	}

	inventory := service.NewInventoryLedger()
	tables := service.NewTableService(repo, publisher)
	orders := service.NewOrderService(repo, inventory, tables, publisher,
		service.DefaultQRGenerator{BaseURL: settings.ReceiptBaseURL}, cache, settings.TaxRate)
	shifts := service.NewShiftService(repo)
	sync := service.NewSyncService(repo, inventory, cache, publisher)

	handler := httpapi.NewHandler(orders, shifts, tables, sync, cache, httpapi.NewAuthenticator(settings.JWTSecret))
	server := httpapi.NewServer(settings.HTTPAddr, httpapi.NewRouter(handler))
	go httpapi.StartServer(server)

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("failed to shut down server")
	}
}
