package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sajilorent/rental-service/config"
	"github.com/sajilorent/rental-service/internal/cache"
	"github.com/sajilorent/rental-service/internal/handler"
	"github.com/sajilorent/rental-service/internal/repository"
	"github.com/sajilorent/rental-service/internal/server"
	"github.com/sajilorent/rental-service/internal/service"
	"github.com/sajilorent/rental-service/internal/storage"
	"github.com/sajilorent/rental-service/migrations"
	"github.com/sajilorent/rental-service/pkg/kafka"
	"github.com/sajilorent/rental-service/pkg/logger"
	"github.com/sajilorent/rental-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "marketplace")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	views := cache.NewViews(cfg.Redis, log)
	defer views.Close() //nolint:errcheck

	images, err := storage.NewImageStore(ctx, cfg.S3)
	if err != nil {
		log.Fatal("image store init", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	defer producer.Close() //nolint:errcheck
	publisher := service.NewEventPublisher(producer)

	listingRepo := repository.NewListingRepository(db, log)
	rentalRepo := repository.NewRentalRepository(db, log)
	cartRepo := repository.NewCartRepository(db, log)
	favoriteRepo := repository.NewFavoriteRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	sellerRepo := repository.NewSellerRepository(db, log)
	promoRepo := repository.NewPromoRepository(db, log)
	paymentRepo := repository.NewPaymentRepository(db, log)
	studentRepo := repository.NewStudentRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)

	listingSvc := service.NewListingService(listingRepo, views, images, publisher, log)
	statsSvc := service.NewStatsService(sellerRepo, log)

	h := handler.New(handler.Services{
		Auth:     service.NewAuthService(userRepo, cfg.Auth, log),
		Listing:  listingSvc,
		Rental:   service.NewRentalService(db, rentalRepo, listingRepo, cartRepo, paymentRepo, publisher, log),
		Cart:     service.NewCartService(cartRepo, listingRepo, promoRepo, studentRepo, log),
		Favorite: service.NewFavoriteService(favoriteRepo, listingRepo, log),
		Promo:    service.NewPromoService(promoRepo, log),
		Payment:  service.NewPaymentService(paymentRepo, log),
		Student:  service.NewStudentService(studentRepo, log),
		Message:  service.NewMessageService(messageRepo, listingRepo, log),
		Stats:    statsSvc,
		Admin:    service.NewAdminService(userRepo, log),
	}, cfg.Auth, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		return kafka.Consume(ctx, consumer, handler.NewConsumer(statsSvc.Apply, log), log, kafka.EventsTopic)
	})
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ViewFlushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				listingSvc.FlushViews(ctx)
			case <-ctx.Done():
				listingSvc.FlushViews(context.Background())
				return nil
			}
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("app stopped", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
