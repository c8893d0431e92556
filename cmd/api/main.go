package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"threadpress/internal/cache"
	"threadpress/internal/config"
	"threadpress/internal/db"
	"threadpress/internal/httpserver"
	"threadpress/internal/mail"
	"threadpress/internal/metrics"
	contactrepo "threadpress/internal/repository/contact"
	newsletterrepo "threadpress/internal/repository/newsletter"
	orderrepo "threadpress/internal/repository/order"
	productrepo "threadpress/internal/repository/product"
	shippingrepo "threadpress/internal/repository/shippingrule"
	"threadpress/internal/service/catalog"
	contactsvc "threadpress/internal/service/contact"
	newslettersvc "threadpress/internal/service/newsletter"
	ordersvc "threadpress/internal/service/order"
	"threadpress/internal/shipping"
	"threadpress/internal/upload"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	uploader, err := upload.NewDisk(cfg.UploadDir, cfg.FileURLHost)
	if err != nil {
		logger.Fatalf("init upload dir: %v", err)
	}

	var sender ordersvc.Sender
	if cfg.MailConfigured() {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		logger.Printf("smtp not configured, confirmation emails disabled")
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	catalogService := catalog.New(productRepo)
	shippingRepo := shippingrepo.NewPostgres(dbpool, logger)
	quoter := shipping.NewQuoter(shippingRepo, logger)
	debounce := shipping.NewDebouncer(quoter, cfg.ShippingDebounce)
	defer debounce.Stop()
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, uploader, sender, m, cfg.OrderPrefix, logger)
	contactRepo := contactrepo.NewPostgres(dbpool, logger)
	contactService := contactsvc.New(contactRepo)
	newsletterRepo := newsletterrepo.NewPostgres(dbpool, logger)
	newsletterService := newslettersvc.New(newsletterRepo)
	cartPersister := cache.NewRedisPersister(rdb)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		DB:            dbpool,
		Redis:         rdb,
		CatalogSvc:    catalogService,
		OrderSvc:      orderService,
		ContactSvc:    contactService,
		NewsletterSvc: newsletterService,
		Debounce:      debounce,
		CartPersister: cartPersister,
		Metrics:       m,
		PromRegistry:  registry,
		CORSOrigins:   cfg.CORSOrigins,
		UploadDir:     cfg.UploadDir,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
