package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rretrocar/storefront-go/internal/cart"
	"github.com/rretrocar/storefront-go/internal/catalog"
	"github.com/rretrocar/storefront-go/internal/config"
	"github.com/rretrocar/storefront-go/internal/db"
	"github.com/rretrocar/storefront-go/internal/events"
	"github.com/rretrocar/storefront-go/internal/graphql"
	httpserver "github.com/rretrocar/storefront-go/internal/http"
	"github.com/rretrocar/storefront-go/internal/order"
	"github.com/rretrocar/storefront-go/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DBDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer database.Close()

	rabbitConn := events.MustDial(cfg.RabbitURL)
	defer rabbitConn.Close()

	publisher, err := events.NewPublisher(rabbitConn)
	if err != nil {
		logger.Fatalf("failed to create order events publisher: %v", err)
	}

	gql := graphql.NewClient(cfg.GraphQLEndpoint, &http.Client{Timeout: cfg.UpstreamTimeout})
	catalogClient := catalog.NewClient(gql)
	orderClient := order.NewClient(gql)

	cartService := cart.NewService(storage.NewCartStore(database), logger)
	orderService := order.NewService(orderClient, cartService, publisher, logger)

	mux := httpserver.NewRouter(cartService, catalogClient, orderService, cfg.CORSAllowOrigins, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
