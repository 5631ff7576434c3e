package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/api"
	"github.com/samandr77/billing/internal/printer"
	"github.com/samandr77/billing/internal/repository"
	"github.com/samandr77/billing/internal/service"
	"github.com/samandr77/billing/pkg/broker"
	"github.com/samandr77/billing/pkg/config"
	"github.com/samandr77/billing/pkg/logger"
	"github.com/samandr77/billing/pkg/postgres"
)

type producer interface {
	service.Producer
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	decimal.MarshalJSONWithoutQuotes = true

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	var p producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		p = broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceCreatedTopic)
	}
	defer p.Close()

	s := service.New(repo, p)

	handler := api.NewHandler(s, printer.New(cfg.Invoice.Currency))
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "kafka_enabled", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
