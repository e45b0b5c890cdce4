package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"walletstate/internal/app/service"
	"walletstate/internal/domain/entity"
	"walletstate/internal/infrastructure/configloader"
	"walletstate/internal/infrastructure/eventhub"
	"walletstate/internal/infrastructure/memstore"
	"walletstate/internal/infrastructure/metrics"
	networkdefinition "walletstate/internal/infrastructure/network/definition"
	"walletstate/internal/infrastructure/populated"
	"walletstate/internal/infrastructure/restapi"
	"walletstate/internal/infrastructure/stateloader"
	"walletstate/internal/infrastructure/storeapi"
	"walletstate/internal/infrastructure/theme"
	"walletstate/internal/pkg/logger"
	"walletstate/internal/pkg/taskqueue"
	"walletstate/internal/pkg/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", utils.GetEnv("CONFIG_PATH", "config/config.yml"), "path to the YAML config file")
	flag.Parse()

	cfg, err := configloader.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", "path", *configPath, "error", err)
	}
	if err := logger.Init(cfg.Logging.Level); err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	defer logger.Sync()

	appLogger := logger.NewSlogAdapter()
	appLogger.Info("Configuration loaded", "path", *configPath, "log_level", cfg.Logging.Level)

	collectors := metrics.MustNew(prometheus.DefaultRegisterer)

	store := memstore.New()
	tracker := populated.New(time.Duration(cfg.Populated.CleanupIntervalSeconds)*time.Second, logger.NewSlogAdapter("component", "populated"))
	store.Set(storeapi.ColorwayPath, entity.Colorway(cfg.State.Colorway))
	if cfg.State.SeedFile != "" {
		loader := stateloader.NewLoader(store, tracker, cfg.State.NetworkType, logger.NewSlogAdapter("component", "stateloader"))
		if err := loader.LoadFile(cfg.State.SeedFile); err != nil {
			logger.Fatal("Failed to load state seed", "error", err)
		}
	} else {
		networkdefinition.Seed(store, cfg.State.NetworkType, appLogger)
	}

	reader := storeapi.NewReader(store, cfg.State.NetworkType, logger.NewSlogAdapter("component", "storeapi"))
	queue := taskqueue.New(logger.NewSlogAdapter("component", "taskqueue"), collectors.ObserveDeferred)
	hub := eventhub.New(eventhub.Settings{
		SubscriberBuffer: cfg.Events.SubscriberBuffer,
		HistorySize:      cfg.Events.HistorySize,
	}, collectors, logger.NewSlogAdapter("component", "eventhub"))

	chainsObserver, err := service.NewChainsObserver(reader, theme.Resolve, queue, hub, logger.NewSlogAdapter("observer", "chains"))
	if err != nil {
		logger.Fatal("Failed to build initial chain snapshot", "error", err)
	}
	originObserver := service.NewOriginChainObserver(reader, hub, logger.NewSlogAdapter("observer", "origins"))
	watcher := service.NewStateWatcher(store, service.WatcherSettings{
		TicksPerSecond: cfg.Scheduler.TicksPerSecond,
		Burst:          cfg.Scheduler.Burst,
	}, collectors, logger.NewSlogAdapter("component", "watcher"), chainsObserver, originObserver)

	feeService := service.NewFeeService(reader, service.FeeSettings{
		WarningThresholdUSD:   decimal.NewFromFloat(cfg.Fees.WarningThresholdUSD),
		NativeDisplayDecimals: cfg.Fees.NativeDisplayDecimals,
	}, logger.NewSlogAdapter("service", "fees"))
	balanceService := service.NewBalanceService(reader, tracker, time.Now, logger.NewSlogAdapter("service", "balances"))

	gin.SetMode(gin.ReleaseMode)
	handler := restapi.NewHandler(restapi.Dependencies{
		Chains:       chainsObserver,
		Events:       hub,
		Fees:         feeService,
		Balances:     balanceService,
		Reader:       reader,
		Store:        store,
		Populated:    tracker,
		NetworkType:  cfg.State.NetworkType,
		PopulatedTTL: time.Duration(cfg.Populated.TTLSeconds) * time.Second,
		Logger:       logger.NewSlogAdapter("component", "restapi"),
	})
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      restapi.SetupRouter(handler, prometheus.DefaultGatherer, appLogger),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return watcher.Run(gctx) })
	g.Go(func() error { return queue.Run(gctx) })
	g.Go(func() error {
		appLogger.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if n := queue.Drain(); n > 0 {
		appLogger.Info("Drained pending notifications", "count", n)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Service stopped with error", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Service stopped")
}
