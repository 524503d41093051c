package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/pribylovaa/go-classifieds/internal/cache"
	"github.com/pribylovaa/go-classifieds/internal/config"
	apihttp "github.com/pribylovaa/go-classifieds/internal/http"
	"github.com/pribylovaa/go-classifieds/internal/http/handlers"
	"github.com/pribylovaa/go-classifieds/internal/metrics"
	"github.com/pribylovaa/go-classifieds/internal/service"
	"github.com/pribylovaa/go-classifieds/internal/storage/postgres"
	"github.com/pribylovaa/go-classifieds/internal/storage/status"
	"github.com/pribylovaa/go-classifieds/pkg/interceptors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting classifieds-api", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Состояние БД: метрика следит за ним с самого старта.
	m := metrics.New(prometheus.DefaultRegisterer)
	state := status.New()
	state.OnChange(func(up bool) {
		m.SetStoreUp(up)
		log.Info("store_state_changed", slog.Bool("up", up))
	})

	store, err := postgres.New(rootCtx, cfg.DB, cfg.Timeouts.Query, state)
	if err != nil {
		log.Error("postgres_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	// Стартовая проба: ограниченное число попыток; неудача не останавливает процесс.
	if err := postgres.Probe(rootCtx, store, cfg.DB.ProbeAttempts, cfg.DB.ProbeBackoff, log); err != nil {
		log.Error("postgres_unreachable_serving_503", slog.String("err", err.Error()))
	}

	monitor, err := postgres.NewMonitor(store, cfg.DB.MonitorSpec, cfg.Timeouts.Query, log)
	if err != nil {
		log.Error("postgres_monitor_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	monitor.Start()

	listingCache := newListingCache(rootCtx, cfg, log)
	defer func() {
		if cerr := listingCache.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	svc := service.New(store, listingCache, *cfg)
	log.Info("service_initialized")

	// gRPC health: статус повторяет доступность БД.
	var (
		grpcServer *grpc.Server
		grpcErrCh  <-chan error
	)
	if cfg.GRPC.Enabled {
		grpcServer, grpcErrCh, err = startHealthServer(cfg, log, state)
		if err != nil {
			log.Error("grpc_listen_failed", slog.String("addr", cfg.GRPC.Addr()), slog.String("err", err.Error()))
			os.Exit(1)
		}
	}

	apiHandler := apihttp.NewRouter(svc, apihttp.Options{
		Logger:      log,
		Timeout:     cfg.Timeouts.Service,
		BasePath:    cfg.HTTP.BasePath,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Metrics:     m,
		Store:       state,
		Handlers: handlers.Options{
			ProductsMaxAge:  cfg.Cache.ProductsMaxAge,
			DirectoryMaxAge: cfg.Cache.DirectoryMaxAge,
		},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if state.Up() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("http_listen_start", slog.String("addr", httpAddr), slog.String("base_path", cfg.HTTP.BasePath))

	httpErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
		close(httpErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-httpErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	case err := <-grpcErrCh:
		if err != nil {
			log.Error("grpc_serve_failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	if grpcServer != nil {
		stopGRPC(shutdownCtx, grpcServer, log)
	}

	monitor.Stop(shutdownCtx)

	log.Info("service_stopped")
}

// newListingCache — Redis, если задан cache.redis_url; иначе (или при недоступном Redis) заглушка.
// Кэш — оптимизация, поэтому его недоступность не мешает старту.
func newListingCache(ctx context.Context, cfg *config.Config, log *slog.Logger) cache.ListingCache {
	if cfg.Cache.RedisURL == "" {
		log.Info("listing_cache_disabled")
		return cache.Noop{}
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := cache.NewRedisCache(cctx, cfg.Cache.RedisURL, cfg.Cache.Prefix)
	if err != nil {
		log.Warn("listing_cache_unavailable", slog.String("err", err.Error()))
		return cache.Noop{}
	}

	log.Info("listing_cache_enabled", slog.Duration("ttl", cfg.Cache.TTL))
	return c
}

// startHealthServer поднимает gRPC-сервер только с grpc.health.v1 и метриками go-grpc-prometheus.
func startHealthServer(cfg *config.Config, log *slog.Logger, state *status.State) (*grpc.Server, <-chan error, error) {
	grpc_prometheus.EnableHandlingTimeHistogram()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.Recover(log),
			interceptors.UnaryLoggingInterceptor(log, interceptors.WithQuietMethods(interceptors.HealthCheckMethod)),
			interceptors.WithTimeout(cfg.Timeouts.Service),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamLoggingInterceptor(log),
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	state.OnChange(func(up bool) {
		st := healthpb.HealthCheckResponse_NOT_SERVING
		if up {
			st = healthpb.HealthCheckResponse_SERVING
		}
		hs.SetServingStatus("", st)
	})

	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}

	grpc_prometheus.Register(grpcServer)

	addr := cfg.GRPC.Addr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	log.Info("grpc_listen_start", slog.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
		close(errCh)
	}()

	return grpcServer, errCh, nil
}

func stopGRPC(ctx context.Context, s *grpc.Server, log *slog.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc_stopped")
	case <-ctx.Done():
		log.Warn("grpc_force_stop")
		s.Stop()
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
