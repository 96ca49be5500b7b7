package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/cache"
	"github.com/kryva/kryva/internal/config"
	"github.com/kryva/kryva/internal/handler"
	"github.com/kryva/kryva/internal/identity"
	"github.com/kryva/kryva/internal/kafka"
	"github.com/kryva/kryva/internal/observability"
	"github.com/kryva/kryva/internal/outbox"
	"github.com/kryva/kryva/internal/schema"
	"github.com/kryva/kryva/internal/store"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		observability.InitLogger("kryva-account", "info")
		observability.Log.Fatal("config", zap.Error(err))
	}
	cfg, err := config.Load()

	// Observability
	observability.InitLogger(cfg.ServiceName, cfg.LogLevel)
	log := observability.Log
	defer log.Sync()

	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	schema.MustCompileAll()

	if cfg.TracingEnabled {
		tp, err := observability.InitTracer(cfg.ServiceName, cfg.JaegerURL)
		if err != nil {
			log.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer observability.ShutdownTracer(context.Background(), tp)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Document store
	mongoClient, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("mongo connect failed", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	docs := store.NewMongoStore(mongoClient.Database(cfg.MongoDatabase).Collection(store.UsersCollection))

	// Identity database
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping failed", zap.Error(err))
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	cached := cache.NewCachedStore(docs, &cache.ProfileCache{R: rdb}, log)

	outboxRepo := outbox.NewRepository(db)
	ids := identity.NewProvider(db, outboxRepo, cfg.RecentLoginWindow)

	// Kafka producer + outbox publisher
	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	publisher := outbox.NewPublisher(outboxRepo, producer, log)
	go publisher.Start(ctx)

	// Kafka consumer: keeps the profile marked deleted once the identity is gone
	go kafka.StartAccountDeletedConsumer(ctx, cfg.KafkaBrokers, cached, log)

	ready := map[string]observability.Check{
		"mongo":    docs.Ping,
		"postgres": ids.Ping,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}

	// HTTP server for observability (metrics & health)
	obsMux := chi.NewRouter()
	obsMux.Handle("/metrics", promhttp.Handler())
	obsMux.Get("/health/live", observability.HealthLiveHandler)
	obsMux.Get("/health/ready", observability.HealthReadyHandler(ready))
	obsSrv := &http.Server{Addr: cfg.ObsHTTPAddr, Handler: obsMux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("HTTP observability server started", zap.String("addr", cfg.ObsHTTPAddr))
		if err := obsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP observability server failed", zap.Error(err))
		}
	}()

	// HTTP server
	prefH := handler.NewPreferencesHandler(cached, ids, cfg.SuccessMessageTTL)
	mux := handler.NewRouter(prefH, ready, handler.RouterConfig{
		ServiceName:    cfg.ServiceName,
		JWTSecret:      []byte(cfg.JWTSecret),
		JWTIssuer:      cfg.JWTIssuer,
		JWTAudience:    cfg.JWTAudience,
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      cfg.RateLimitRequests,
		RateWindow:     cfg.RateLimitWindow,
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("account HTTP started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("received signal, initiating shutdown")
	cancel() // stop outbox publisher + kafka consumer

	ctxShut, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()

	_ = srv.Shutdown(ctxShut)
	_ = obsSrv.Shutdown(ctxShut)
	log.Info("account service stopped")
}
