package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/joao-fontenele/salmo-storefront/internal/cart"
	"github.com/joao-fontenele/salmo-storefront/internal/catalog"
	"github.com/joao-fontenele/salmo-storefront/internal/messaging"
	"github.com/joao-fontenele/salmo-storefront/internal/orders"
	"github.com/joao-fontenele/salmo-storefront/internal/session"
	"github.com/joao-fontenele/salmo-storefront/internal/telemetry"
)

const serviceVersion = "0.1.0"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, "storefront", serviceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("storefront", serviceVersion)
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	if err := otelruntime.Start(); err != nil {
		logger.Error("failed to start runtime metrics", "error", err)
		os.Exit(1)
	}

	postgresURL := os.Getenv("POSTGRES_URL")
	if postgresURL == "" {
		logger.Error("POSTGRES_URL environment variable is required")
		os.Exit(1)
	}

	db, err := telemetry.OpenDB("postgres", postgresURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var emails *session.EmailStore
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		emails = session.NewEmailStore(redis.NewClient(&redis.Options{Addr: redisAddr}))
	}

	var producer *messaging.Producer
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		brokers := strings.Split(kafkaBrokers, ",")
		producer = messaging.NewProducer(brokers, messaging.TopicOrderPlaced)
		defer func() { _ = producer.Close() }()
	}

	carts := cart.NewStore()

	catalogHandler := catalog.NewHandler(catalog.NewCatalogRepository(db), logger)
	orderHandler := orders.NewHandler(orders.NewOrderRepository(db), producer, carts, emails, logger)
	cartHandler := cart.NewHandler(carts, emails, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", telemetry.WithHTTPRoute(catalogHandler.HandleListByBrand))
	mux.HandleFunc("GET /api/products/featured", telemetry.WithHTTPRoute(catalogHandler.HandleFeatured))
	mux.HandleFunc("GET /api/products/new", telemetry.WithHTTPRoute(catalogHandler.HandleNewArrivals))
	mux.HandleFunc("GET /api/products/{id}", telemetry.WithHTTPRoute(catalogHandler.HandleGet))
	mux.HandleFunc("POST /api/orders", telemetry.WithHTTPRoute(orderHandler.HandleCreate))
	mux.HandleFunc("GET /api/orders", telemetry.WithHTTPRoute(orderHandler.HandleList))
	mux.HandleFunc("GET /api/cart", telemetry.WithHTTPRoute(cartHandler.HandleGet))
	mux.HandleFunc("POST /api/cart/items", telemetry.WithHTTPRoute(cartHandler.HandleAddItem))
	mux.HandleFunc("PATCH /api/cart/items/{productId}", telemetry.WithHTTPRoute(cartHandler.HandleUpdateQuantity))
	mux.HandleFunc("DELETE /api/cart/items/{productId}", telemetry.WithHTTPRoute(cartHandler.HandleRemoveItem))
	mux.HandleFunc("DELETE /api/cart", telemetry.WithHTTPRoute(cartHandler.HandleClear))
	mux.Handle("GET /metrics", metricsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr: ":" + port,
		Handler: otelhttp.NewHandler(mux, "storefront",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
