package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/martinvojtus/mv-backend/configs"
	"github.com/martinvojtus/mv-backend/internal/media"
	"github.com/martinvojtus/mv-backend/internal/post"
	"github.com/martinvojtus/mv-backend/internal/shared/httpx"
	"github.com/martinvojtus/mv-backend/pkg/di"
)

// initOTEL sets up OTLP trace export. Returns a no-op shutdown when no
// collector endpoint is configured.
func initOTEL(ctx context.Context, endpoint string) func(context.Context) error {
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("blog-backend"),
	))
	tp := trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

// App builds the full HTTP surface. Reads are public; every mutation sits
// behind the admin-password gate.
func App(cfg *configs.Config, c *di.Container) http.Handler {
	ph := post.NewHandler(c.PostService)
	mh := media.NewHandler(c.MediaService)
	admin := httpx.AdminMiddleware(cfg.AdminPassword)

	traced := func(name string, fn httpx.HandlerFunc) http.Handler {
		return otelhttp.NewHandler(httpx.Wrap(fn), name)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("GET /posts", traced("posts.list", ph.List))
	mux.Handle("POST /posts", admin(traced("posts.create", ph.Create)))
	mux.Handle("PUT /posts/{id}", admin(traced("posts.update", ph.Update)))
	mux.Handle("DELETE /posts/{id}", admin(traced("posts.delete", ph.Delete)))
	mux.Handle("DELETE /posts", admin(traced("posts.delete_all", ph.DeleteAll)))
	mux.Handle("POST /upload-image", admin(traced("media.upload", mh.Upload)))

	return httpx.CORS(mux)
}

func main() {
	ctx := context.Background()

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	shutdown := initOTEL(ctx, cfg.OTLPEndpoint)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	container, err := di.BuildContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           App(cfg, container),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("blog backend listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
