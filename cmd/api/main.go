package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/credastra/riskreview/internal/application"
	appai "github.com/credastra/riskreview/internal/application/ai"
	appcases "github.com/credastra/riskreview/internal/application/cases"
	"github.com/credastra/riskreview/internal/application/review"
	"github.com/credastra/riskreview/internal/config"
	domcases "github.com/credastra/riskreview/internal/domain/cases"
	"github.com/credastra/riskreview/internal/domain/documents"
	aiclient "github.com/credastra/riskreview/internal/infra/ai/openai"
	mysqlp "github.com/credastra/riskreview/internal/infra/db/mysql"
	postgresp "github.com/credastra/riskreview/internal/infra/db/postgres"
	"github.com/credastra/riskreview/internal/infra/httpserver"
	"github.com/credastra/riskreview/internal/infra/riskapi"
	minioStore "github.com/credastra/riskreview/internal/infra/storage"
	"github.com/credastra/riskreview/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (mysql default, postgres variant)
	var (
		db       *sql.DB
		caseRepo domcases.Repository
		docRepo  documents.Repository
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		caseRepo = postgresp.NewCaseRepository(db)
		docRepo = postgresp.NewDocumentRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		caseRepo = mysqlp.NewCaseRepository(db)
		docRepo = mysqlp.NewDocumentRepository(db)
	}
	defer db.Close()

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init services
	casesSvc := &appcases.Service{
		Cases:     caseRepo,
		Documents: docRepo,
		Artifacts: store,
		Clock:     application.SystemClock{},
	}
	reviewSvc := &review.Service{
		Analyzer: riskapi.New(cfg.Analysis.BaseURL, &http.Client{Timeout: 30 * time.Second}),
	}
	var aiSvc *appai.Service
	if cfg.OpenAI.APIKey != "" {
		aiSvc = appai.NewService(aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	}

	// init router
	mux := chi.NewRouter()
	if len(cfg.Auth.APIKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	}
	if cfg.RateLimit.Capacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	}
	mux.Get("/healthz", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}))
	mux.Get("/readyz", middleware.ReadinessHandler)
	mux.Mount("/", httpserver.NewRouter(casesSvc, reviewSvc, aiSvc))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
