package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/username/fopzvit/src/config"
	"github.com/username/fopzvit/src/database"
	"github.com/username/fopzvit/src/handlers"
	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/parsers"
	"github.com/username/fopzvit/src/processors"
	"github.com/username/fopzvit/src/rates"
	"github.com/username/fopzvit/src/services"
	"github.com/username/fopzvit/src/store"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Requested-With")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("fopzvit backend server starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	calcCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)
	rateCache := cache.New(config.Cfg.RateCacheTTL, 2*config.Cfg.RateCacheTTL)

	paymentStore := store.NewPaymentStore(database.DB)
	accumulatedStore := store.NewAccumulatedDataStore(database.DB)
	profileStore := store.NewProfileStore(database.DB)
	esvStore := store.NewESVSettingsStore(database.DB)
	importConfigStore := store.NewImportConfigStore(database.DB)

	ratesClient := rates.NewClient(config.Cfg.NBUAPIBaseURL, config.Cfg.RateFetchTimeout, rateCache)
	accumulator := processors.NewAccumulationProcessor(accumulatedStore)
	excelParser := parsers.NewExcelParser()

	paymentService := services.NewPaymentService(
		paymentStore, accumulator, ratesClient, excelParser,
		importConfigStore, calcCache,
	)
	reportService := services.NewReportService(profileStore, accumulatedStore, esvStore, calcCache)
	profileService := services.NewProfileService(profileStore, calcCache)
	esvService := services.NewESVService(esvStore, accumulatedStore, calcCache)
	exportService := services.NewExportService(paymentStore, profileStore, accumulatedStore, importConfigStore)

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	importConfigHandler := handlers.NewImportConfigHandler(importConfigStore)
	reportHandler := handlers.NewReportHandler(reportService, exportService)
	profileHandler := handlers.NewProfileHandler(profileService)
	esvHandler := handlers.NewESVHandler(esvService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/payments", paymentHandler.HandleListPayments)
	apiRouter.HandleFunc("POST /api/payments", paymentHandler.HandleAddPayment)
	apiRouter.HandleFunc("DELETE /api/payments/{id}", paymentHandler.HandleDeletePayment)
	apiRouter.HandleFunc("POST /api/payments/import", paymentHandler.HandleImportStatement)

	apiRouter.HandleFunc("GET /api/import-configs", importConfigHandler.HandleListConfigs)
	apiRouter.HandleFunc("GET /api/import-configs/{id}", importConfigHandler.HandleGetConfig)
	apiRouter.HandleFunc("POST /api/import-configs", importConfigHandler.HandleSaveConfig)
	apiRouter.HandleFunc("DELETE /api/import-configs/{id}", importConfigHandler.HandleDeleteConfig)

	apiRouter.HandleFunc("GET /api/profile", profileHandler.HandleGetProfile)
	apiRouter.HandleFunc("PUT /api/profile", profileHandler.HandleUpdateProfile)

	apiRouter.HandleFunc("GET /api/esv/settings", esvHandler.HandleGetSettings)
	apiRouter.HandleFunc("PUT /api/esv/settings", esvHandler.HandleUpdateSettings)
	apiRouter.HandleFunc("POST /api/esv/settings/bulk", esvHandler.HandleBulkUpdateMonths)

	apiRouter.HandleFunc("GET /api/reports/accumulated", reportHandler.HandleGetAccumulatedData)
	apiRouter.HandleFunc("GET /api/reports/summary", reportHandler.HandleGetQuarterSummary)
	apiRouter.HandleFunc("GET /api/reports/calculation", reportHandler.HandleGetCalculation)
	apiRouter.HandleFunc("GET /api/reports/declaration", reportHandler.HandleDownloadDeclaration)
	apiRouter.HandleFunc("GET /api/reports/declaration/preview", reportHandler.HandleDeclarationPreview)
	apiRouter.HandleFunc("GET /api/reports/esv", reportHandler.HandleDownloadESVReport)
	apiRouter.HandleFunc("GET /api/reports/esv/preview", reportHandler.HandleESVPreview)
	apiRouter.HandleFunc("GET /api/export", reportHandler.HandleExportAll)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "fopzvit backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
