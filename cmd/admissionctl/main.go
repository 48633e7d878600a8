package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"admission-client/internal/api"
	"admission-client/internal/capability"
	"admission-client/internal/common/config"
	"admission-client/internal/common/logger"
	"admission-client/internal/common/observability"
	"admission-client/internal/documents"
	"admission-client/internal/store"
	"admission-client/internal/wizard"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// logMissingDocuments reports which mandatory upload slots are still empty
// for the resumed application.
func logMissingDocuments(ctx context.Context, zapLog *zap.Logger, documentsAPI *api.DocumentsAPI, cell *store.ApplicationCell) {
	uploaded, err := documentsAPI.List(ctx)
	if err != nil {
		zapLog.Warn("document list fetch failed", zap.Error(err))
		return
	}
	have := make(map[string]bool, len(uploaded))
	for _, doc := range uploaded {
		have[doc.Type] = true
	}
	var missing []string
	for _, req := range documents.Required(documents.StepData(cell.StepData())) {
		if !have[string(req.Type)] {
			missing = append(missing, string(req.Type))
		}
	}
	if len(missing) > 0 {
		zapLog.Info("Mandatory documents still missing", zap.Strings("types", missing))
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting admission client core...",
		zap.String("env", cfg.App.Environment),
		zap.String("api_base_url", cfg.API.BaseURL),
	)

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.JaegerEndpoint)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Session store ---
	var sessions store.SessionStore
	if cfg.Session.Backend == "redis" {
		var redisStore *store.RedisSessionStore
		err = retryWithBackoff(func() error {
			var err error
			redisStore, err = store.NewRedisSessionStore(cfg.Session.Redis, time.Duration(cfg.Session.TTL)*time.Second)
			if err != nil {
				return err
			}
			return redisStore.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisStore.Close()
		sessions = redisStore
		zapLog.Info("Redis session store connected")
	} else {
		sessions = store.NewMemorySessionStore()
		zapLog.Info("In-memory session store active")
	}

	// --- Client state, auth boundary, capabilities ---
	cell := store.NewApplicationCell()
	auth := store.NewAuth(sessions, cell)
	caps := capability.Probe(cfg.Features, log)

	// --- Backend collaborators ---
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.RequestTimeout)*time.Millisecond, auth, log)
	applications := api.NewApplicationAPI(client)
	payments := api.NewPaymentAPI(client)

	// Uploads get their own transport with the longer timeout.
	uploadClient := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.UploadTimeout)*time.Millisecond, auth, log)
	documentsAPI := api.NewDocumentsAPI(uploadClient)

	orchestrator := wizard.NewOrchestrator(cell, applications, payments, log, obs)

	// --- Metrics endpoint ---
	var metricsServer *http.Server
	if cfg.Observability.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.Observability.MetricsAddress, Handler: mux}
		go func() {
			zapLog.Info("Metrics endpoint listening", zap.String("address", cfg.Observability.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Session resume + application fetch ---
	session, err := auth.Restore(ctx)
	if err != nil {
		zapLog.Warn("session restore failed, starting signed out", zap.Error(err))
	}
	if session.Authenticated() {
		zapLog.Info("Session restored", zap.String("user_id", session.User.ID))

		app, err := applications.Get(ctx)
		if err != nil {
			zapLog.Warn("application fetch failed", zap.Error(err))
		} else {
			orchestrator.ResumeFromPersisted(app)
			if app != nil {
				zapLog.Info("Application resumed",
					zap.String("application_id", app.ID),
					zap.String("status", string(app.Status)),
					zap.Int("route_step", orchestrator.CurrentRouteStep()),
				)
				if err := orchestrator.RefreshPaymentStatus(ctx); err != nil {
					zapLog.Warn("payment status refresh failed", zap.Error(err))
				}
				logMissingDocuments(ctx, zapLog, documentsAPI, cell)
			}
		}
	} else {
		zapLog.Info("No persisted session, sign-in required")
	}

	if !caps.Has(capability.FeaturePaymentSDK) && !cfg.Payment.GatewayAvailable {
		zapLog.Warn("Payment SDK unavailable, submission will stay gated until a fee payment is recorded")
	}

	zapLog.Info("Admission client core ready")

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutting down...")
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	zapLog.Info("Shutdown complete")
}
