package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	c "admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/events"
	"admin/internal/gateway"
	"admin/internal/helpers"
	m "admin/internal/middlewares"
	"admin/internal/models"
	"admin/internal/notifier"
	"admin/internal/services"
	"admin/internal/storage"
	"admin/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func StartWorkers(
	profile models.Profile,
	eventsManager *EventsManager,
	db *gorm.DB,
	cache c.ICache,
	gw gateway.IGateway,
	fixtures gateway.IFixtures,
	notify notifier.INotifier,
	config models.Configuration,
	appIdentity string,
) {
	eventParams := &events.EventParams{
		DB:             db,
		Notifier:       notify,
		AlertRecipient: config.Alerts.Recipient,
	}

	startWorker(profile.Workers.Notifications, "notifications", cache, appIdentity, func(_ context.Context) {
		alerts := eventsManager.GetSubscriber(configuration.EventsAlerts).Subscribe()
		events.HandleEvents(eventParams, alerts)
	})

	startWorker(profile.Workers.Notifications, "refresh_log", cache, appIdentity, func(_ context.Context) {
		refreshes := eventsManager.GetSubscriber(configuration.EventsRefresh).Subscribe()
		events.HandleEvents(eventParams, refreshes)
	})

	startWorker(profile.Workers.ReportRefresh, "report_refresh", cache, appIdentity, func(ctx context.Context) {
		worker := &workers.ReportRefreshWorker{
			DB:              db,
			Cache:           cache,
			Gateway:         gw,
			Refresh:         eventsManager.GetPublisher(configuration.EventsRefresh),
			Alerts:          eventsManager.GetPublisher(configuration.EventsAlerts),
			Upstream:        config.Upstream,
			AlertThresholds: config.Alerts,
		}
		worker.Start(ctx)
	})

	startWorker(profile.Workers.ViewRefresh, "dashboard_refresh", cache, appIdentity, func(ctx context.Context) {
		worker := &workers.DashboardRefreshWorker{
			DB:       db,
			Cache:    cache,
			Gateway:  gw,
			Fixtures: fixtures,
			Upstream: config.Upstream,
		}
		worker.Start(ctx)
	})
}

func startWorker(
	mode models.WorkerMode,
	workerName string,
	cache c.ICache,
	appIdentity string,
	runWorker func(context.Context),
) {
	if mode == models.WorkerModeDisabled {
		return
	}

	if mode == models.WorkerModeSingleton && cache != nil {
		go startSingletonWorker(cache, appIdentity, workerName, runWorker)
	} else {
		go runWorker(context.Background())
		zap.L().Info("Started worker", zap.String("worker", workerName))
	}
}

func startSingletonWorker(cache c.ICache, instanceID string, workerName string, runWorker func(context.Context)) {
	lockKey := fmt.Sprintf(configuration.CacheAppWorkerLockKey, workerName)
	ticker := time.NewTicker(time.Duration(configuration.CacheAppWorkerLockRefresh) * time.Second)
	defer ticker.Stop()

	var workerStarted bool
	var cancelWorker context.CancelFunc

	for {
		if !workerStarted {
			acquired, err := cache.TryAcquireLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil {
				zap.L().Error("Failed to acquire worker lock", zap.String("worker", workerName), zap.Error(err))
			}

			if acquired {
				zap.L().Info("Acquired worker lock, starting worker", zap.String("worker", workerName))
				workerStarted = true
				var ctx context.Context
				ctx, cancelWorker = context.WithCancel(context.Background())
				go runWorker(ctx)
			}
		} else {
			refreshed, err := cache.RefreshLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil || !refreshed {
				zap.L().Warn("Lost worker lock, stopping worker", zap.String("worker", workerName))
				workerStarted = false
				if cancelWorker != nil {
					cancelWorker()
					cancelWorker = nil
				}
			}
		}

		<-ticker.C
	}
}

func StartHTTPServer(
	config models.Configuration,
	db *gorm.DB,
	cache c.ICache,
	store storage.IStorage,
	gw gateway.IGateway,
	fixtures gateway.IFixtures,
) {
	r := chi.NewRouter()

	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authConfig := config.App.GetAuthConfig()

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(m.Authenticate(authConfig.JWTSecret))
		apiRouter.Use(m.RateLimit(cache, config.App.TrustedProxies, config.App.RequestsPerMinute))

		apiRouter.Get("/v1/health", func(w http.ResponseWriter, _ *http.Request) {
			helpers.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		apiRouter.Mount("/v1/auth", services.AuthService{
			AuthConfig:      authConfig,
			UpstreamBaseURL: config.Upstream.BaseURL,
		}.Routes())

		apiRouter.Mount("/v1/users", services.UserService{
			DB:       db,
			Cache:    cache,
			Gateway:  gw,
			Upstream: config.Upstream,
		}.Routes())

		apiRouter.Mount("/v1/ads", services.AdService{
			DB:       db,
			Cache:    cache,
			Gateway:  gw,
			Upstream: config.Upstream,
		}.Routes())

		apiRouter.Mount("/v1/categories", services.CategoryService{
			DB:      db,
			Cache:   cache,
			Gateway: gw,
		}.Routes())

		apiRouter.Mount("/v1/finance", services.FinanceService{
			Gateway:  gw,
			Fixtures: fixtures,
			Upstream: config.Upstream,
		}.Routes())

		apiRouter.Mount("/v1/support", services.SupportService{
			DB:       db,
			Fixtures: fixtures,
		}.Routes())

		apiRouter.Mount("/v1/locations", services.LocationService{
			Fixtures: fixtures,
		}.Routes())

		apiRouter.Mount("/v1/reports", services.ReportService{
			DB:       db,
			Cache:    cache,
			Gateway:  gw,
			Storage:  store,
			Upstream: config.Upstream,
		}.Routes())

		apiRouter.Mount("/v1/dashboard", services.DashboardService{
			Cache:    cache,
			Gateway:  gw,
			Fixtures: fixtures,
		}.Routes())

		apiRouter.Mount("/v1/employees", services.EmployeeService{
			DB:      db,
			Gateway: gw,
		}.Routes())

		apiRouter.Mount("/v1/admin", services.AdminService{
			DB: db,
		}.Routes())
	})

	var handler http.Handler = r
	if config.Tracing.Enabled {
		handler = otelhttp.NewHandler(r, "admin.http")
	}

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
