package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestorzap/gestorzap-backend/api/controllers"
	"github.com/gestorzap/gestorzap-backend/api/middleware"
	"github.com/gestorzap/gestorzap-backend/internal/approvals"
	"github.com/gestorzap/gestorzap-backend/internal/auth"
	"github.com/gestorzap/gestorzap-backend/internal/clients"
	"github.com/gestorzap/gestorzap-backend/internal/dashboard"
	"github.com/gestorzap/gestorzap-backend/internal/messages"
	"github.com/gestorzap/gestorzap-backend/internal/payments"
	"github.com/gestorzap/gestorzap-backend/pkg/auth/session"
	"github.com/gestorzap/gestorzap-backend/pkg/config"
	"github.com/gestorzap/gestorzap-backend/pkg/db"
	"github.com/gestorzap/gestorzap-backend/pkg/db/models"
	"github.com/gestorzap/gestorzap-backend/pkg/logger"
	"github.com/gestorzap/gestorzap-backend/pkg/metrics"
	"github.com/gestorzap/gestorzap-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

type profileSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionManager sessionManager,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	profileRepo profileSource,
	authService auth.Service,
	registerService auth.RegisterService,
	clientService clients.Service,
	paymentService payments.Service,
	messageService messages.Service,
	dashboardService dashboard.Service,
	approvalService approvals.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, logg))
		r.Post("/confirm", controllers.AuthConfirm(authService, logg))
		r.Post("/refresh", controllers.AuthRefresh(sessionManager, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))

		// Logout and /me only need an authenticated session; the approval
		// gate applies to everything that touches client data.
		r.Post("/auth/logout", controllers.AuthLogout(sessionManager, cfg.JWT, logg))
		r.Get("/me", controllers.Me(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireApproved(profileRepo, logg))

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", controllers.ClientsList(clientService, logg))
				r.Post("/", controllers.ClientCreate(clientService, logg))
				r.Put("/{clientId}", controllers.ClientUpdate(clientService, logg))
				r.Delete("/{clientId}", controllers.ClientDelete(clientService, logg))
			})

			r.Get("/dashboard/stats", controllers.DashboardStats(dashboardService, logg))

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", controllers.PaymentsList(paymentService, logg))
				r.Post("/", controllers.PaymentCreate(paymentService, logg))
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", controllers.MessagesList(messageService, logg))
				r.Post("/", controllers.MessageCreate(messageService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))
		r.Use(middleware.RequireAdmin(profileRepo, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/pending", controllers.PendingUsers(approvalService, logg))
			r.Post("/{userId}/approve", controllers.ApproveUser(approvalService, logg))
			r.Delete("/{userId}", controllers.RejectUser(approvalService, logg))
		})
	})

	return r
}
