package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsemark/agency-platform/internal/api/handler"
	"github.com/pulsemark/agency-platform/internal/api/middleware"
	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
	"github.com/pulsemark/agency-platform/internal/core/service"
)

// Services bundles the wired-up use-case layer the router exposes.
type Services struct {
	Auth        ports.AuthService
	Projects    ports.ProjectService
	Approvals   ports.ApprovalService
	Dashboard   ports.DashboardService
	Content     ports.ContentService
	Onboarding  ports.OnboardingService
	Users       *service.UserService
	UserRepo    ports.UserRepository
	MongoDB     *mongo.Database
	RedisClient *redis.Client // nil when the in-memory KV fallback is active
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agency"))

	auth := middleware.Auth(jwtSecret)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	projectHandler := handler.NewProjectHandler(svc.Projects)
	approvalHandler := handler.NewApprovalHandler(svc.Approvals)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)
	contentHandler := handler.NewContentHandler(svc.Content, svc.UserRepo)
	userHandler := handler.NewUserHandler(svc.Users)
	onboardingHandler := handler.NewOnboardingHandler(svc.Onboarding)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	v1 := e.Group("/v1", auth)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.POST("/auth/switch-role", authHandler.SwitchRole)
	v1.POST("/auth/onboarding/complete", authHandler.CompleteOnboarding)

	// --- Onboarding ---
	v1.POST("/onboarding", onboardingHandler.Save)
	v1.GET("/onboarding", onboardingHandler.Get)

	// --- Projects ---
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.POST("/projects", projectHandler.Create, middleware.RequirePermission(domain.PermManageProjects))
	v1.PATCH("/projects/:id", projectHandler.Update, middleware.RequirePermission(domain.PermManageProjects))

	// --- Approvals ---
	v1.GET("/approvals", approvalHandler.List)
	v1.POST("/approvals", approvalHandler.Create, middleware.RequirePermission(domain.PermCreateContent))
	// Decision permissions depend on the decision payload; the service checks
	// approve_content / reject_content itself.
	v1.POST("/approvals/:id/decision", approvalHandler.Decide)

	// --- Dashboard ---
	v1.GET("/dashboard/stats", dashboardHandler.Stats)
	v1.GET("/dashboard/clients", dashboardHandler.RecentClients, middleware.RequirePermission(domain.PermViewAllClients))
	v1.GET("/dashboard/activities", dashboardHandler.Activities, middleware.RequirePermission(domain.PermViewAnalytics))
	v1.GET("/dashboard/revenue", dashboardHandler.Revenue, middleware.RequirePermission(domain.PermBillingManagement))
	v1.GET("/dashboard/deadlines", dashboardHandler.Deadlines)
	v1.GET("/dashboard/notifications", dashboardHandler.Notifications)

	// --- Clients / content / billing / messaging ---
	v1.GET("/clients", contentHandler.Clients, middleware.RequirePermission(domain.PermViewAllClients))
	v1.GET("/campaigns", contentHandler.Campaigns)
	v1.GET("/content/social", contentHandler.SocialPosts)
	v1.GET("/content/blog", contentHandler.BlogPosts)
	v1.GET("/invoices", contentHandler.Invoices, middleware.RequirePermission(domain.PermBillingManagement))
	v1.GET("/messages", contentHandler.Messages)
	v1.POST("/messages", contentHandler.SendMessage, middleware.RequirePermission(domain.PermSendMessages))

	// --- Users ---
	v1.GET("/users", userHandler.List, middleware.RequirePermission(domain.PermManageUsers))
	v1.PATCH("/users/:id/role", userHandler.ChangeRole, middleware.RequirePermission(domain.PermManageUsers))
	v1.DELETE("/users/:id", userHandler.Remove, middleware.RequirePermission(domain.PermManageUsers))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(svc.MongoDB, svc.RedisClient)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
