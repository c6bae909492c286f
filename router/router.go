package router

import (
	"time"

	"github.com/diljithmon170/GK-Group/config"
	_ "github.com/diljithmon170/GK-Group/docs"
	"github.com/diljithmon170/GK-Group/handlers"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything needed to build the routes.
type Dependencies struct {
	Config            *config.Config
	ContactHandler    *handlers.ContactHandler
	NewsletterHandler *handlers.NewsletterHandler
	AdminHandler      *handlers.AdminHandler
	HealthHandler     *handlers.HealthHandler
	// RateLimiter guards the public form posts. Nil disables limiting.
	RateLimiter middleware.RateLimiter
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// SetupRouter configures and returns the Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	r := gin.Default()

	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.GetLogger().Warnw("Invalid trusted proxies, trusting none", "proxies", cfg.Server.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(cfg))
	r.Use(middleware.CORSMiddleware(&cfg.Server))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	} else {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Server.ServeStatic {
		r.Static("/static", cfg.Server.StaticDir)
	}

	contactLimit := submissionLimit(deps, "contact")
	newsletterLimit := submissionLimit(deps, "newsletter")

	api := r.Group("/api")
	{
		api.POST("/contact", contactLimit, deps.ContactHandler.SubmitContactHandler)
		api.POST("/newsletter", newsletterLimit, deps.NewsletterHandler.SubscribeHandler)

		// Paths the existing site frontend posts to.
		api.POST("/contact-ajax/", contactLimit, deps.ContactHandler.SubmitContactHandler)
		api.POST("/newsletter/", newsletterLimit, deps.NewsletterHandler.SubscribeHandler)
	}

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.AdminAuth(&cfg.Admin))
	{
		adminRoutes.GET("/tables", deps.AdminHandler.ListTablesHandler)
		adminRoutes.GET("/messages", deps.AdminHandler.ListMessagesHandler)
		adminRoutes.POST("/messages/actions", deps.AdminHandler.UpdateMessagesHandler)
		adminRoutes.GET("/messages/:id", deps.AdminHandler.GetMessageHandler)
		adminRoutes.GET("/subscriptions", deps.AdminHandler.ListSubscriptionsHandler)
	}

	return r
}

func submissionLimit(deps Dependencies, scope string) gin.HandlerFunc {
	if deps.RateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	rl := deps.Config.RateLimit
	return middleware.SubmissionRateLimiter(deps.RateLimiter, scope, rl.SubmissionsPerWindow, time.Duration(rl.WindowSeconds)*time.Second)
}
