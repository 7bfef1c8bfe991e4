package handler

import (
	"levelup/middleware"
	"levelup/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBody = 1 << 20

// Services bundles what the router needs to build its handlers.
type Services struct {
	Categories *usecase.CategoriesService
	Activities *usecase.ActivitiesService
	Goals      *usecase.GoalsService
	Badges     *usecase.BadgesService
	Progress   *usecase.ProgressService
	Analytics  *usecase.AnalyticsService
	DB         Pinger
}

func NewRouter(svc Services, corsOrigins []string) *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context on as context.Context; this lets it carry
	// the request's cancellation and deadline.
	router.ContextWithFallback = true

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(corsOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	categories := NewCategoriesHandler(svc.Categories)
	activities := NewActivitiesHandler(svc.Activities)
	goals := NewGoalsHandler(svc.Goals)
	badges := NewBadgesHandler(svc.Badges)
	stats := NewStatsHandler(svc.Progress)
	analytics := NewAnalyticsHandler(svc.Analytics)
	health := NewHealthHandler(svc.DB)

	api := router.Group("/api")
	api.Use(middleware.CacheControlMiddleware("no-store"))
	api.Use(middleware.RequestSizeLimiter(maxRequestBody))
	{
		api.GET("/health", health.Check)

		api.GET("/categories", categories.ListCategories)
		api.POST("/categories", categories.CreateCategory)
		api.DELETE("/categories/:id", categories.DeleteCategory)

		api.GET("/activities", activities.ListActivities)
		api.POST("/activities", activities.CreateActivity)
		api.DELETE("/activities/:id", activities.DeleteActivity)

		api.GET("/goals", goals.ListGoals)
		api.POST("/goals", goals.CreateGoal)
		api.DELETE("/goals/:id", goals.DeleteGoal)

		api.GET("/stats", stats.GetUserStats)

		api.GET("/badges", badges.ListBadges)
		api.POST("/badges", badges.CreateBadge)
		api.DELETE("/badges/:id", badges.DeleteBadge)

		analyticsGroup := api.Group("/analytics")
		{
			analyticsGroup.GET("/summary", analytics.Summary)
			analyticsGroup.GET("/daily", analytics.Daily)
			analyticsGroup.GET("/category/:id", analytics.CategoryDaily)
		}
	}

	return router
}
