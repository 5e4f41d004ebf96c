package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nycdash/taxi-dashboard-go/internal/config"
	"github.com/nycdash/taxi-dashboard-go/internal/handler"
	"github.com/nycdash/taxi-dashboard-go/internal/middleware"
	"github.com/nycdash/taxi-dashboard-go/internal/service"
	"github.com/nycdash/taxi-dashboard-go/internal/session"
)

// SetupRouter wires the dashboard API.
func SetupRouter(cfg *config.Config, svc *service.DashboardService, store *session.Store, tokens *session.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.SessionTokenHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.SessionTokenHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	r.Use(middleware.RateLimit(limiter))

	dashboardHandler := handler.NewDashboardHandler(svc)
	sessionHandler := handler.NewSessionHandler(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Taxi Dashboard API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Session(store, tokens))
	{
		filters := api.Group("/filters")
		{
			filters.GET("/options", dashboardHandler.GetFilterOptions)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", dashboardHandler.GetDashboard)
			dashboard.GET("/metrics", dashboardHandler.GetMetrics)

			views := dashboard.Group("/views")
			{
				views.GET("/top-zones", dashboardHandler.GetTopZones)
				views.GET("/fare-by-hour", dashboardHandler.GetFareByHour)
				views.GET("/distance-distribution", dashboardHandler.GetDistanceDistribution)
				views.GET("/payment-breakdown", dashboardHandler.GetPaymentBreakdown)
				views.GET("/weekday-hour-heatmap", dashboardHandler.GetWeekdayHourHeatmap)
			}
		}

		sessions := api.Group("/session")
		{
			sessions.PUT("/filter", sessionHandler.PutFilter)
		}
	}

	return r
}
