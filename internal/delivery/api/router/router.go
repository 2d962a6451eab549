// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/router/handler"
	"adreach/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	FeedHandler         *handler.FeedHandler
	CampaignHandler     *handler.CampaignHandler
	EngagementHandler   *handler.EngagementHandler
	CommentHandler      *handler.CommentHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	health         *handler.HealthHandler
	feed           *handler.FeedHandler
	campaign       *handler.CampaignHandler
	engagement     *handler.EngagementHandler
	comment        *handler.CommentHandler
	analytics      *handler.AnalyticsHandler
	notification   *handler.NotificationHandler
	device         *handler.DeviceHandler
	admin          *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		health:         params.HealthHandler,
		feed:           params.FeedHandler,
		campaign:       params.CampaignHandler,
		engagement:     params.EngagementHandler,
		comment:        params.CommentHandler,
		analytics:      params.AnalyticsHandler,
		notification:   params.NotificationHandler,
		device:         params.DeviceHandler,
		admin:          params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.health.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	vendorOnly := r.authMiddleware.RequireRole(entity.RoleVendor)
	vendorOrAdmin := r.authMiddleware.RequireRole(entity.RoleVendor, entity.RoleAdmin)

	apiV1.PUT("/users/me/location", r.feed.UpdateLocation)
	apiV1.GET("/feed", r.feed.Feed)

	campaigns := apiV1.Group("/campaigns")
	{
		campaigns.GET("/search", r.feed.Search)
		campaigns.POST("", r.campaign.Create, vendorOnly)
		campaigns.GET("/mine", r.campaign.ListMine, vendorOnly)
		campaigns.GET("/stats", r.campaign.Stats, vendorOnly)

		campaigns.GET("/:id", r.campaign.Get, vendorOrAdmin)
		campaigns.PUT("/:id", r.campaign.Update, vendorOnly)
		campaigns.DELETE("/:id", r.campaign.Delete, vendorOrAdmin)
		campaigns.PUT("/:id/pause", r.campaign.Pause, vendorOnly)
		campaigns.PUT("/:id/resume", r.campaign.Resume, vendorOnly)
		campaigns.GET("/:id/qr", r.campaign.ShareQR)

		// Event recorder
		campaigns.POST("/:id/like", r.engagement.Toggle(entity.ReactionLike))
		campaigns.POST("/:id/dislike", r.engagement.Toggle(entity.ReactionDislike))
		campaigns.POST("/:id/love", r.engagement.Toggle(entity.ReactionLove))
		campaigns.POST("/:id/save", r.engagement.Toggle(entity.ReactionSave))
		campaigns.POST("/:id/share", r.engagement.Share)
		campaigns.POST("/:id/impression", r.engagement.Impression)
		campaigns.POST("/:id/click", r.engagement.Click)
		campaigns.POST("/:id/conversion", r.engagement.Conversion)
		campaigns.GET("/:id/engagement", r.engagement.Status)

		campaigns.GET("/:id/comments", r.comment.List)
		campaigns.POST("/:id/comments", r.comment.Create)

		analytics := campaigns.Group("/:id/analytics", vendorOrAdmin)
		analytics.GET("/today", r.analytics.Today)
		analytics.GET("/window", r.analytics.Window)
		analytics.GET("/daily", r.analytics.Daily)
		analytics.GET("/weekday", r.analytics.Weekday)
		analytics.GET("/locations", r.analytics.Locations)
		analytics.GET("/export", r.analytics.Export)
	}

	apiV1.DELETE("/comments/:id", r.comment.Delete)

	apiV1.POST("/payments/confirm", r.campaign.ConfirmPayment, vendorOrAdmin)

	vendor := apiV1.Group("/vendor", vendorOnly)
	{
		vendor.GET("/transactions", r.campaign.ListTransactions)
		vendor.GET("/transactions/stats", r.campaign.TransactionStats)
	}

	// Notification management routes
	apiV1.GET("/notification-settings", r.notification.GetSettings)
	apiV1.PUT("/notification-settings", r.notification.UpdateSettings)
	apiV1.GET("/notifications", r.notification.List)
	apiV1.PUT("/notifications/:id/read", r.notification.MarkRead)

	// Device management routes
	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.device.RegisterDevice)
		devices.GET("", r.device.GetUserDevices)
		devices.DELETE("/:id", r.device.DeactivateDevice)
	}

	admin := apiV1.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/overview", r.admin.Overview)
		admin.GET("/revenue", r.admin.Revenue)
		admin.GET("/campaigns", r.admin.ListCampaigns)
		admin.PUT("/campaigns/:id/flag", r.admin.FlagCampaign)
		admin.GET("/campaigns/:id/analytics", r.admin.CampaignAnalytics)
		admin.PUT("/users/:id/ban", r.admin.BanUser)
	}
}
