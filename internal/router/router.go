package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	CreateActivity(c *ginext.Context)
	GetActivity(c *ginext.Context)
	UpdateActivity(c *ginext.Context)
	GenerateSessions(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	SetSessionClosed(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	GetCustomerBookings(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)

		// Activities
		api.POST("/activities", h.CreateActivity)
		api.GET("/activities/:id", h.GetActivity)
		api.PATCH("/activities/:id", h.UpdateActivity)
		api.POST("/activities/:id/generate", h.GenerateSessions)
		api.GET("/activities/:id/availability", h.GetAvailability)

		// Sessions
		api.PATCH("/sessions/:id/closed", h.SetSessionClosed)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)

		// Customers
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)

		// Webhooks
		api.POST("/webhooks/payment", h.PaymentWebhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
