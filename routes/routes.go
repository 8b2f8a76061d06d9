package routes

import (
	"net/http"
	"time"

	"opsdeck/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/tenants", hb.Catalog.Tenants)
		api.GET("/resources", hb.Catalog.Resources)
		api.GET("/meters", hb.Catalog.Meters)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/resources/:id/slots", hb.Booking.ResourceSlots)
	r.GET("/api/bookings", hb.Booking.ListBookings)

	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.PUT("/session/:sessionID/select", hb.Booking.SelectSlot)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterInvoiceRoutes sets up the billing endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.GET("", hb.Invoice.List)
		api.POST("", hb.Invoice.Create)
		api.POST("/:id/payment", hb.Invoice.ApplyPayment)
		api.GET("/:id/pdf", hb.Invoice.DownloadPDF)
	}
}

// RegisterDashboardRoutes sets up the reporting endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/stats", hb.Dashboard.Stats)
		api.POST("/report", hb.Dashboard.Report)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/bill-scan", hb.AI.BillScan)
		api.POST("/anomaly", hb.AI.Anomaly)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm OpsDeck"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAIRoutes(r, hb)
}
