package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.AllowedOrigins),
		middleware.Session(env.JWTSecret),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Hotel master + seasonal rates
		api.GET("/hotels", h.GetHotels)
		api.POST("/hotels", h.CreateHotel)
		api.GET("/hotels/:id", h.GetHotelByID)
		api.PUT("/hotels/:id", h.UpdateHotel)
		api.DELETE("/hotels/:id", h.DeleteHotel)
		api.GET("/hotels/:id/rates", h.GetHotelRates)
		api.POST("/hotels/:id/rates", h.CreateHotelRate)
		api.DELETE("/hotels/:id/rates/:rateId", h.DeleteHotelRate)

		// Flat per-person catalogs (transport / food / ziarat)
		api.GET("/catalogs/:category", h.GetServiceRates)
		api.POST("/catalogs/:category", h.CreateServiceRate)
		api.DELETE("/catalogs/:category/:id", h.DeleteServiceRate)

		api.GET("/visa-fees", h.GetVisaFees)
		api.PUT("/visa-fees", h.UpsertVisaFee)

		api.GET("/flights", h.GetFlightFares)
		api.POST("/flights", h.CreateFlightFare)
		api.DELETE("/flights/:id", h.DeleteFlightFare)

		// Bookings + the shared cost sheet
		api.GET("/bookings", h.GetBookings)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBookingByID)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.PUT("/bookings/:id/selections", h.SaveBookingSelections)
		api.GET("/bookings/:id/quote", h.GetBookingQuote)
		api.GET("/bookings/:id/invoice", h.DownloadInvoice)
		api.GET("/bookings/:id/ledger", h.GetBookingLedger)

		// Payments ledger
		api.GET("/payments", h.GetPayments)
		api.POST("/payments", h.RecordPayment)
		api.POST("/payments/:id/void", h.VoidPayment)

		// Partner agents
		api.GET("/agents", h.GetAgents)
		api.POST("/agents", h.RegisterAgent)
		api.GET("/agents/:id", h.GetAgentByID)
		api.PUT("/agents/:id", h.UpdateAgent)
		api.POST("/agents/:id/deactivate", h.DeactivateAgent)

		// Reports
		api.GET("/reports/sales", h.GetSalesReport)
		api.GET("/reports/sales/export", h.ExportSalesReport)
	}

	h.SetRouter(r)
	return r
}
