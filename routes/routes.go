package routes

import (
	"net/http"
	"time"

	"agendly/handlers"
	"agendly/middleware"
	"agendly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers tenant registration, login and profile
// endpoints.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/companies")
	{
		api.POST("/register", hb.RegisterCompanyHandler)
		api.POST("/login", hb.AuthenticateCompanyHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		api.GET("/me", hb.GetCompanyProfileHandler)
		api.PATCH("/me", hb.UpdateCompanyProfileHandler)
		api.DELETE("/revoke", hb.RevokeCompanyTokenHandler)
	}
}

// RegisterCatalogRoutes registers staff and service management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))

		api.POST("/professionals", hb.CreateProfessionalHandler)
		api.GET("/professionals", hb.ListProfessionalsHandler)
		api.PATCH("/professionals/:id", hb.UpdateProfessionalHandler)
		api.DELETE("/professionals/:id", hb.DeactivateProfessionalHandler)

		api.POST("/offerings", hb.CreateOfferingHandler)
		api.GET("/offerings", hb.ListOfferingsHandler)
		api.PATCH("/offerings/:id", hb.UpdateOfferingHandler)
		api.DELETE("/offerings/:id", hb.DeactivateOfferingHandler)
	}
}

// RegisterAvailabilityRoutes registers the declaration and slot endpoints
// for staff.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		api.POST("/records", hb.CreateAvailabilityHandler)
		api.GET("/records", hb.ListAvailabilityHandler)
		api.DELETE("/records/:id", hb.DeleteAvailabilityHandler)
		api.GET("/slots", hb.GetDaySlotsHandler)
		api.GET("/envelope", hb.GetDayEnvelopeHandler)
	}
}

// RegisterBookingRoutes registers the staff-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		api.GET("", hb.ListBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterConsentRoutes registers the privacy-consent audit endpoints.
func RegisterConsentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consent")
	{
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		api.POST("/records", hb.RecordConsentHandler)
		api.GET("/records", hb.ListConsentHandler)
		api.DELETE("/records/:id", hb.RevokeConsentHandler)
	}
}

// RegisterSupportRoutes registers the support ticket endpoints.
func RegisterSupportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/support")
	{
		api.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		api.POST("/tickets", hb.CreateTicketHandler)
		api.GET("/tickets", hb.ListTicketsHandler)
		api.PATCH("/tickets/:id", hb.UpdateTicketStatusHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated booking page
// endpoints, resolved by company slug.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public/:slug")
	{
		api.GET("", hb.Public.GetBookingPage)
		api.GET("/slots", hb.Public.GetDaySlots)
		api.POST("/bookings", hb.Public.CreateBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCompanyRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterConsentRoutes(r, hb)
	RegisterSupportRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
}
