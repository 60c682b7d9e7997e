package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/database"
	availabilityRepoPkg "agendly/database/repository/availability"
	bookingRepoPkg "agendly/database/repository/booking"
	companyRepoPkg "agendly/database/repository/company"
	consentRepoPkg "agendly/database/repository/consent"
	offeringRepoPkg "agendly/database/repository/offering"
	professionalRepoPkg "agendly/database/repository/professional"
	ticketRepoPkg "agendly/database/repository/ticket"
	"agendly/handlers"
	"agendly/middleware"
	"agendly/routes"
	"agendly/services/availability"
	"agendly/services/booking"
	"agendly/services/catalog"
	"agendly/services/company"
	"agendly/services/consent"
	"agendly/services/support"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.CacheClient, utils.AuthCacheClient},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	companyRepo := companyRepoPkg.NewMongoCompanyRepo()
	professionalRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	offeringRepo := offeringRepoPkg.NewMongoOfferingRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	consentRepo := consentRepoPkg.NewMongoConsentRepo()
	ticketRepo := ticketRepoPkg.NewMongoTicketRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:             availabilityRepo,
		BookingRepo:      bookingRepo,
		OfferingRepo:     offeringRepo,
		ProfessionalRepo: professionalRepo,
		Cache:            utils.GetCacheClient(),
	}
	companyService := &company.DefaultCompanyService{Repo: companyRepo}
	professionalService := &catalog.DefaultProfessionalService{
		Repo:  professionalRepo,
		Slots: availabilityService,
	}
	offeringService := &catalog.DefaultOfferingService{Repo: offeringRepo}
	bookingService := &booking.DefaultBookingService{
		CompanyRepo:      companyRepo,
		ProfessionalRepo: professionalRepo,
		OfferingRepo:     offeringRepo,
		Repo:             bookingRepo,
		ConsentRepo:      consentRepo,
		Slots:            availabilityService,
	}
	consentService := &consent.DefaultConsentService{Repo: consentRepo}
	supportService := &support.DefaultSupportService{Repo: ticketRepo}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.BundleDeps{
		CompanyRepo:   companyRepo,
		Companies:     companyService,
		Professionals: professionalService,
		Offerings:     offeringService,
		Availability:  availabilityService,
		Bookings:      bookingService,
		Consents:      consentService,
		Support:       supportService,
	})
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
