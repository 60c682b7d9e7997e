package handlers

import (
	companyRepoPkg "agendly/database/repository/company"
	"agendly/services/availability"
	"agendly/services/booking"
	"agendly/services/catalog"
	"agendly/services/company"
	"agendly/services/consent"
	"agendly/services/support"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays declarative.
type HandlerBundle struct {
	CompanyRepo companyRepoPkg.CompanyRepository

	// Company auth and profile
	RegisterCompanyHandler      gin.HandlerFunc
	AuthenticateCompanyHandler  gin.HandlerFunc
	RevokeCompanyTokenHandler   gin.HandlerFunc
	GetCompanyProfileHandler    gin.HandlerFunc
	UpdateCompanyProfileHandler gin.HandlerFunc

	// Catalog
	CreateProfessionalHandler     gin.HandlerFunc
	ListProfessionalsHandler      gin.HandlerFunc
	UpdateProfessionalHandler     gin.HandlerFunc
	DeactivateProfessionalHandler gin.HandlerFunc
	CreateOfferingHandler         gin.HandlerFunc
	ListOfferingsHandler          gin.HandlerFunc
	UpdateOfferingHandler         gin.HandlerFunc
	DeactivateOfferingHandler     gin.HandlerFunc

	// Availability
	CreateAvailabilityHandler gin.HandlerFunc
	ListAvailabilityHandler   gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc
	GetDaySlotsHandler        gin.HandlerFunc
	GetDayEnvelopeHandler     gin.HandlerFunc

	// Bookings (staff)
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Consent
	RecordConsentHandler gin.HandlerFunc
	ListConsentHandler   gin.HandlerFunc
	RevokeConsentHandler gin.HandlerFunc

	// Support
	CreateTicketHandler       gin.HandlerFunc
	ListTicketsHandler        gin.HandlerFunc
	UpdateTicketStatusHandler gin.HandlerFunc

	// Public booking page
	Public *PublicHandlers
}

// BundleDeps carries the wired services the bundle is built from.
type BundleDeps struct {
	CompanyRepo   companyRepoPkg.CompanyRepository
	Companies     company.CompanyService
	Professionals catalog.ProfessionalService
	Offerings     catalog.OfferingService
	Availability  availability.AvailabilityService
	Bookings      booking.BookingService
	Consents      consent.ConsentService
	Support       support.SupportService
}

// NewHandlerBundle binds every handler to its service.
func NewHandlerBundle(deps BundleDeps) *HandlerBundle {
	return &HandlerBundle{
		CompanyRepo: deps.CompanyRepo,

		RegisterCompanyHandler:      RegisterCompanyHandler(deps.Companies),
		AuthenticateCompanyHandler:  AuthenticateCompanyHandler(deps.Companies),
		RevokeCompanyTokenHandler:   RevokeCompanyTokenHandler(deps.Companies),
		GetCompanyProfileHandler:    GetCompanyProfileHandler(deps.Companies),
		UpdateCompanyProfileHandler: UpdateCompanyProfileHandler(deps.Companies),

		CreateProfessionalHandler:     CreateProfessionalHandler(deps.Professionals),
		ListProfessionalsHandler:      ListProfessionalsHandler(deps.Professionals),
		UpdateProfessionalHandler:     UpdateProfessionalHandler(deps.Professionals),
		DeactivateProfessionalHandler: DeactivateProfessionalHandler(deps.Professionals),
		CreateOfferingHandler:         CreateOfferingHandler(deps.Offerings),
		ListOfferingsHandler:          ListOfferingsHandler(deps.Offerings),
		UpdateOfferingHandler:         UpdateOfferingHandler(deps.Offerings),
		DeactivateOfferingHandler:     DeactivateOfferingHandler(deps.Offerings),

		CreateAvailabilityHandler: CreateAvailabilityHandler(deps.Availability),
		ListAvailabilityHandler:   ListAvailabilityHandler(deps.Availability),
		DeleteAvailabilityHandler: DeleteAvailabilityHandler(deps.Availability),
		GetDaySlotsHandler:        GetDaySlotsHandler(deps.Availability),
		GetDayEnvelopeHandler:     GetDayEnvelopeHandler(deps.Availability),

		ListBookingsHandler:  ListBookingsHandler(deps.Bookings),
		CancelBookingHandler: CancelBookingHandler(deps.Bookings),

		RecordConsentHandler: RecordConsentHandler(deps.Consents),
		ListConsentHandler:   ListConsentHandler(deps.Consents),
		RevokeConsentHandler: RevokeConsentHandler(deps.Consents),

		CreateTicketHandler:       CreateTicketHandler(deps.Support),
		ListTicketsHandler:        ListTicketsHandler(deps.Support),
		UpdateTicketStatusHandler: UpdateTicketStatusHandler(deps.Support),

		Public: &PublicHandlers{
			Companies:     deps.Companies,
			Professionals: deps.Professionals,
			Offerings:     deps.Offerings,
			Availability:  deps.Availability,
			Bookings:      deps.Bookings,
		},
	}
}
