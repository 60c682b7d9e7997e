package handlers

import (
	"net/http"

	"agendly/services/availability"
	"agendly/services/booking"
	"agendly/services/catalog"
	"agendly/services/company"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// PublicHandlers serves the customer-facing booking page. No auth; the
// company is resolved from the slug in the URL and only public fields
// leave the server.
type PublicHandlers struct {
	Companies     company.CompanyService
	Professionals catalog.ProfessionalService
	Offerings     catalog.OfferingService
	Availability  availability.AvailabilityService
	Bookings      booking.BookingService
}

// GetBookingPage returns everything the public page needs to render:
// company identity plus active professionals and offerings.
func (h *PublicHandlers) GetBookingPage(c *gin.Context) {
	ctx := c.Request.Context()

	comp, err := h.Companies.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	professionals, err := h.Professionals.ListProfessionals(ctx, comp.ID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	offerings, err := h.Offerings.ListOfferings(ctx, comp.ID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company": gin.H{
			"name": comp.Name,
			"slug": comp.Slug,
		},
		"professionals": professionals,
		"offerings":     offerings,
	})
}

// GetDaySlots returns the bookable slot list for one professional,
// offering and date.
func (h *PublicHandlers) GetDaySlots(c *gin.Context) {
	ctx := c.Request.Context()

	comp, err := h.Companies.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	slots, err := h.Availability.GetDaySlots(ctx, comp.ID,
		c.Query("professionalId"), c.Query("offeringId"), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBooking confirms a booking from the public page.
func (h *PublicHandlers) CreateBooking(c *gin.Context) {
	var req booking.PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	created, err := h.Bookings.CreatePublicBooking(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
