package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/availability"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// CreateAvailabilityHandler stores a recurring grid, released window or
// blocked window for a professional.
func CreateAvailabilityHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var rec models.AvailabilityRecord
		if err := c.ShouldBindJSON(&rec); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		created, err := svc.CreateRecord(c.Request.Context(), id, rec)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListAvailabilityHandler lists declarations, optionally per professional.
func ListAvailabilityHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		records, err := svc.ListRecords(c.Request.Context(), id, c.Query("professionalId"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// DeleteAvailabilityHandler removes a declaration.
func DeleteAvailabilityHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		if err := svc.DeleteRecord(c.Request.Context(), id, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// GetDaySlotsHandler returns the computed slot list for one professional,
// offering and date. Staff view; served from cache when fresh.
func GetDaySlotsHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		slots, err := svc.GetDaySlots(c.Request.Context(), id,
			c.Query("professionalId"), c.Query("offeringId"), c.Query("date"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": slots})
	}
}

// GetDayEnvelopeHandler returns the earliest start and latest end across
// the company's active professionals for a date. The booking page uses it
// to size its day view.
func GetDayEnvelopeHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		envelope, err := svc.GetDayEnvelope(c.Request.Context(), id, c.Query("date"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, envelope)
	}
}
