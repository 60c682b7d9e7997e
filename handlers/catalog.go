package handlers

import (
	"net/http"
	"strconv"

	"agendly/services/catalog"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// CreateProfessionalHandler adds a staff member to the company.
func CreateProfessionalHandler(svc catalog.ProfessionalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var req catalog.ProfessionalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		pro, err := svc.CreateProfessional(c.Request.Context(), id, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, pro)
	}
}

// ListProfessionalsHandler lists staff; ?active=true narrows to bookable ones.
func ListProfessionalsHandler(svc catalog.ProfessionalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		activeOnly, _ := strconv.ParseBool(c.Query("active"))
		pros, err := svc.ListProfessionals(c.Request.Context(), id, activeOnly)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pros)
	}
}

// UpdateProfessionalHandler applies a partial update to a staff member.
func UpdateProfessionalHandler(svc catalog.ProfessionalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		pro, err := svc.UpdateProfessional(c.Request.Context(), id, c.Param("id"), updates)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pro)
	}
}

// DeactivateProfessionalHandler hides a staff member from the public page.
func DeactivateProfessionalHandler(svc catalog.ProfessionalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		pro, err := svc.DeactivateProfessional(c.Request.Context(), id, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pro)
	}
}

// CreateOfferingHandler adds a bookable service.
func CreateOfferingHandler(svc catalog.OfferingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var req catalog.OfferingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		off, err := svc.CreateOffering(c.Request.Context(), id, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, off)
	}
}

// ListOfferingsHandler lists services; ?active=true narrows to bookable ones.
func ListOfferingsHandler(svc catalog.OfferingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		activeOnly, _ := strconv.ParseBool(c.Query("active"))
		offs, err := svc.ListOfferings(c.Request.Context(), id, activeOnly)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, offs)
	}
}

// UpdateOfferingHandler applies a partial update to a service.
func UpdateOfferingHandler(svc catalog.OfferingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		off, err := svc.UpdateOffering(c.Request.Context(), id, c.Param("id"), updates)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, off)
	}
}

// DeactivateOfferingHandler stops new bookings against a service.
func DeactivateOfferingHandler(svc catalog.OfferingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		off, err := svc.DeactivateOffering(c.Request.Context(), id, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, off)
	}
}
