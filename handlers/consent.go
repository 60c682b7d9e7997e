package handlers

import (
	"net/http"

	"agendly/services/consent"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// RecordConsentHandler stores a consent record captured outside the public
// booking flow, e.g. for a booking taken over the phone.
func RecordConsentHandler(svc consent.ConsentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var req struct {
			Subject string `json:"subject" binding:"required"`
			Purpose string `json:"purpose" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		record, err := svc.RecordConsent(c.Request.Context(), id, req.Subject, req.Purpose)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// ListConsentHandler lists a data subject's consent records, for answering
// access requests.
func ListConsentHandler(svc consent.ConsentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		subject := c.Query("subject")
		if subject == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "subject query parameter is required")
			return
		}
		records, err := svc.ListBySubject(c.Request.Context(), id, subject)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// RevokeConsentHandler marks a consent record as revoked.
func RevokeConsentHandler(svc consent.ConsentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		record, err := svc.RevokeConsent(c.Request.Context(), id, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}
