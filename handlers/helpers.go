package handlers

import (
	"errors"
	"net/http"

	"agendly/services/availability"
	"agendly/services/booking"
	"agendly/services/support"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// companyID reads the tenant set by the auth middleware. A missing value
// means the route was registered without the middleware.
func companyID(c *gin.Context) (string, bool) {
	id, exists := c.Get("companyID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "missing company identity")
		return "", false
	}
	return id.(string), true
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var validation *availability.ValidationError
	var unavailable *booking.SlotUnavailableError

	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validation.Error())
	case errors.As(err, &unavailable):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", unavailable.Error())
	case errors.Is(err, booking.ErrConsentRequired):
		utils.JSONError(c, http.StatusUnprocessableEntity, "consent required", err.Error())
	case errors.Is(err, availability.ErrInvalidDuration):
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
	case errors.Is(err, support.ErrUnknownStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status", err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
