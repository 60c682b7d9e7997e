package handlers

import (
	"errors"
	"net/http"

	"agendly/models"
	"agendly/services/company"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyHandler creates a new tenant and returns a signed token.
func RegisterCompanyHandler(svc company.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}

		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, company.ErrEmailTaken), errors.Is(err, company.ErrSlugTaken):
				utils.JSONError(c, http.StatusConflict, "registration conflict", err.Error())
			case errors.Is(err, company.ErrInvalidSlug):
				utils.JSONError(c, http.StatusBadRequest, "invalid slug", err.Error())
			default:
				respondServiceError(c, err)
			}
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateCompanyHandler exchanges credentials for a token.
func AuthenticateCompanyHandler(svc company.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AuthenticateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}

		resp, err := svc.Authenticate(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, company.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// RevokeCompanyTokenHandler invalidates the current token.
func RevokeCompanyTokenHandler(svc company.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		if err := svc.RevokeToken(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"revoked": true})
	}
}

// GetCompanyProfileHandler returns the authenticated company.
func GetCompanyProfileHandler(svc company.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		profile, err := svc.GetProfile(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateCompanyProfileHandler applies a partial update to the profile.
func UpdateCompanyProfileHandler(svc company.CompanyService) gin.HandlerFunc {
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
		profile, err := svc.UpdateProfile(c.Request.Context(), id, updates)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
