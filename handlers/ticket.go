package handlers

import (
	"net/http"

	"agendly/services/support"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// CreateTicketHandler opens a support ticket.
func CreateTicketHandler(svc support.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var req support.TicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		ticket, err := svc.CreateTicket(c.Request.Context(), id, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, ticket)
	}
}

// ListTicketsHandler lists the company's tickets.
func ListTicketsHandler(svc support.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		tickets, err := svc.ListTickets(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// UpdateTicketStatusHandler moves a ticket between statuses.
func UpdateTicketStatusHandler(svc support.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		ticket, err := svc.UpdateTicketStatus(c.Request.Context(), id, c.Param("id"), req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}
