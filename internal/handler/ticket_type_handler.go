package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/service"
	"github.com/kkcy/ticketcare/pkg/response"
)

// TicketTypeHandler handles ticket type HTTP requests
type TicketTypeHandler struct {
	ticketTypeService service.TicketTypeService
}

// NewTicketTypeHandler creates a new TicketTypeHandler
func NewTicketTypeHandler(ticketTypeService service.TicketTypeService) *TicketTypeHandler {
	return &TicketTypeHandler{
		ticketTypeService: ticketTypeService,
	}
}

// List handles GET /api/ticket-types - lists ticket types for pickers
func (h *TicketTypeHandler) List(c *gin.Context) {
	types, err := h.ticketTypeService.List(c.Request.Context(), c.Query("query"), c.Query("eventId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list ticket types"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTicketTypeSummaries(types)))
}

// GetByID handles GET /api/ticket-types/:id
func (h *TicketTypeHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	tt, err := h.ticketTypeService.GetByID(c.Request.Context(), id, c.Query("eventId"))
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Ticket type not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get ticket type"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTicketTypeResponse(tt)))
}

// Create handles POST /api/ticket-types - provisions a ticket type and its
// per-time-slot inventory
func (h *TicketTypeHandler) Create(c *gin.Context) {
	var req dto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	tt, err := h.ticketTypeService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		if errors.Is(err, service.ErrProvisioningFailed) {
			c.JSON(http.StatusInternalServerError, response.Error(response.ErrCodeProvisioningError, "Failed to provision ticket type"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create ticket type"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.ToTicketTypeResponse(tt)))
}

// Update handles PUT /api/ticket-types/:id - updates ticket type fields
// after checking the ticket type belongs to the given event
func (h *TicketTypeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	tt, err := h.ticketTypeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Ticket type not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update ticket type"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTicketTypeResponse(tt)))
}
