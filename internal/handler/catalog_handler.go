package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/service"
	"github.com/kkcy/ticketcare/pkg/response"
)

// CatalogHandler handles storefront picker listings
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListEvents handles GET /api/events - lists events ordered by start time
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	events, err := h.catalogService.ListEvents(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list events"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToEventSummaries(events)))
}

// ListVenues handles GET /api/venues
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	venues, err := h.catalogService.ListVenues(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list venues"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToVenueSummaries(venues)))
}

// ListTimeSlots handles GET /api/events/time-slots - lists slots ordered by
// event date then start time
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.catalogService.ListTimeSlots(c.Request.Context(), c.Query("eventId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list time slots"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTimeSlotResponses(slots)))
}
