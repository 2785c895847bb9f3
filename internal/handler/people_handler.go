package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/service"
	"github.com/kkcy/ticketcare/pkg/response"
)

// PeopleHandler handles customer and user listings
type PeopleHandler struct {
	peopleService service.PeopleService
}

// NewPeopleHandler creates a new PeopleHandler
func NewPeopleHandler(peopleService service.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		peopleService: peopleService,
	}
}

// ListCustomers handles GET /api/customers with query, event and
// organizerId filters
func (h *PeopleHandler) ListCustomers(c *gin.Context) {
	customers, err := h.peopleService.ListCustomers(c.Request.Context(),
		c.Query("query"), c.Query("event"), c.Query("organizerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list customers"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToCustomerResponses(customers)))
}

// ListUsers handles GET /api/users with query, event and organizerId filters
func (h *PeopleHandler) ListUsers(c *gin.Context) {
	users, err := h.peopleService.ListUsers(c.Request.Context(),
		c.Query("query"), c.Query("event"), c.Query("organizerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list users"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToUserResponses(users)))
}
