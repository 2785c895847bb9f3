package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/jsonsafe"
	"github.com/kkcy/ticketcare/internal/service"
	"github.com/kkcy/ticketcare/pkg/response"
)

// OrderHandler handles the dashboard order listing
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// List handles GET /api/orders - paginated order rows joined with customer
// and event data. Order totals, numeric ids and timestamps go through the
// JSON-safe conversion before serialization.
func (h *OrderHandler) List(c *gin.Context) {
	page := filter.NewPage(c.Query("page"), c.Query("limit"))

	rows, total, err := h.orderService.List(c.Request.Context(), c.Query("search"), c.Query("organizerId"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list orders"))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(jsonsafe.Sanitize(rows), page.Number, page.Size, total))
}
