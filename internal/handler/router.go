package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/pkg/logger"
	"github.com/kkcy/ticketcare/pkg/middleware"
)

// RouterConfig holds the router dependencies
type RouterConfig struct {
	Logger      *logger.Logger
	CORS        middleware.CORSConfig
	Session     *middleware.SessionConfig
	Health      *HealthHandler
	Catalog     *CatalogHandler
	TicketTypes *TicketTypeHandler
	Orders      *OrderHandler
	People      *PeopleHandler
	Upload      *UploadHandler
}

// NewRouter builds the gin engine with all routes and middleware. CORS runs
// first so preflight requests short-circuit with an empty 200.
func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSWithConfig(cfg.CORS))
	router.Use(middleware.RequestLogger(cfg.Logger))

	router.GET("/healthz", cfg.Health.Check)

	api := router.Group("/api")
	{
		api.GET("/events", cfg.Catalog.ListEvents)
		api.GET("/events/time-slots", cfg.Catalog.ListTimeSlots)
		api.GET("/venues", cfg.Catalog.ListVenues)

		api.GET("/ticket-types", cfg.TicketTypes.List)
		api.GET("/ticket-types/:id", cfg.TicketTypes.GetByID)
		api.POST("/ticket-types", cfg.TicketTypes.Create)
		api.PUT("/ticket-types/:id", cfg.TicketTypes.Update)

		api.GET("/orders", cfg.Orders.List)
		api.GET("/customers", cfg.People.ListCustomers)
		api.GET("/users", cfg.People.ListUsers)

		api.POST("/upload", middleware.RequireSession(cfg.Session), cfg.Upload.Upload)
	}

	return router
}
