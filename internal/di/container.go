package di

import (
	"github.com/kkcy/ticketcare/internal/cache"
	"github.com/kkcy/ticketcare/internal/handler"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/internal/service"
	"github.com/kkcy/ticketcare/internal/storage"
	"github.com/kkcy/ticketcare/pkg/database"
	"github.com/kkcy/ticketcare/pkg/logger"
	"github.com/kkcy/ticketcare/pkg/redis"
)

// Container holds all dependencies for the API service
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Redis  *redis.Client
	Store  storage.BlobStore
	Logger *logger.Logger

	// Repositories
	CatalogRepo    repository.CatalogRepository
	TicketTypeRepo repository.TicketTypeRepository
	OrderRepo      repository.OrderRepository
	PeopleRepo     repository.PeopleRepository

	// Collaborators
	Invalidator cache.Invalidator

	// Services
	CatalogService    service.CatalogService
	TicketTypeService service.TicketTypeService
	OrderService      service.OrderService
	PeopleService     service.PeopleService

	// Handlers
	HealthHandler     *handler.HealthHandler
	CatalogHandler    *handler.CatalogHandler
	TicketTypeHandler *handler.TicketTypeHandler
	OrderHandler      *handler.OrderHandler
	PeopleHandler     *handler.PeopleHandler
	UploadHandler     *handler.UploadHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB     *database.PostgresDB
	Redis  *redis.Client
	Store  storage.BlobStore
	Logger *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Store:  cfg.Store,
		Logger: cfg.Logger,
	}

	// Initialize repositories
	c.CatalogRepo = repository.NewPostgresCatalogRepository(c.DB.Pool())
	c.TicketTypeRepo = repository.NewPostgresTicketTypeRepository(c.DB.Pool())
	c.OrderRepo = repository.NewPostgresOrderRepository(c.DB.Pool())
	c.PeopleRepo = repository.NewPostgresPeopleRepository(c.DB.Pool())

	// Initialize collaborators
	c.Invalidator = cache.NewRedisInvalidator(c.Redis, c.Logger)

	// Initialize services
	c.CatalogService = service.NewCatalogService(c.CatalogRepo, c.Logger)
	c.TicketTypeService = service.NewTicketTypeService(c.TicketTypeRepo, c.CatalogRepo, c.Invalidator, c.Logger)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.Logger)
	c.PeopleService = service.NewPeopleService(c.PeopleRepo, c.Logger)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService)
	c.TicketTypeHandler = handler.NewTicketTypeHandler(c.TicketTypeService)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)
	c.PeopleHandler = handler.NewPeopleHandler(c.PeopleService)
	c.UploadHandler = handler.NewUploadHandler(c.Store, c.Logger)

	return c
}
