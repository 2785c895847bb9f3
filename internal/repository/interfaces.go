package repository

import (
	"context"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
)

// CatalogRepository provides read access to storefront entities
type CatalogRepository interface {
	ListEvents(ctx context.Context, f *filter.Filter) ([]*domain.Event, error)
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	ListVenues(ctx context.Context, f *filter.Filter) ([]*domain.Venue, error)
	ListTimeSlots(ctx context.Context, f *filter.Filter) ([]*domain.TimeSlot, error)
}

// TicketTypeRepository persists ticket types and their inventory
type TicketTypeRepository interface {
	// CreateWithInventory inserts the ticket type and one inventory row
	// per time slot id in a single transaction. Each inventory row
	// carries the full quantity. On any failure nothing persists.
	CreateWithInventory(ctx context.Context, tt *domain.TicketType, timeSlotIDs []string, quantity int) error
	GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error)
	List(ctx context.Context, f *filter.Filter) ([]*domain.TicketType, error)
	// Update applies field changes scoped to the owning event.
	// Inventory rows are never touched.
	Update(ctx context.Context, tt *domain.TicketType) error
	ListInventory(ctx context.Context, ticketTypeID string) ([]*domain.Inventory, error)
}

// OrderRepository provides the paginated internal-API order listing
type OrderRepository interface {
	// List returns one generic row per order plus the total count. The
	// count query runs concurrently with the page query.
	List(ctx context.Context, f *filter.Filter) ([]map[string]any, int64, error)
}

// PeopleRepository provides customer and user listings
type PeopleRepository interface {
	ListCustomers(ctx context.Context, f *filter.Filter, eventID, organizerID string) ([]*domain.Customer, error)
	ListUsers(ctx context.Context, f *filter.Filter, eventID string) ([]*domain.User, error)
}
