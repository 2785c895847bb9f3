package service

import (
	"context"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/filter"
)

// TicketTypeService manages ticket type provisioning and updates
type TicketTypeService interface {
	// Create provisions a ticket type and its per-time-slot inventory
	// atomically, then signals event-detail cache invalidation.
	Create(ctx context.Context, req *dto.CreateTicketTypeRequest) (*domain.TicketType, error)
	// Update applies field changes after verifying the ticket type
	// belongs to the given event. Inventory is never touched.
	Update(ctx context.Context, id string, req *dto.UpdateTicketTypeRequest) (*domain.TicketType, error)
	GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error)
	List(ctx context.Context, query, eventID string) ([]*domain.TicketType, error)
}

// CatalogService provides storefront listings
type CatalogService interface {
	ListEvents(ctx context.Context, query string) ([]*domain.Event, error)
	ListVenues(ctx context.Context, query string) ([]*domain.Venue, error)
	ListTimeSlots(ctx context.Context, eventID string) ([]*domain.TimeSlot, error)
}

// OrderService provides the paginated dashboard order listing
type OrderService interface {
	List(ctx context.Context, search, organizerID string, page filter.Page) ([]map[string]any, int64, error)
}

// PeopleService provides customer and user listings
type PeopleService interface {
	ListCustomers(ctx context.Context, query, eventID, organizerID string) ([]*domain.Customer, error)
	ListUsers(ctx context.Context, query, eventID, organizerID string) ([]*domain.User, error)
}
