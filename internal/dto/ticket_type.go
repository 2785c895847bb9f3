package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kkcy/ticketcare/internal/domain"
)

// CreateTicketTypeRequest represents the organizer request to provision a
// ticket type with per-time-slot inventory
type CreateTicketTypeRequest struct {
	EventID       string          `json:"event_id" binding:"required"`
	EventSlug     string          `json:"event_slug"` // used for cache invalidation only
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	MaxPerOrder   int             `json:"max_per_order"`
	MinPerOrder   int             `json:"min_per_order"`
	SaleStartTime time.Time       `json:"sale_start_time" binding:"required"`
	SaleEndTime   time.Time       `json:"sale_end_time" binding:"required"`
	TimeSlotIDs   []string        `json:"time_slot_ids" binding:"required"`
}

// Validate validates the CreateTicketTypeRequest
func (r *CreateTicketTypeRequest) Validate() (bool, string) {
	if r.EventID == "" {
		return false, "Event ID is required"
	}
	if r.Name == "" {
		return false, "Name is required"
	}
	if r.Price.IsNegative() {
		return false, "Price must not be negative"
	}
	if r.Quantity < 0 {
		return false, "Quantity must not be negative"
	}
	if r.MinPerOrder < 1 {
		return false, "Min per order must be at least 1"
	}
	if r.MaxPerOrder < r.MinPerOrder {
		return false, "Max per order must not be less than min per order"
	}
	if r.SaleStartTime.IsZero() || r.SaleEndTime.IsZero() {
		return false, "Sale window is required"
	}
	if !r.SaleStartTime.Before(r.SaleEndTime) {
		return false, "Sale start time must be before sale end time"
	}
	if len(r.TimeSlotIDs) == 0 {
		return false, "At least one time slot is required"
	}
	return true, ""
}

// UpdateTicketTypeRequest represents the organizer request to update a
// ticket type. Inventory rows are never touched by an update.
type UpdateTicketTypeRequest struct {
	EventID       string           `json:"event_id" binding:"required"`
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	MaxPerOrder   *int             `json:"max_per_order"`
	MinPerOrder   *int             `json:"min_per_order"`
	SaleStartTime *time.Time       `json:"sale_start_time"`
	SaleEndTime   *time.Time       `json:"sale_end_time"`
}

// Validate validates the UpdateTicketTypeRequest
func (r *UpdateTicketTypeRequest) Validate() (bool, string) {
	if r.EventID == "" {
		return false, "Event ID is required"
	}
	if r.Name == "" && r.Description == nil && r.Price == nil &&
		r.MaxPerOrder == nil && r.MinPerOrder == nil &&
		r.SaleStartTime == nil && r.SaleEndTime == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Price != nil && r.Price.IsNegative() {
		return false, "Price must not be negative"
	}
	if r.MinPerOrder != nil && *r.MinPerOrder < 1 {
		return false, "Min per order must be at least 1"
	}
	if r.MinPerOrder != nil && r.MaxPerOrder != nil && *r.MaxPerOrder < *r.MinPerOrder {
		return false, "Max per order must not be less than min per order"
	}
	if r.SaleStartTime != nil && r.SaleEndTime != nil && !r.SaleStartTime.Before(*r.SaleEndTime) {
		return false, "Sale start time must be before sale end time"
	}
	return true, ""
}

// TicketTypeResponse represents a ticket type in API responses
type TicketTypeResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         float64 `json:"price"`
	MaxPerOrder   int     `json:"max_per_order"`
	MinPerOrder   int     `json:"min_per_order"`
	SaleStartTime string  `json:"sale_start_time"`
	SaleEndTime   string  `json:"sale_end_time"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToTicketTypeResponse converts a domain ticket type to a response DTO
func ToTicketTypeResponse(tt *domain.TicketType) *TicketTypeResponse {
	return &TicketTypeResponse{
		ID:            tt.ID,
		EventID:       tt.EventID,
		Name:          tt.Name,
		Description:   tt.Description,
		Price:         tt.Price.InexactFloat64(),
		MaxPerOrder:   tt.MaxPerOrder,
		MinPerOrder:   tt.MinPerOrder,
		SaleStartTime: tt.SaleStartTime.UTC().Format(time.RFC3339),
		SaleEndTime:   tt.SaleEndTime.UTC().Format(time.RFC3339),
		CreatedAt:     tt.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     tt.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
