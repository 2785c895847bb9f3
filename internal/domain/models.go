package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents an event listed on the storefront
type Event struct {
	ID          string     `json:"id"`
	OrganizerID string     `json:"organizer_id"`
	VenueID     *string    `json:"venue_id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"` // draft, published, cancelled, completed
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// EventStatus constants
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Venue represents a venue where events are held
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlot represents a bookable time window within an event date
type TimeSlot struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	EventDate time.Time `json:"event_date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketType represents a purchasable category of admission for an event
type TicketType struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	MaxPerOrder   int             `json:"max_per_order"`
	MinPerOrder   int             `json:"min_per_order"`
	SaleStartTime time.Time       `json:"sale_start_time"`
	SaleEndTime   time.Time       `json:"sale_end_time"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Inventory is the ticket count for one (ticket type, time slot) pair.
// Rows are created only as a side effect of ticket type provisioning.
type Inventory struct {
	ID           string    `json:"id"`
	TicketTypeID string    `json:"ticket_type_id"`
	TimeSlotID   string    `json:"time_slot_id"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Order represents a completed or pending purchase
type Order struct {
	ID          int64           `json:"id"`
	EventID     string          `json:"event_id"`
	OrganizerID string          `json:"organizer_id"`
	CustomerID  string          `json:"customer_id"`
	Status      string          `json:"status"` // pending, paid, cancelled, refunded
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderStatus constants
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// Customer represents a storefront buyer
type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User represents a dashboard account belonging to an organizer
type User struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Organizer represents the account that owns and manages events
type Organizer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
