package dto

import (
	"time"

	"github.com/kkcy/ticketcare/internal/domain"
)

// CustomerResponse represents a storefront buyer in API responses
type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// UserResponse represents a dashboard account in API responses
type UserResponse struct {
	ID          string `json:"id"`
	OrganizerID string `json:"organizer_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

// ToCustomerResponses converts domain customers to response DTOs.
// The result is never nil so empty listings serialize as [].
func ToCustomerResponses(customers []*domain.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = &CustomerResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}

// ToUserResponses converts domain users to response DTOs.
// The result is never nil so empty listings serialize as [].
func ToUserResponses(users []*domain.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = &UserResponse{
			ID:          u.ID,
			OrganizerID: u.OrganizerID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			Phone:       u.Phone,
			Role:        u.Role,
			CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}
