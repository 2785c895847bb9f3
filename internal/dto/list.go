package dto

import (
	"time"

	"github.com/kkcy/ticketcare/internal/domain"
)

// EventSummary is the storefront picker shape for events
type EventSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// VenueSummary is the storefront picker shape for venues
type VenueSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TicketTypeSummary is the dashboard picker shape for ticket types
type TicketTypeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimeSlotResponse represents a time slot in API responses
type TimeSlotResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	EventDate string `json:"event_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ToEventSummaries converts domain events to picker summaries
func ToEventSummaries(events []*domain.Event) []*EventSummary {
	out := make([]*EventSummary, len(events))
	for i, e := range events {
		out[i] = &EventSummary{ID: e.ID, Title: e.Title}
	}
	return out
}

// ToVenueSummaries converts domain venues to picker summaries
func ToVenueSummaries(venues []*domain.Venue) []*VenueSummary {
	out := make([]*VenueSummary, len(venues))
	for i, v := range venues {
		out[i] = &VenueSummary{ID: v.ID, Name: v.Name}
	}
	return out
}

// ToTicketTypeSummaries converts domain ticket types to picker summaries
func ToTicketTypeSummaries(tickets []*domain.TicketType) []*TicketTypeSummary {
	out := make([]*TicketTypeSummary, len(tickets))
	for i, tt := range tickets {
		out[i] = &TicketTypeSummary{ID: tt.ID, Name: tt.Name}
	}
	return out
}

// ToTimeSlotResponses converts domain time slots to response DTOs
func ToTimeSlotResponses(slots []*domain.TimeSlot) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = &TimeSlotResponse{
			ID:        s.ID,
			EventID:   s.EventID,
			EventDate: s.EventDate.UTC().Format("2006-01-02"),
			StartTime: s.StartTime.UTC().Format(time.RFC3339),
			EndTime:   s.EndTime.UTC().Format(time.RFC3339),
		}
	}
	return out
}
