package service

import (
	"context"
	"fmt"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/pkg/logger"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	log         *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, log *logger.Logger) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, log: log}
}

func (s *catalogService) ListEvents(ctx context.Context, query string) ([]*domain.Event, error) {
	f := filter.New().WithSearch(query, "title")
	events, err := s.catalogRepo.ListEvents(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *catalogService) ListVenues(ctx context.Context, query string) ([]*domain.Venue, error) {
	f := filter.New().WithSearch(query, "name")
	venues, err := s.catalogRepo.ListVenues(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

func (s *catalogService) ListTimeSlots(ctx context.Context, eventID string) ([]*domain.TimeSlot, error) {
	f := filter.New().WithForeignKey("event_id", eventID)
	slots, err := s.catalogRepo.ListTimeSlots(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return slots, nil
}
