package service

import (
	"context"
	"fmt"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/pkg/logger"
)

type peopleService struct {
	peopleRepo repository.PeopleRepository
	log        *logger.Logger
}

// NewPeopleService creates a new people service
func NewPeopleService(peopleRepo repository.PeopleRepository, log *logger.Logger) PeopleService {
	return &peopleService{peopleRepo: peopleRepo, log: log}
}

func (s *peopleService) ListCustomers(ctx context.Context, query, eventID, organizerID string) ([]*domain.Customer, error) {
	f := filter.New().WithSearch(query, "first_name", "last_name", "email", "phone")
	customers, err := s.peopleRepo.ListCustomers(ctx, f, eventID, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *peopleService) ListUsers(ctx context.Context, query, eventID, organizerID string) ([]*domain.User, error) {
	f := filter.New().
		WithSearch(query, "first_name", "last_name", "email").
		WithForeignKey("organizer_id", organizerID)
	users, err := s.peopleRepo.ListUsers(ctx, f, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
