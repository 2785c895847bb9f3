package service

import (
	"context"
	"fmt"

	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/pkg/logger"
)

type orderService struct {
	orderRepo repository.OrderRepository
	log       *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, log *logger.Logger) OrderService {
	return &orderService{orderRepo: orderRepo, log: log}
}

// List returns one page of dashboard order rows plus the total count
// across all pages.
func (s *orderService) List(ctx context.Context, search, organizerID string, page filter.Page) ([]map[string]any, int64, error) {
	f := filter.New().
		WithSearch(search, "first_name", "last_name", "email", "phone").
		WithForeignKey("organizer_id", organizerID).
		WithPage(page)

	rows, total, err := s.orderRepo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, total, nil
}
