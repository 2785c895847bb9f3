package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kkcy/ticketcare/internal/cache"
	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/pkg/logger"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrProvisioningFailed = errors.New("failed to provision ticket type")
)

type ticketTypeService struct {
	ticketTypeRepo repository.TicketTypeRepository
	catalogRepo    repository.CatalogRepository
	invalidator    cache.Invalidator
	log            *logger.Logger
}

// NewTicketTypeService creates a new ticket type service
func NewTicketTypeService(ticketTypeRepo repository.TicketTypeRepository, catalogRepo repository.CatalogRepository, invalidator cache.Invalidator, log *logger.Logger) TicketTypeService {
	return &ticketTypeService{
		ticketTypeRepo: ticketTypeRepo,
		catalogRepo:    catalogRepo,
		invalidator:    invalidator,
		log:            log,
	}
}

func (s *ticketTypeService) Create(ctx context.Context, req *dto.CreateTicketTypeRequest) (*domain.TicketType, error) {
	event, err := s.catalogRepo.GetEventByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	now := time.Now()
	tt := &domain.TicketType{
		ID:            uuid.New().String(),
		EventID:       req.EventID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		MaxPerOrder:   req.MaxPerOrder,
		MinPerOrder:   req.MinPerOrder,
		SaleStartTime: req.SaleStartTime,
		SaleEndTime:   req.SaleEndTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.ticketTypeRepo.CreateWithInventory(ctx, tt, req.TimeSlotIDs, req.Quantity); err != nil {
		s.log.WithContext(ctx).Error("ticket type provisioning failed",
			zap.String("event_id", req.EventID),
			zap.Int("time_slots", len(req.TimeSlotIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	// Invalidation happens after commit. A failure here leaves a stale
	// cache entry until TTL expiry, which is acceptable, so it is
	// logged and not surfaced to the caller.
	slug := req.EventSlug
	if slug == "" {
		slug = event.Slug
	}
	if err := s.invalidator.InvalidateEvent(ctx, slug); err != nil {
		s.log.WithContext(ctx).Warn("event cache invalidation failed",
			zap.String("slug", slug),
			zap.Error(err))
	}

	return tt, nil
}

func (s *ticketTypeService) Update(ctx context.Context, id string, req *dto.UpdateTicketTypeRequest) (*domain.TicketType, error) {
	existing, err := s.ticketTypeRepo.GetByID(ctx, id, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	if existing == nil {
		return nil, ErrTicketTypeNotFound
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.MaxPerOrder != nil {
		existing.MaxPerOrder = *req.MaxPerOrder
	}
	if req.MinPerOrder != nil {
		existing.MinPerOrder = *req.MinPerOrder
	}
	if req.SaleStartTime != nil {
		existing.SaleStartTime = *req.SaleStartTime
	}
	if req.SaleEndTime != nil {
		existing.SaleEndTime = *req.SaleEndTime
	}
	existing.UpdatedAt = time.Now()

	if err := s.ticketTypeRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to update ticket type: %w", err)
	}

	return existing, nil
}

func (s *ticketTypeService) GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error) {
	tt, err := s.ticketTypeRepo.GetByID(ctx, id, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	if tt == nil {
		return nil, ErrTicketTypeNotFound
	}
	return tt, nil
}

func (s *ticketTypeService) List(ctx context.Context, query, eventID string) ([]*domain.TicketType, error) {
	f := filter.New().
		WithSearch(query, "name").
		WithForeignKey("event_id", eventID)

	types, err := s.ticketTypeRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	return types, nil
}
