package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/filter"
	"github.com/kkcy/ticketcare/internal/repository"
	"github.com/kkcy/ticketcare/pkg/logger"
)

type mockCatalogRepo struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockCatalogRepo) ListEvents(ctx context.Context, f *filter.Filter) ([]*domain.Event, error) {
	return nil, m.err
}

func (m *mockCatalogRepo) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events[id], nil
}

func (m *mockCatalogRepo) ListVenues(ctx context.Context, f *filter.Filter) ([]*domain.Venue, error) {
	return nil, m.err
}

func (m *mockCatalogRepo) ListTimeSlots(ctx context.Context, f *filter.Filter) ([]*domain.TimeSlot, error) {
	return nil, m.err
}

type mockTicketTypeRepo struct {
	created      *domain.TicketType
	createdSlots []string
	createdQty   int
	createErr    error
	existing     *domain.TicketType
	getErr       error
	updated      *domain.TicketType
	updateErr    error
	listResult   []*domain.TicketType
	listErr      error
}

func (m *mockTicketTypeRepo) CreateWithInventory(ctx context.Context, tt *domain.TicketType, timeSlotIDs []string, quantity int) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = tt
	m.createdSlots = timeSlotIDs
	m.createdQty = quantity
	return nil
}

func (m *mockTicketTypeRepo) GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.existing == nil || m.existing.ID != id {
		return nil, nil
	}
	if eventID != "" && m.existing.EventID != eventID {
		return nil, nil
	}
	return m.existing, nil
}

func (m *mockTicketTypeRepo) List(ctx context.Context, f *filter.Filter) ([]*domain.TicketType, error) {
	return m.listResult, m.listErr
}

func (m *mockTicketTypeRepo) Update(ctx context.Context, tt *domain.TicketType) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = tt
	return nil
}

func (m *mockTicketTypeRepo) ListInventory(ctx context.Context, ticketTypeID string) ([]*domain.Inventory, error) {
	return nil, nil
}

type mockInvalidator struct {
	slugs []string
	err   error
}

func (m *mockInvalidator) InvalidateEvent(ctx context.Context, slug string) error {
	m.slugs = append(m.slugs, slug)
	return m.err
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func validCreateRequest() *dto.CreateTicketTypeRequest {
	return &dto.CreateTicketTypeRequest{
		EventID:       "event-1",
		Name:          "Early Bird",
		Price:         decimal.NewFromInt(120),
		Quantity:      50,
		MaxPerOrder:   4,
		MinPerOrder:   1,
		SaleStartTime: time.Now(),
		SaleEndTime:   time.Now().Add(24 * time.Hour),
		TimeSlotIDs:   []string{"slot-1", "slot-2"},
	}
}

func TestCreate_ProvisionsWithFullQuantityPerSlot(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Slug: "summer-fest"},
	}}
	ttRepo := &mockTicketTypeRepo{}
	inv := &mockInvalidator{}
	svc := NewTicketTypeService(ttRepo, catalogRepo, inv, testLogger())

	tt, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tt.ID == "" {
		t.Error("expected generated id")
	}
	if ttRepo.createdQty != 50 {
		t.Errorf("quantity = %d, want 50", ttRepo.createdQty)
	}
	if len(ttRepo.createdSlots) != 2 {
		t.Errorf("time slots = %d, want 2", len(ttRepo.createdSlots))
	}
}

func TestCreate_InvalidatesEventCacheBySlug(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Slug: "summer-fest"},
	}}
	ttRepo := &mockTicketTypeRepo{}
	inv := &mockInvalidator{}
	svc := NewTicketTypeService(ttRepo, catalogRepo, inv, testLogger())

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(inv.slugs) != 1 || inv.slugs[0] != "summer-fest" {
		t.Errorf("invalidated slugs = %v, want [summer-fest]", inv.slugs)
	}
}

func TestCreate_RequestSlugOverridesEventSlug(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Slug: "summer-fest"},
	}}
	ttRepo := &mockTicketTypeRepo{}
	inv := &mockInvalidator{}
	svc := NewTicketTypeService(ttRepo, catalogRepo, inv, testLogger())

	req := validCreateRequest()
	req.EventSlug = "summer-fest-2026"
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(inv.slugs) != 1 || inv.slugs[0] != "summer-fest-2026" {
		t.Errorf("invalidated slugs = %v, want [summer-fest-2026]", inv.slugs)
	}
}

func TestCreate_EventNotFound(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{}}
	ttRepo := &mockTicketTypeRepo{}
	svc := NewTicketTypeService(ttRepo, catalogRepo, &mockInvalidator{}, testLogger())

	_, err := svc.Create(context.Background(), validCreateRequest())
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Create() error = %v, want ErrEventNotFound", err)
	}
}

func TestCreate_RepositoryFailureIsProvisioningError(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Slug: "summer-fest"},
	}}
	ttRepo := &mockTicketTypeRepo{createErr: errors.New("insert inventory: foreign key violation")}
	inv := &mockInvalidator{}
	svc := NewTicketTypeService(ttRepo, catalogRepo, inv, testLogger())

	_, err := svc.Create(context.Background(), validCreateRequest())
	if !errors.Is(err, ErrProvisioningFailed) {
		t.Errorf("Create() error = %v, want ErrProvisioningFailed", err)
	}
	if len(inv.slugs) != 0 {
		t.Errorf("cache invalidated after failed provisioning: %v", inv.slugs)
	}
}

func TestCreate_InvalidationFailureDoesNotFailRequest(t *testing.T) {
	catalogRepo := &mockCatalogRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Slug: "summer-fest"},
	}}
	ttRepo := &mockTicketTypeRepo{}
	inv := &mockInvalidator{err: errors.New("redis: connection refused")}
	svc := NewTicketTypeService(ttRepo, catalogRepo, inv, testLogger())

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Errorf("Create() error = %v, want nil", err)
	}
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	desc := "General admission"
	existing := &domain.TicketType{
		ID:          "tt-1",
		EventID:     "event-1",
		Name:        "General",
		Description: &desc,
		Price:       decimal.NewFromInt(80),
		MaxPerOrder: 4,
		MinPerOrder: 1,
	}
	ttRepo := &mockTicketTypeRepo{existing: existing}
	svc := NewTicketTypeService(ttRepo, &mockCatalogRepo{}, &mockInvalidator{}, testLogger())

	newPrice := decimal.NewFromInt(95)
	updated, err := svc.Update(context.Background(), "tt-1", &dto.UpdateTicketTypeRequest{
		EventID: "event-1",
		Price:   &newPrice,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.Price.Equal(newPrice) {
		t.Errorf("price = %s, want %s", updated.Price, newPrice)
	}
	if updated.Name != "General" {
		t.Errorf("name = %q, want unchanged", updated.Name)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Error("description changed unexpectedly")
	}
}

func TestUpdate_WrongEventIsNotFound(t *testing.T) {
	existing := &domain.TicketType{ID: "tt-1", EventID: "event-1", Name: "General"}
	ttRepo := &mockTicketTypeRepo{existing: existing}
	svc := NewTicketTypeService(ttRepo, &mockCatalogRepo{}, &mockInvalidator{}, testLogger())

	_, err := svc.Update(context.Background(), "tt-1", &dto.UpdateTicketTypeRequest{
		EventID: "event-2",
		Name:    "VIP",
	})
	if !errors.Is(err, ErrTicketTypeNotFound) {
		t.Errorf("Update() error = %v, want ErrTicketTypeNotFound", err)
	}
	if ttRepo.updated != nil {
		t.Error("update ran despite ownership mismatch")
	}
}

func TestUpdate_NoRowsAffectedIsNotFound(t *testing.T) {
	existing := &domain.TicketType{ID: "tt-1", EventID: "event-1", Name: "General"}
	ttRepo := &mockTicketTypeRepo{existing: existing, updateErr: repository.ErrNoRowsAffected}
	svc := NewTicketTypeService(ttRepo, &mockCatalogRepo{}, &mockInvalidator{}, testLogger())

	_, err := svc.Update(context.Background(), "tt-1", &dto.UpdateTicketTypeRequest{
		EventID: "event-1",
		Name:    "VIP",
	})
	if !errors.Is(err, ErrTicketTypeNotFound) {
		t.Errorf("Update() error = %v, want ErrTicketTypeNotFound", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	ttRepo := &mockTicketTypeRepo{}
	svc := NewTicketTypeService(ttRepo, &mockCatalogRepo{}, &mockInvalidator{}, testLogger())

	_, err := svc.GetByID(context.Background(), "missing", "")
	if !errors.Is(err, ErrTicketTypeNotFound) {
		t.Errorf("GetByID() error = %v, want ErrTicketTypeNotFound", err)
	}
}
