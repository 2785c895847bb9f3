package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/dto"
	"github.com/kkcy/ticketcare/internal/service"
)

type mockTicketTypeService struct {
	createResult *domain.TicketType
	createErr    error
	updateResult *domain.TicketType
	updateErr    error
	getResult    *domain.TicketType
	getErr       error
	listResult   []*domain.TicketType
	listErr      error
}

func (m *mockTicketTypeService) Create(ctx context.Context, req *dto.CreateTicketTypeRequest) (*domain.TicketType, error) {
	return m.createResult, m.createErr
}

func (m *mockTicketTypeService) Update(ctx context.Context, id string, req *dto.UpdateTicketTypeRequest) (*domain.TicketType, error) {
	return m.updateResult, m.updateErr
}

func (m *mockTicketTypeService) GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error) {
	return m.getResult, m.getErr
}

func (m *mockTicketTypeService) List(ctx context.Context, query, eventID string) ([]*domain.TicketType, error) {
	return m.listResult, m.listErr
}

func newTicketTypeRouter(svc service.TicketTypeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTicketTypeHandler(svc)
	router := gin.New()
	router.GET("/api/ticket-types", h.List)
	router.GET("/api/ticket-types/:id", h.GetByID)
	router.POST("/api/ticket-types", h.Create)
	router.PUT("/api/ticket-types/:id", h.Update)
	return router
}

func sampleTicketType() *domain.TicketType {
	return &domain.TicketType{
		ID:            "tt-1",
		EventID:       "event-1",
		Name:          "Early Bird",
		Price:         decimal.NewFromInt(120),
		MaxPerOrder:   4,
		MinPerOrder:   1,
		SaleStartTime: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		SaleEndTime:   time.Date(2026, 5, 31, 10, 0, 0, 0, time.UTC),
	}
}

func createBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"event_id":        "event-1",
		"name":            "Early Bird",
		"price":           120,
		"quantity":        50,
		"max_per_order":   4,
		"min_per_order":   1,
		"sale_start_time": "2026-05-01T10:00:00Z",
		"sale_end_time":   "2026-05-31T10:00:00Z",
		"time_slot_ids":   []string{"slot-1", "slot-2"},
	})
	return body
}

func TestCreateTicketType_Success(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{createResult: sampleTicketType()})

	req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", bytes.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		Success bool                    `json:"success"`
		Data    *dto.TicketTypeResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
	if resp.Data.ID != "tt-1" {
		t.Errorf("data.id = %q, want tt-1", resp.Data.ID)
	}
	if resp.Data.Price != 120 {
		t.Errorf("data.price = %v, want 120", resp.Data.Price)
	}
}

func TestCreateTicketType_ValidationFailure(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{})

	body, _ := json.Marshal(map[string]any{
		"event_id":        "event-1",
		"name":            "Early Bird",
		"quantity":        50,
		"max_per_order":   4,
		"min_per_order":   1,
		"sale_start_time": "2026-05-01T10:00:00Z",
		"sale_end_time":   "2026-05-31T10:00:00Z",
		"time_slot_ids":   []string{},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateTicketType_EventNotFound(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{createErr: service.ErrEventNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", bytes.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCreateTicketType_ProvisioningFailure(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{createErr: service.ErrProvisioningFailed})

	req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", bytes.NewReader(createBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Code != "PROVISIONING_ERROR" {
		t.Errorf("error.code = %q, want PROVISIONING_ERROR", resp.Error.Code)
	}
}

func TestUpdateTicketType_NotFound(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{updateErr: service.ErrTicketTypeNotFound})

	body, _ := json.Marshal(map[string]any{
		"event_id": "event-2",
		"name":     "VIP",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/ticket-types/tt-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdateTicketType_RequiresAField(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{})

	body, _ := json.Marshal(map[string]any{"event_id": "event-1"})
	req := httptest.NewRequest(http.MethodPut, "/api/ticket-types/tt-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListTicketTypes_SummaryShape(t *testing.T) {
	router := newTicketTypeRouter(&mockTicketTypeService{
		listResult: []*domain.TicketType{sampleTicketType()},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ticket-types?eventId=event-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("data length = %d, want 1", len(resp.Data))
	}
	if resp.Data[0]["id"] != "tt-1" || resp.Data[0]["name"] != "Early Bird" {
		t.Errorf("unexpected summary: %v", resp.Data[0])
	}
	if _, ok := resp.Data[0]["price"]; ok {
		t.Error("summary should not include price")
	}
}
