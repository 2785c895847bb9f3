package jsonsafe

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSanitize_Decimal(t *testing.T) {
	price := decimal.RequireFromString("49.90")
	out := Sanitize(price)

	f, ok := out.(float64)
	if !ok {
		t.Fatalf("Expected float64, got %T", out)
	}
	if f != 49.90 {
		t.Errorf("Expected 49.90, got %v", f)
	}
}

func TestSanitize_DecimalPointer(t *testing.T) {
	price := decimal.RequireFromString("10.5")
	out := Sanitize(&price)

	if out != 10.5 {
		t.Errorf("Expected 10.5, got %v", out)
	}

	var nilPrice *decimal.Decimal
	if got := Sanitize(nilPrice); got != nil {
		t.Errorf("Expected nil for nil decimal pointer, got %v", got)
	}
}

func TestSanitize_Int64(t *testing.T) {
	out := Sanitize(int64(9007199254740993))

	s, ok := out.(string)
	if !ok {
		t.Fatalf("Expected string, got %T", out)
	}
	if s != "9007199254740993" {
		t.Errorf("Expected '9007199254740993', got '%s'", s)
	}
}

func TestSanitize_Uint64(t *testing.T) {
	out := Sanitize(uint64(18446744073709551615))

	if out != "18446744073709551615" {
		t.Errorf("Expected max uint64 string, got %v", out)
	}
}

func TestSanitize_UUIDBytes(t *testing.T) {
	id := uuid.MustParse("9a010203-0405-0607-0809-0a0b0c0d0e0f")
	in := map[string]any{"event_id": [16]byte(id)}

	out := Sanitize(in).(map[string]any)
	if out["event_id"] != "9a010203-0405-0607-0809-0a0b0c0d0e0f" {
		t.Errorf("Expected canonical uuid string, got %v", out["event_id"])
	}

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(raw) != `{"event_id":"9a010203-0405-0607-0809-0a0b0c0d0e0f"}` {
		t.Errorf("Expected uuid rendered as a JSON string, got %s", raw)
	}
}

func TestSanitize_UUID(t *testing.T) {
	id := uuid.New()
	if got := Sanitize(id); got != id.String() {
		t.Errorf("Expected %s, got %v", id.String(), got)
	}
}

func TestSanitize_Time(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}
	ts := time.Date(2025, 6, 15, 20, 30, 0, 0, loc)
	out := Sanitize(ts)

	s, ok := out.(string)
	if !ok {
		t.Fatalf("Expected string, got %T", out)
	}
	// Rendered in UTC
	if s != "2025-06-15T12:30:00Z" {
		t.Errorf("Expected '2025-06-15T12:30:00Z', got '%s'", s)
	}
}

func TestSanitize_TimePointer(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := Sanitize(&ts)

	if out != "2025-01-01T00:00:00Z" {
		t.Errorf("Expected '2025-01-01T00:00:00Z', got %v", out)
	}

	var nilTime *time.Time
	if got := Sanitize(nilTime); got != nil {
		t.Errorf("Expected nil for nil time pointer, got %v", got)
	}
}

func TestSanitize_NestedStructure(t *testing.T) {
	in := map[string]any{
		"id": int64(101),
		"ticket_type": map[string]any{
			"name":  "VIP",
			"price": decimal.RequireFromString("199.00"),
		},
		"slots": []any{
			map[string]any{
				"starts_at": time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC),
				"quantity":  50,
			},
		},
	}

	out, ok := Sanitize(in).(map[string]any)
	if !ok {
		t.Fatalf("Expected map, got %T", out)
	}

	if out["id"] != "101" {
		t.Errorf("Expected id '101', got %v", out["id"])
	}

	tt := out["ticket_type"].(map[string]any)
	if tt["price"] != 199.00 {
		t.Errorf("Expected price 199.00, got %v", tt["price"])
	}
	if tt["name"] != "VIP" {
		t.Errorf("Expected name unchanged, got %v", tt["name"])
	}

	slots := out["slots"].([]any)
	slot := slots[0].(map[string]any)
	if slot["starts_at"] != "2025-03-01T18:00:00Z" {
		t.Errorf("Expected RFC 3339 slot time, got %v", slot["starts_at"])
	}
	if slot["quantity"] != 50 {
		t.Errorf("Expected quantity unchanged, got %v", slot["quantity"])
	}
}

func TestSanitize_SliceOfMaps(t *testing.T) {
	in := []map[string]any{
		{"total": decimal.RequireFromString("12.34")},
		{"total": decimal.RequireFromString("56.78")},
	}

	out, ok := Sanitize(in).([]any)
	if !ok {
		t.Fatalf("Expected []any, got %T", Sanitize(in))
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(out))
	}
	if out[0].(map[string]any)["total"] != 12.34 {
		t.Errorf("Expected 12.34, got %v", out[0].(map[string]any)["total"])
	}
}

func TestSanitize_IdempotentOnPlainJSON(t *testing.T) {
	in := map[string]any{
		"name":   "General Admission",
		"active": true,
		"count":  float64(3),
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"x": nil},
	}

	first := Sanitize(in)
	second := Sanitize(first)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected idempotence, got %v then %v", first, second)
	}
	if !reflect.DeepEqual(first, in) {
		t.Errorf("Expected plain JSON to pass through unchanged, got %v", first)
	}
}

func TestSanitize_OutputIsMarshalable(t *testing.T) {
	in := map[string]any{
		"id":      int64(7),
		"price":   decimal.RequireFromString("3.14"),
		"created": time.Now(),
	}

	if _, err := json.Marshal(Sanitize(in)); err != nil {
		t.Errorf("Expected sanitized value to marshal cleanly: %v", err)
	}
}

func TestSanitize_UnrecognizedScalarPassesThrough(t *testing.T) {
	type custom struct{ A int }
	c := custom{A: 1}

	out := Sanitize(c)
	if !reflect.DeepEqual(out, c) {
		t.Errorf("Expected pass-through, got %v", out)
	}
}
