package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
)

const eventColumns = `id, organizer_id, venue_id, title, slug, COALESCE(description, '') as description,
	start_time, end_time, status, created_at, updated_at, deleted_at`

// PostgresCatalogRepository implements CatalogRepository using PostgreSQL
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(pool *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.VenueID,
		&event.Title,
		&event.Slug,
		&event.Description,
		&event.StartTime,
		&event.EndTime,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves events ordered by start time ascending
func (r *PostgresCatalogRepository) ListEvents(ctx context.Context, f *filter.Filter) ([]*domain.Event, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	query := `SELECT ` + eventColumns + ` FROM events
		WHERE deleted_at IS NULL` + sf.and() + `
		ORDER BY start_time ASC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// GetEventByID retrieves an event by ID
func (r *PostgresCatalogRepository) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

// ListVenues retrieves venues ordered by name
func (r *PostgresCatalogRepository) ListVenues(ctx context.Context, f *filter.Filter) ([]*domain.Venue, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	query := `SELECT id, name, COALESCE(address, '') as address, COALESCE(city, '') as city,
			COALESCE(capacity, 0) as capacity, created_at, updated_at
		FROM venues` + sf.where() + `
		ORDER BY name ASC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*domain.Venue
	for rows.Next() {
		venue := &domain.Venue{}
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Address,
			&venue.City,
			&venue.Capacity,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

// ListTimeSlots retrieves time slots ordered by event date then start time
func (r *PostgresCatalogRepository) ListTimeSlots(ctx context.Context, f *filter.Filter) ([]*domain.TimeSlot, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	query := `SELECT id, event_id, event_date, start_time, end_time, created_at, updated_at
		FROM time_slots` + sf.where() + `
		ORDER BY event_date ASC, start_time ASC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*domain.TimeSlot
	for rows.Next() {
		slot := &domain.TimeSlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.EventID,
			&slot.EventDate,
			&slot.StartTime,
			&slot.EndTime,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
