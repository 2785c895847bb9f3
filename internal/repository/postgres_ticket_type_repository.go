package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
)

// ErrNoRowsAffected is returned when a scoped update matches nothing
var ErrNoRowsAffected = errors.New("no rows affected")

const ticketTypeColumns = `id, event_id, name, description, price,
	max_per_order, min_per_order, sale_start_time, sale_end_time, created_at, updated_at`

// PostgresTicketTypeRepository implements TicketTypeRepository using PostgreSQL
type PostgresTicketTypeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketTypeRepository creates a new PostgresTicketTypeRepository
func NewPostgresTicketTypeRepository(pool *pgxpool.Pool) *PostgresTicketTypeRepository {
	return &PostgresTicketTypeRepository{pool: pool}
}

func scanTicketType(row pgx.Row) (*domain.TicketType, error) {
	tt := &domain.TicketType{}
	err := row.Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.Description,
		&tt.Price,
		&tt.MaxPerOrder,
		&tt.MinPerOrder,
		&tt.SaleStartTime,
		&tt.SaleEndTime,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tt, nil
}

// CreateWithInventory inserts the ticket type row and one inventory row
// per time slot id inside a single transaction. The ticket type insert
// completes before any inventory row references its id, and a failure
// at any point rolls the whole transaction back.
func (r *PostgresTicketTypeRepository) CreateWithInventory(ctx context.Context, tt *domain.TicketType, timeSlotIDs []string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	insertTicketType := `
		INSERT INTO ticket_types (id, event_id, name, description, price,
			max_per_order, min_per_order, sale_start_time, sale_end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.Exec(ctx, insertTicketType,
		tt.ID,
		tt.EventID,
		tt.Name,
		tt.Description,
		tt.Price,
		tt.MaxPerOrder,
		tt.MinPerOrder,
		tt.SaleStartTime,
		tt.SaleEndTime,
		tt.CreatedAt,
		tt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket type: %w", err)
	}

	insertInventory := `
		INSERT INTO inventories (id, ticket_type_id, time_slot_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, slotID := range timeSlotIDs {
		// each slot gets the full quantity, not a share of it
		_, err = tx.Exec(ctx, insertInventory,
			uuid.New().String(),
			tt.ID,
			slotID,
			quantity,
			tt.CreatedAt,
			tt.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert inventory for time slot %s: %w", slotID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a ticket type by ID, optionally scoped to an event
func (r *PostgresTicketTypeRepository) GetByID(ctx context.Context, id, eventID string) (*domain.TicketType, error) {
	if eventID != "" {
		query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1 AND event_id = $2`
		return scanTicketType(r.pool.QueryRow(ctx, query, id, eventID))
	}
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1`
	return scanTicketType(r.pool.QueryRow(ctx, query, id))
}

// List retrieves ticket types matching the filter, ordered by name
func (r *PostgresTicketTypeRepository) List(ctx context.Context, f *filter.Filter) ([]*domain.TicketType, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types` + sf.where() + `
		ORDER BY name ASC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.TicketType
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, tt)
	}
	return tickets, rows.Err()
}

// Update applies field changes to a ticket type scoped to its owning
// event. A ticket type belonging to a different event matches nothing
// and returns ErrNoRowsAffected.
func (r *PostgresTicketTypeRepository) Update(ctx context.Context, tt *domain.TicketType) error {
	query := `
		UPDATE ticket_types
		SET name = $3, description = $4, price = $5, max_per_order = $6, min_per_order = $7,
			sale_start_time = $8, sale_end_time = $9, updated_at = $10
		WHERE id = $1 AND event_id = $2
	`
	tt.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		tt.ID,
		tt.EventID,
		tt.Name,
		tt.Description,
		tt.Price,
		tt.MaxPerOrder,
		tt.MinPerOrder,
		tt.SaleStartTime,
		tt.SaleEndTime,
		tt.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListInventory retrieves the inventory rows for a ticket type
func (r *PostgresTicketTypeRepository) ListInventory(ctx context.Context, ticketTypeID string) ([]*domain.Inventory, error) {
	query := `SELECT id, ticket_type_id, time_slot_id, quantity, created_at, updated_at
		FROM inventories
		WHERE ticket_type_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, ticketTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Inventory
	for rows.Next() {
		inv := &domain.Inventory{}
		err := rows.Scan(
			&inv.ID,
			&inv.TicketTypeID,
			&inv.TimeSlotID,
			&inv.Quantity,
			&inv.CreatedAt,
			&inv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}
