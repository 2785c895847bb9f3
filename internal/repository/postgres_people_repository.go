package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kkcy/ticketcare/internal/domain"
	"github.com/kkcy/ticketcare/internal/filter"
)

// PostgresPeopleRepository implements PeopleRepository using PostgreSQL
type PostgresPeopleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPeopleRepository creates a new PostgresPeopleRepository
func NewPostgresPeopleRepository(pool *pgxpool.Pool) *PostgresPeopleRepository {
	return &PostgresPeopleRepository{pool: pool}
}

// ListCustomers retrieves customers matching the filter. Event and
// organizer constraints are resolved through the customers' orders.
func (r *PostgresPeopleRepository) ListCustomers(ctx context.Context, f *filter.Filter, eventID, organizerID string) ([]*domain.Customer, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	if eventID != "" {
		sf.add(fmt.Sprintf("EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = customers.id AND o.event_id = $%d)", sf.next()), eventID)
	}
	if organizerID != "" {
		sf.add(fmt.Sprintf("EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = customers.id AND o.organizer_id = $%d)", sf.next()), organizerID)
	}

	query := `SELECT id, first_name, last_name, email, COALESCE(phone, '') as phone, created_at, updated_at
		FROM customers` + sf.where() + `
		ORDER BY created_at DESC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Email,
			&customer.Phone,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// ListUsers retrieves dashboard users matching the filter. An event
// constraint resolves to the organizer that owns the event.
func (r *PostgresPeopleRepository) ListUsers(ctx context.Context, f *filter.Filter, eventID string) ([]*domain.User, error) {
	sf := newSQLFilter()
	sf.apply(f, nil)

	if eventID != "" {
		sf.add(fmt.Sprintf("organizer_id = (SELECT organizer_id FROM events WHERE id = $%d)", sf.next()), eventID)
	}

	query := `SELECT id, organizer_id, first_name, last_name, email, COALESCE(phone, '') as phone,
			role, created_at, updated_at
		FROM users` + sf.where() + `
		ORDER BY created_at DESC` + sf.limitOffset(f)

	rows, err := r.pool.Query(ctx, query, sf.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.OrganizerID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Phone,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
