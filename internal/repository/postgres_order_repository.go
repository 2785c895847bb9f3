package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/kkcy/ticketcare/internal/filter"
)

// orderColumnMap maps logical filter fields to joined columns
var orderColumnMap = map[string]string{
	"first_name":   "c.first_name",
	"last_name":    "c.last_name",
	"email":        "c.email",
	"phone":        "c.phone",
	"organizer_id": "o.organizer_id",
	"event_id":     "o.event_id",
	"status":       "o.status",
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// List returns generic order rows plus the total count. The count and
// page queries run concurrently; the small risk of skew between the two
// independent reads is accepted.
func (r *PostgresOrderRepository) List(ctx context.Context, f *filter.Filter) ([]map[string]any, int64, error) {
	pageSF := newSQLFilter()
	pageSF.apply(f, orderColumnMap)

	countSF := newSQLFilter()
	countSF.apply(f, orderColumnMap)

	const fromClause = `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN events e ON e.id = o.event_id`

	pageQuery := `SELECT o.id, o.event_id, o.organizer_id, o.customer_id, o.status, o.total, o.created_at,
			c.first_name, c.last_name, c.email, c.phone, e.title AS event_title` +
		fromClause + pageSF.where() + `
		ORDER BY o.created_at DESC` + pageSF.limitOffset(f)

	countQuery := `SELECT COUNT(*)` + fromClause + countSF.where()

	var (
		orders []map[string]any
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := r.pool.Query(gctx, pageQuery, pageSF.arguments()...)
		if err != nil {
			return err
		}
		defer rows.Close()

		fields := rows.FieldDescriptions()
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return err
			}
			row := make(map[string]any, len(fields))
			for i, fd := range fields {
				row[string(fd.Name)] = values[i]
			}
			orders = append(orders, row)
		}
		return rows.Err()
	})

	g.Go(func() error {
		return r.pool.QueryRow(gctx, countQuery, countSF.arguments()...).Scan(&total)
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
