package repository

import (
	"fmt"
	"strings"

	"github.com/kkcy/ticketcare/internal/filter"
)

// sqlFilter accumulates WHERE conditions and positional args while
// translating filter predicates into SQL at the persistence boundary.
type sqlFilter struct {
	conds []string
	args  []any
}

func newSQLFilter() *sqlFilter {
	return &sqlFilter{}
}

// add appends a raw condition with its args. The condition should use
// placeholders produced by next().
func (s *sqlFilter) add(cond string, args ...any) {
	s.conds = append(s.conds, cond)
	s.args = append(s.args, args...)
}

// next returns the placeholder index for the next argument
func (s *sqlFilter) next() int {
	return len(s.args) + 1
}

// apply translates the filter's predicates. cols maps logical field
// names to SQL columns; unmapped fields are used as-is.
func (s *sqlFilter) apply(f *filter.Filter, cols map[string]string) {
	if f == nil {
		return
	}
	for _, p := range f.Predicates() {
		switch pred := p.(type) {
		case filter.Substring:
			ors := make([]string, len(pred.Fields))
			idx := s.next()
			for i, field := range pred.Fields {
				ors[i] = fmt.Sprintf("%s ILIKE $%d", s.column(field, cols), idx)
			}
			s.add("("+strings.Join(ors, " OR ")+")", "%"+pred.Query+"%")

		case filter.Equals:
			s.add(fmt.Sprintf("%s = $%d", s.column(pred.Field, cols), s.next()), pred.Value)

		case filter.ForeignKey:
			s.add(fmt.Sprintf("%s = $%d", s.column(pred.Field, cols), s.next()), pred.ID)
		}
	}
}

func (s *sqlFilter) column(field string, cols map[string]string) string {
	if cols != nil {
		if col, ok := cols[field]; ok {
			return col
		}
	}
	return field
}

// where returns the accumulated conditions as a WHERE clause, or an
// empty string when there are none
func (s *sqlFilter) where() string {
	if len(s.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(s.conds, " AND ")
}

// and returns the conditions prefixed with AND, for queries that
// already carry a WHERE clause
func (s *sqlFilter) and() string {
	if len(s.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(s.conds, " AND ")
}

// limitOffset appends LIMIT/OFFSET for the filter's page, if present
func (s *sqlFilter) limitOffset(f *filter.Filter) string {
	if f == nil {
		return ""
	}
	page, ok := f.Page()
	if !ok {
		return ""
	}
	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", s.next(), s.next()+1)
	s.args = append(s.args, page.Limit(), page.Offset())
	return clause
}

// arguments returns the accumulated positional args
func (s *sqlFilter) arguments() []any {
	return s.args
}
