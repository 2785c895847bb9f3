// Package filter describes list-endpoint query constraints independently of
// any persistence technology. Handlers build a Filter from request
// parameters; the repository layer translates it into SQL at the boundary.
package filter

import "strconv"

// Predicate is one constraint on a listing query
type Predicate interface {
	isPredicate()
}

// Substring matches rows where any of Fields contains Query,
// case-insensitively. An empty Query matches everything and is
// never added to a Filter.
type Substring struct {
	Fields []string
	Query  string
}

// Equals matches rows where Field equals Value exactly
type Equals struct {
	Field string
	Value any
}

// ForeignKey matches rows referencing the entity with ID through Field
type ForeignKey struct {
	Field string
	ID    string
}

func (Substring) isPredicate()  {}
func (Equals) isPredicate()     {}
func (ForeignKey) isPredicate() {}

// Page is 1-based pagination converted to offset/limit at the
// persistence boundary
type Page struct {
	Number int
	Size   int
}

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// NewPage parses 1-based page/limit query parameters. Malformed or
// out-of-range values fall back to defaults rather than failing.
func NewPage(pageStr, limitStr string) Page {
	page := DefaultPageNumber
	if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
		page = parsed
	}

	size := DefaultPageSize
	if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= MaxPageSize {
		size = parsed
	}

	return Page{Number: page, Size: size}
}

// Offset returns the row offset for this page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the page size
func (p Page) Limit() int {
	return p.Size
}

// Filter is an ordered set of predicates plus optional pagination
type Filter struct {
	predicates []Predicate
	page       *Page
}

// New creates an empty filter
func New() *Filter {
	return &Filter{}
}

// WithSearch adds a case-insensitive substring predicate over fields.
// An empty query adds nothing: every row matches.
func (f *Filter) WithSearch(query string, fields ...string) *Filter {
	if query == "" || len(fields) == 0 {
		return f
	}
	f.predicates = append(f.predicates, Substring{Fields: fields, Query: query})
	return f
}

// WithEquals adds an equality predicate. An empty value adds nothing.
func (f *Filter) WithEquals(field string, value string) *Filter {
	if value == "" {
		return f
	}
	f.predicates = append(f.predicates, Equals{Field: field, Value: value})
	return f
}

// WithForeignKey adds a foreign-key predicate. An empty id adds nothing.
func (f *Filter) WithForeignKey(field string, id string) *Filter {
	if id == "" {
		return f
	}
	f.predicates = append(f.predicates, ForeignKey{Field: field, ID: id})
	return f
}

// WithNumericID adds an equality predicate on a numeric column parsed
// from raw. A value that does not parse is treated as an absent
// constraint, not an error.
func (f *Filter) WithNumericID(field string, raw string) *Filter {
	if raw == "" {
		return f
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return f
	}
	f.predicates = append(f.predicates, Equals{Field: field, Value: id})
	return f
}

// WithPage attaches pagination
func (f *Filter) WithPage(page Page) *Filter {
	f.page = &page
	return f
}

// Predicates returns the accumulated predicates
func (f *Filter) Predicates() []Predicate {
	return f.predicates
}

// Page returns the attached pagination, if any
func (f *Filter) Page() (Page, bool) {
	if f.page == nil {
		return Page{}, false
	}
	return *f.page, true
}
