// Package store defines the narrow record-store contract the service depends
// on: table-scoped select, insert, update and delete, each constrained by a
// conjunction of equality filters and returning the affected rows.
package store

import (
	"context"
	"encoding/json"
)

// Row is a single record exactly as the store returned it. Callers decide
// whether to decode and validate it or pass it through untouched.
type Row = json.RawMessage

// Filters is a conjunction of equality constraints. An empty or nil value
// means "match everything".
type Filters map[string]string

// Store provides access to one table of the external record store. Every call
// is a single synchronous round trip; failures propagate to the caller
// unretried.
type Store interface {
	// Select returns all rows matching the filters, in store order.
	Select(ctx context.Context, filters Filters) ([]Row, error)

	// Insert creates one row from record. The store assigns the identity.
	Insert(ctx context.Context, record map[string]any) ([]Row, error)

	// Update applies changes to every row matching the filters and returns
	// the updated rows. No matching rows yields an empty slice, not an error.
	Update(ctx context.Context, changes map[string]any, filters Filters) ([]Row, error)

	// Delete removes every row matching the filters and returns them.
	Delete(ctx context.Context, filters Filters) ([]Row, error)
}
