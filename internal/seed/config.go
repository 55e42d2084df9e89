// Package seed implements the seed-items operator tool: it pushes the
// canonical fixture items into a running instance and verifies a filtered
// query against them.
package seed

import (
	"time"

	"github.com/okian/stockroom/internal/domain/model"
)

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	Verify  bool          // Verify a category filter after seeding
}

// FixtureItems returns the canonical sample inventory. These rows exist only
// here and in tests; the service itself never reads them.
func FixtureItems() []model.Item {
	return []model.Item{
		{Name: "Hammer", Price: 9.99, Count: 20, Category: model.CategoryTools},
		{Name: "Pliers", Price: 5.99, Count: 20, Category: model.CategoryTools},
		{Name: "Nails", Price: 1.99, Count: 100, Category: model.CategoryConsumables},
	}
}

// Stats holds the outcome of a seeding run.
type Stats struct {
	ItemsSubmitted int
	ItemsAccepted  int
	ItemsFailed    int
	ToolsSelected  int
	StartTime      time.Time
	Duration       time.Duration
}
