package seed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/stockroom/internal/domain/model"
	"github.com/okian/stockroom/pkg/logger"
)

// Run executes a complete seeding pass: health check, submit the fixtures,
// then optionally verify that a category=tools query selects exactly the
// tool items.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "seeding items",
		logger.String("baseURL", config.BaseURL),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verify", config.Verify))

	client := newHTTPClient(config.Timeout)

	if err := client.getJSON(ctx, config.BaseURL+"/healthz", nil); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	for _, item := range FixtureItems() {
		stats.ItemsSubmitted++
		status, err := client.postJSON(ctx, config.BaseURL+"/", item)
		if err != nil {
			stats.ItemsFailed++
			log.Error(ctx, "failed to submit item", logger.String("name", item.Name), logger.Error(err))
			continue
		}
		if status != http.StatusOK {
			stats.ItemsFailed++
			log.Error(ctx, "item rejected", logger.String("name", item.Name), logger.Int("status", status))
			continue
		}
		stats.ItemsAccepted++
		log.Info(ctx, "item added", logger.String("name", item.Name), logger.String("category", item.Category.String()))
	}

	if stats.ItemsFailed > 0 {
		stats.Duration = time.Since(stats.StartTime)
		return stats, fmt.Errorf("%d of %d items failed", stats.ItemsFailed, stats.ItemsSubmitted)
	}

	if config.Verify {
		if err := verifyToolsQuery(ctx, client, config, stats); err != nil {
			stats.Duration = time.Since(stats.StartTime)
			return stats, err
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "seeding complete",
		logger.Int("accepted", stats.ItemsAccepted),
		logger.String("duration", stats.Duration.String()))
	return stats, nil
}

// verifyToolsQuery checks that a category filter selects exactly the seeded
// tool items.
func verifyToolsQuery(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	var resp struct {
		Selection []model.Item `json:"selection"`
	}
	if err := client.getJSON(ctx, config.BaseURL+"/items/?category=tools", &resp); err != nil {
		return fmt.Errorf("verification query failed: %w", err)
	}

	want := map[string]bool{}
	for _, item := range FixtureItems() {
		if item.Category == model.CategoryTools {
			want[item.Name] = false
		}
	}
	for _, got := range resp.Selection {
		if _, ok := want[got.Name]; ok {
			want[got.Name] = true
			stats.ToolsSelected++
		}
	}
	for name, seen := range want {
		if !seen {
			return fmt.Errorf("seeded tool %q missing from category=tools selection", name)
		}
	}

	logger.Get().Info(ctx, "category filter verified", logger.Int("tools", stats.ToolsSelected))
	return nil
}
