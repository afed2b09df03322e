package advisor

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// TableFetcher returns the raw text of one source table.
type TableFetcher interface {
	Fetch(ctx context.Context, table domain.Table) (string, error)
}

// FetchTables fetches all four tables concurrently. The first error cancels
// the remaining fetches and is returned; no partial result is produced.
func FetchTables(ctx context.Context, fetcher TableFetcher) (domain.RawTables, error) {
	var (
		raw domain.RawTables
		mu  sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, table := range domain.Tables {
		g.Go(func() error {
			text, err := fetcher.Fetch(ctx, table)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", table, err)
			}
			mu.Lock()
			defer mu.Unlock()
			return raw.Set(table, text)
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RawTables{}, err
	}
	return raw, nil
}
