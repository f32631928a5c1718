package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/market"
)

// ErrRefreshInFlight is returned when a refresh is requested while another
// one is still outstanding. Callers should surface it, not queue behind it.
var ErrRefreshInFlight = errors.New("refresh already in progress")

// Fetcher is the external pricing collaborator.
type Fetcher interface {
	FetchCrafts(ctx context.Context) ([]market.CraftListing, error)
}

// Ingestor runs guarded refresh passes against the pricing source.
// A pass either yields a complete catalog replacement or fails with no
// partial result; it never mutates anything itself.
type Ingestor struct {
	fetcher  Fetcher
	timeout  time.Duration
	inFlight atomic.Bool
}

// New creates an Ingestor. The timeout bounds one whole refresh pass.
func New(fetcher Fetcher, timeout time.Duration) *Ingestor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Ingestor{fetcher: fetcher, timeout: timeout}
}

// Refreshing reports whether a pass is currently outstanding.
func (g *Ingestor) Refreshing() bool {
	return g.inFlight.Load()
}

// Refresh fetches and normalizes the full craft list. It returns the
// station→crafts replacement map and the number of usable crafts.
// While a pass is outstanding, further calls fail with ErrRefreshInFlight.
func (g *Ingestor) Refresh(ctx context.Context) (map[string][]catalog.Craft, int, error) {
	if !g.inFlight.CompareAndSwap(false, true) {
		return nil, 0, ErrRefreshInFlight
	}
	defer g.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	listings, err := g.fetcher.FetchCrafts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch crafts: %w", err)
	}

	next := Normalize(listings)
	count := 0
	for _, list := range next {
		count += len(list)
	}
	return next, count, nil
}
