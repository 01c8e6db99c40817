package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gpswatch/notamview/internal/domain"
	"github.com/gpswatch/notamview/internal/ingest"
	"github.com/gpswatch/notamview/internal/observability"
)

// SourceFetcher retrieves the raw advisory lines from the upstream source.
type SourceFetcher interface {
	FetchLines(ctx context.Context) ([]string, error)
}

// DayStore appends raw records to the per-day persistent store, skipping
// records the day already holds.
type DayStore interface {
	AddMissing(day string, records ...domain.RawRecord) (int, error)
}

// FeedPublisher pushes validated NOTAMs for one day to downstream consumers.
type FeedPublisher interface {
	PublishBatch(ctx context.Context, day string, notams []domain.Notam) error
}

// Pipeline orchestrates the fetch-expand-store sweep.
type Pipeline struct {
	fetcher   SourceFetcher
	store     DayStore
	publisher FeedPublisher // nil when the feed is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
	interval  time.Duration
}

// New creates a Pipeline. publisher may be nil, in which case accepted NOTAMs
// are stored but not published.
func New(f SourceFetcher, s DayStore, p FeedPublisher, logger *slog.Logger, metrics *observability.Metrics, interval time.Duration) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		store:     s,
		publisher: p,
		logger:    logger,
		metrics:   metrics,
		interval:  interval,
	}
}

// CheckReadiness returns nil once the pipeline has completed at least one
// sweep, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not completed a sweep yet")
	}
	return nil
}

// Run executes sweeps on the configured interval until the context is
// cancelled. Failed sweeps are retried with exponential backoff.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "interval", p.interval)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	// Keeps retry storms short while avoiding tight loops during source outages.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		if err := p.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.Info("pipeline stopping", "reason", ctx.Err())
				return nil
			}
			p.logger.Error("sweep failed", "error", err)
			if !sleepWithContext(ctx, backoff) {
				return nil
			}
			backoff = nextBackoff(backoff, maxBackoff)
			continue
		}
		backoff = 200 * time.Millisecond

		if p.interval <= 0 {
			p.logger.Info("single sweep complete, pipeline stopping")
			return nil
		}
		if !sleepWithContext(ctx, p.interval) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// RunOnce performs a single sweep: fetch the advisory lines, group them into
// advisories, expand each group into a raw record per valid day, persist the
// records, then validate and publish the accepted NOTAMs.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := time.Now()

	lines, err := p.fetcher.FetchLines(ctx)
	if err != nil {
		return err
	}
	p.metrics.LinesScanned.Add(float64(len(lines)))

	groups := ingest.GroupLines(lines)
	p.metrics.AdvisoriesExtracted.Add(float64(len(groups)))

	byDay := p.expandGroups(groups)
	days := make([]string, 0, len(byDay))
	for day, records := range byDay {
		appended, err := p.store.AddMissing(day, records...)
		if err != nil {
			return err
		}
		p.metrics.RecordsStored.Add(float64(appended))
		days = append(days, day)
	}

	if err := p.publishAccepted(ctx, byDay); err != nil {
		return err
	}

	p.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("sweep complete",
		"lines", len(lines),
		"advisories", len(groups),
		"days", len(days),
		"duration", time.Since(start),
	)
	return nil
}

// expandGroups expands each advisory group into one raw record per valid day.
// Groups that fail structurally (mixed ident prefixes, malformed validity
// windows) are logged, counted, and skipped; they never abort the sweep.
func (p *Pipeline) expandGroups(groups []ingest.Group) map[string][]domain.RawRecord {
	byDay := make(map[string][]domain.RawRecord)
	for _, g := range groups {
		rec, days, err := ingest.ExpandGroup(g)
		if err != nil {
			p.logger.Warn("expand advisory failed, skipping",
				"error", err,
				"idents", g.Idents,
				"timespan", g.Key.Timespan,
			)
			p.metrics.ExpandFailures.Inc()
			continue
		}
		for _, day := range days {
			byDay[day] = append(byDay[day], rec)
		}
	}
	return byDay
}

// publishAccepted validates each day's new records and publishes the accepted
// NOTAMs to the feed. Rejected records stay in the store; the web API reports
// their diagnostics.
func (p *Pipeline) publishAccepted(ctx context.Context, byDay map[string][]domain.RawRecord) error {
	if p.publisher == nil {
		return nil
	}
	for day, records := range byDay {
		accepted, diags := domain.ValidateBatch(records)
		p.metrics.RecordsAccepted.Add(float64(len(accepted)))
		p.metrics.RecordsRejected.Add(float64(len(records) - len(accepted)))
		for _, d := range diags {
			p.logger.Warn("record rejected", "day", day, "diagnostic", d)
		}
		if err := p.publisher.PublishBatch(ctx, day, accepted); err != nil {
			return err
		}
		p.metrics.NotamsPublished.Add(float64(len(accepted)))
	}
	return nil
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
