package notices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"noticewatch/lib/timezone"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("noticewatch.services.notices")

// Pipeline runs one discovery pass: load the baseline, fetch the
// listing, select the unseen notices, enrich them and merge the
// result back into the store.
type Pipeline struct {
	src   Source
	store *Store
	now   func() time.Time
}

func NewPipeline(src Source, store *Store) Pipeline {
	return Pipeline{
		src:   src,
		store: store,
		now:   timezone.Now,
	}
}

// Summary is what a run reports when it finishes.
type Summary struct {
	// entries on the listing page
	Found int
	// entries not present in the baseline
	New int
	// listing entries dropped for lacking a usable url
	Dropped int
	// notices in the store after the run
	Total     int
	StorePath string
}

// Run executes a single pass. A listing failure is fatal for the run
// but not for the process: it returns a zero summary with a nil error
// and leaves the store untouched. A persist failure is returned; the
// previous store version stays intact.
func (p Pipeline) Run(ctx context.Context) (Summary, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	baseline, found, err := p.store.Load(ctx)
	if errors.Is(err, ErrCorruptStore) {
		backup, moveErr := p.store.MoveCorruptAside(p.now().Unix())
		if moveErr != nil {
			// refuse to write over data we can read but not decode
			return Summary{}, fmt.Errorf("move corrupt store aside: %w", moveErr)
		}
		slog.WarnContext(
			ctx, "store is corrupt, starting over with an empty baseline",
			"backup", backup,
			"err", err,
		)
		baseline, found = Record{}, false
	} else if err != nil {
		return Summary{}, fmt.Errorf("load store: %w", err)
	}
	if found {
		slog.InfoContext(ctx, "loaded store", "notices", len(baseline.Notices))
	}

	fresh, err := p.src.FetchListing(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch notice listing", "err", err)
		return Summary{StorePath: p.store.Path(), Total: len(baseline.Notices)}, nil
	}
	if len(fresh) == 0 {
		slog.InfoContext(ctx, "no notices found on the listing page")
		return Summary{StorePath: p.store.Path(), Total: len(baseline.Notices)}, nil
	}
	slog.InfoContext(ctx, "fetched notice listing", "notices", len(fresh))

	selected, dropped := SelectNew(fresh, baselineUrls(baseline))
	if dropped > 0 {
		slog.WarnContext(ctx, "dropped listing entries without a usable url", "count", dropped)
	}

	if len(selected) > 0 {
		slog.InfoContext(ctx, "found new notices", "count", len(selected))
		Enrich(ctx, p.src, selected)
	} else {
		slog.InfoContext(ctx, "no new notices, refreshing timestamp only")
	}

	// new notices first, then the prior store verbatim
	combined := make([]Notice, 0, len(selected)+len(baseline.Notices))
	combined = append(combined, selected...)
	combined = append(combined, baseline.Notices...)

	rec := Record{
		ScrapedAt:    p.now(),
		TotalNotices: len(combined),
		Notices:      combined,
	}
	err = p.store.Write(ctx, rec)
	if err != nil {
		return Summary{}, fmt.Errorf("persist store: %w", err)
	}

	span.SetAttributes(
		attribute.Int("found", len(fresh)),
		attribute.Int("new", len(selected)),
		attribute.Int("total", len(combined)),
	)
	return Summary{
		Found:     len(fresh),
		New:       len(selected),
		Dropped:   dropped,
		Total:     len(combined),
		StorePath: p.store.Path(),
	}, nil
}
