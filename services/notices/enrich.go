package notices

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Enrich fetches the google drive link for each new notice in order
// and attaches it in place. A failed fetch leaves that notice's
// GoogleDrive nil and moves on; one unreachable notice page must not
// abort the run.
func Enrich(ctx context.Context, src Source, items []Notice) {
	ctx, span := tracer.Start(ctx, "Enrich")
	defer span.End()
	span.SetAttributes(attribute.Int("notices", len(items)))

	for i := range items {
		slog.InfoContext(
			ctx, "fetching drive link",
			"n", i+1,
			"total", len(items),
			"title", items[i].Title,
		)

		link, err := src.FetchSecondaryLink(ctx, items[i].Url)
		if err != nil {
			slog.WarnContext(
				ctx, "failed to fetch drive link",
				"url", items[i].Url,
				"err", err,
			)
			continue
		}
		if link == "" {
			continue
		}
		items[i].GoogleDrive = &link
	}
}
