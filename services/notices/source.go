package notices

import (
	"context"

	"noticewatch/lib/scrapers/collegesite"
)

// Source is the extraction port the pipeline pulls notices through.
// It exists so the college website can be substituted in tests.
type Source interface {
	FetchListing(ctx context.Context) ([]Notice, error)
	FetchSecondaryLink(ctx context.Context, url string) (string, error)
}

type collegeSource struct {
	client *collegesite.Client
}

// NewCollegeSource adapts a collegesite client to the pipeline's
// extraction port.
func NewCollegeSource(client *collegesite.Client) Source {
	return collegeSource{client: client}
}

func (s collegeSource) FetchListing(ctx context.Context) ([]Notice, error) {
	raw, err := s.client.FetchListing(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Notice, len(raw))
	for i, r := range raw {
		out[i] = Notice{
			Title: r.Title,
			Url:   r.Url,
		}
		if r.Date != "" {
			date := r.Date
			out[i].Date = &date
		}
	}
	return out, nil
}

func (s collegeSource) FetchSecondaryLink(ctx context.Context, url string) (string, error) {
	return s.client.FetchSecondaryLink(ctx, url)
}
