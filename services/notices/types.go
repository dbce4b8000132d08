package notices

import "time"

// Notice is one announcement discovered on the notice board. Url is
// the identity key: it is absolute, unique across the store and never
// removed once recorded.
type Notice struct {
	Title string `json:"title"`
	Url   string `json:"url"`
	// display string as published by the site, nil when the
	// listing entry carries no date
	Date *string `json:"date"`
	// link to the attached google drive document, nil when the
	// notice has none or enrichment failed
	GoogleDrive *string `json:"google_drive"`
}

// Record is the full contents of the durable store.
type Record struct {
	ScrapedAt    time.Time `json:"scraped_at"`
	TotalNotices int       `json:"total_notices"`
	Notices      []Notice  `json:"notices"`
}

func baselineUrls(r Record) map[string]struct{} {
	baseline := make(map[string]struct{}, len(r.Notices))
	for _, n := range r.Notices {
		baseline[n.Url] = struct{}{}
	}
	return baseline
}
