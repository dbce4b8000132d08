package collegesite

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"noticewatch/lib/htmlutil"
	"noticewatch/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RawNotice is one entry of the notice board listing as it appears
// on the page. Url is already resolved against the site base url,
// or empty when the href could not be parsed.
type RawNotice struct {
	Title string
	Url   string
	Date  string
}

type ClientOptions struct {
	// e.g. "https://siliguricollege.org.in/"
	BaseUrl string
	// path of the notice listing page relative to BaseUrl,
	// e.g. "news.php"
	ListingPath string
}

type Client struct {
	baseUrl *url.URL
	listing string
	http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !baseUrl.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute: %s", opts.BaseUrl)
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 10)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{
		baseUrl: baseUrl,
		listing: opts.ListingPath,
		http:    client,
	}, nil
}

func (c *Client) resolveUrl(href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return c.baseUrl.ResolveReference(ref).String()
}

// FetchListing scrapes the notice board listing page and returns its
// entries in page order (newest first by site convention).
func (c *Client) FetchListing(ctx context.Context) ([]RawNotice, error) {
	ctx, span := tracer.Start(ctx, "FetchListing")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.listing)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("%w: %s", ErrFetch, err)
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, res.Request.URL, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse listing html")
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	var notices []RawNotice
	doc.Find(".panel.panel-default").Each(func(_ int, panel *goquery.Selection) {
		titleLink := panel.Find(".panel-title a").First()
		if titleLink.Length() == 0 {
			return
		}

		notices = append(notices, RawNotice{
			Title: htmlutil.CleanText(titleLink.Text()),
			Url:   c.resolveUrl(titleLink.AttrOr("href", "")),
			Date:  htmlutil.CleanText(panel.Find(".panel-footer span").First().Text()),
		})
	})

	span.SetAttributes(attribute.Int("notices", len(notices)))
	return notices, nil
}

// FetchSecondaryLink scrapes a notice's own page for the google drive
// document it links to. Returns "" when the page has no drive link,
// which is not an error.
func (c *Client) FetchSecondaryLink(ctx context.Context, noticeUrl string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchSecondaryLink")
	defer span.End()
	span.SetAttributes(attribute.String("url", noticeUrl))

	res, err := c.http.R().
		SetContext(ctx).
		Get(noticeUrl)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return "", fmt.Errorf("%w: %s", ErrFetch, err)
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "unexpected status")
		return "", fmt.Errorf("%w: %s returned status %d", ErrFetch, noticeUrl, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse notice html")
		return "", fmt.Errorf("parse notice page: %w", err)
	}

	anchors := htmlutil.GetAnchors(ctx, doc.Find(`a[href*="drive.google.com"]`))
	if len(anchors) == 0 {
		return "", nil
	}
	return anchors[0].Href, nil
}
