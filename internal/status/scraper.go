// Package status scrapes the operator's line status page.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/UnknownOlympus/mtr-locator/internal/models"
)

// Defaults for the status page. Both can be overridden through configuration.
const (
	DefaultURL      = "https://www.mtr.com.hk/alert/tsi_simpletxt_title_en.html"
	DefaultSelector = ".status-text"
)

// NormalService is reported when the page carries no status block.
const NormalService = "All MTR lines are operating normally."

// TimestampLayout renders report timestamps, e.g. "2024-05-01 08:30:00 HKT".
const TimestampLayout = "2006-01-02 15:04:05 MST"

// ErrStatusFetch is returned when the status page cannot be fetched or parsed.
var ErrStatusFetch = errors.New("failed to fetch MTR status")

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Scraper fetches the status page and extracts the status text block.
type Scraper struct {
	client   HTTPClient
	url      string
	selector string
	location *time.Location
	now      func() time.Time
	log      *slog.Logger
}

// Option customizes a Scraper.
type Option func(*Scraper)

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scraper) { s.now = now }
}

// WithSelector overrides DefaultSelector.
func WithSelector(selector string) Option {
	return func(s *Scraper) {
		if selector != "" {
			s.selector = selector
		}
	}
}

// NewScraper creates a scraper for pageURL; an empty pageURL means DefaultURL.
func NewScraper(client HTTPClient, pageURL string, log *slog.Logger, opts ...Option) *Scraper {
	if pageURL == "" {
		pageURL = DefaultURL
	}

	s := &Scraper{
		client:   client,
		url:      pageURL,
		selector: DefaultSelector,
		location: HongKong(),
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// HongKong returns the Asia/Hong_Kong zone, or a fixed UTC+8 "HKT" zone when
// the tz database is not available.
func HongKong() *time.Location {
	loc, err := time.LoadLocation("Asia/Hong_Kong")
	if err != nil {
		const offset = 8 * 60 * 60
		return time.FixedZone("HKT", offset)
	}

	return loc
}

// Fetch downloads the status page and builds a report timestamped now.
// A page without the status element reports NormalService.
func (s *Scraper) Fetch(ctx context.Context) (*models.StatusReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrStatusFetch, err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatusFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.ErrorContext(ctx, "Status page returned an error", "status", resp.StatusCode, "url", s.url)
		return nil, fmt.Errorf("%w: status page returned %d", ErrStatusFetch, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse status page: %w", ErrStatusFetch, err)
	}

	text := strings.TrimSpace(doc.Find(s.selector).First().Text())
	if text == "" {
		s.log.DebugContext(ctx, "Status element not found, assuming normal service", "selector", s.selector)
		text = NormalService
	}

	return &models.StatusReport{
		Status:    text,
		Timestamp: s.now().In(s.location).Format(TimestampLayout),
	}, nil
}
