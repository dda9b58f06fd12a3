package status_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/UnknownOlympus/mtr-locator/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func htmlResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} [A-Z0-9+-]{3,5}$`)

func TestScraper_Fetch(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	fixed := time.Date(2024, time.May, 1, 0, 30, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	t.Run("status element present", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "https://status.example/page", req.URL.String())
				return htmlResponse(http.StatusOK, `<html><body>
					<div class="status-text">
						Tsuen Wan Line: delays of 10 minutes.
					</div>
					<div class="status-text">second block</div>
				</body></html>`), nil
			},
		}

		scraper := status.NewScraper(client, "https://status.example/page", logger, status.WithClock(clock))
		report, err := scraper.Fetch(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Tsuen Wan Line: delays of 10 minutes.", report.Status)
		assert.Equal(t, "2024-05-01 08:30:00 HKT", report.Timestamp)
	})

	t.Run("status element missing", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return htmlResponse(http.StatusOK, `<html><body><p>Welcome</p></body></html>`), nil
			},
		}

		scraper := status.NewScraper(client, "", logger)
		report, err := scraper.Fetch(ctx)

		require.NoError(t, err)
		assert.Equal(t, "All MTR lines are operating normally.", report.Status)
		assert.Regexp(t, timestampPattern, report.Timestamp)
	})

	t.Run("custom selector", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return htmlResponse(http.StatusOK, `<div id="tsi"><span>Good service</span></div>`), nil
			},
		}

		scraper := status.NewScraper(client, "", logger, status.WithSelector("#tsi span"))
		report, err := scraper.Fetch(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Good service", report.Status)
	})

	t.Run("transport failure", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		scraper := status.NewScraper(client, "", logger)
		report, err := scraper.Fetch(ctx)

		require.Nil(t, report)
		require.ErrorIs(t, err, status.ErrStatusFetch)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("non-2xx response", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return htmlResponse(http.StatusBadGateway, `bad gateway`), nil
			},
		}

		scraper := status.NewScraper(client, "", logger)
		report, err := scraper.Fetch(ctx)

		require.Nil(t, report)
		require.ErrorIs(t, err, status.ErrStatusFetch)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestScraper_FetchOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="other">nothing here</div></body></html>`))
	}))
	defer server.Close()

	scraper := status.NewScraper(server.Client(), server.URL, slog.Default())
	report, err := scraper.Fetch(t.Context())

	require.NoError(t, err)
	assert.Equal(t, status.NormalService, report.Status)
	assert.Regexp(t, timestampPattern, report.Timestamp)
}

func TestHongKong(t *testing.T) {
	loc := status.HongKong()
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).In(loc)

	name, offset := at.Zone()
	assert.Equal(t, 8*60*60, offset)
	assert.Equal(t, "HKT", name)
}
