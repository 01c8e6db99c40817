// Package ingest scrapes GPS NOTAM candidates from the FAA PilotWeb notices
// page and turns them into per-day raw records for the store.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// DefaultSourceURL is the FAA PilotWeb query returning every active GPS NOTAM
// in domestic format.
const DefaultSourceURL = "https://pilotweb.nas.faa.gov/PilotWeb/noticesAction.do?queryType=ALLGPS&formatType=DOMESTIC"

// Client fetches the raw notice page, line by line.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a notice page fetcher. An empty url selects
// DefaultSourceURL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultSourceURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchLines downloads the notice page and returns its lines.
func (c *Client) FetchLines(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch notices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("notice page error: status %d: %s", resp.StatusCode, body)
	}

	lines, err := readLines(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read notices: %w", err)
	}
	c.logger.Debug("fetched notice page", "url", c.url, "lines", len(lines))
	return lines, nil
}

// FileSource reads notice lines from a previously saved page, mostly for
// offline runs and tests.
type FileSource struct {
	Path string
}

func (f FileSource) FetchLines(_ context.Context) ([]string, error) {
	fd, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open notice file: %w", err)
	}
	defer fd.Close()
	return readLines(fd)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	// Notice page lines can exceed the default 64K token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
