package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetcher retrieves a raw catalog document. Implementations must honor
// context cancellation so a torn-down consumer never observes a late result.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FileFetcher reads catalog documents from the local filesystem.
type FileFetcher struct{}

func (FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog document %s: %w", path, err)
	}
	return data, nil
}

// HTTPFetcher retrieves catalog documents over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog document %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog document %s returned status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// autoFetcher routes each path to the file or HTTP fetcher by scheme, so one
// catalog may mix local documents with remote ones.
type autoFetcher struct {
	file FileFetcher
	http *HTTPFetcher
}

// NewFetcher returns a fetcher that resolves the transport per path.
func NewFetcher(timeout time.Duration) Fetcher {
	return &autoFetcher{http: NewHTTPFetcher(timeout)}
}

func (f *autoFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return f.http.Fetch(ctx, path)
	}
	return f.file.Fetch(ctx, path)
}
