// Package download fetches the bytes behind export download links.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
)

// defaultTimeout bounds a single link download. The core treats the
// download as a blocking call; the timeout lives here.
const defaultTimeout = 30 * time.Second

// maxBodySize caps a single download at 64 MiB.
const maxBodySize = 64 << 20

// Ensure Client implements the interface.
var _ driven.Downloader = (*Client)(nil)

// Client downloads link payloads over HTTP.
type Client struct {
	http *http.Client
}

// New creates a download client with the default timeout.
func New() *Client {
	return &Client{http: &http.Client{Timeout: defaultTimeout}}
}

// Download fetches the response body for url.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download link: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read download body: %w", err)
	}
	return data, nil
}
