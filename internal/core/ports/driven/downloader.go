package driven

import "context"

// Downloader fetches the bytes behind a download link.
// Timeouts are owned by the implementation, not the caller.
type Downloader interface {
	// Download returns the response body for the given URL.
	Download(ctx context.Context, url string) ([]byte, error)
}
