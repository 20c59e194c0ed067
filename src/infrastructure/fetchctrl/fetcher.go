package fetchctrl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"docqa/src/infrastructure/log"
)

// Some document hosts refuse requests without a browser user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// PDFFetcher downloads a PDF from a public URL with a size cap and a
// content-type check.
type PDFFetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewPDFFetcher(client *http.Client, maxBytes int64) *PDFFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &PDFFetcher{client: client, maxBytes: maxBytes}
}

// Fetch downloads the document bytes. It rejects non-PDF content types and
// payloads over the size cap before handing anything to the pipeline.
func (f *PDFFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid document URL: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	if !looksLikePDF(resp.Header.Get("Content-Type"), rawURL) {
		return nil, fmt.Errorf("content type %q is not a PDF", resp.Header.Get("Content-Type"))
	}

	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("document too large: %d bytes, limit %d", resp.ContentLength, f.maxBytes)
	}

	// Read one byte past the cap so truncated reads are distinguishable
	// from documents exactly at the limit.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read document body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("document too large: exceeds %d bytes", f.maxBytes)
	}

	log.Debug("document downloaded", "url", rawURL, "bytes", len(data))
	return data, nil
}

func looksLikePDF(contentType, rawURL string) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}
