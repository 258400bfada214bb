package favicon

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/singleflight"

	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// MaxIconBytes caps the size of an icon that gets inlined
const MaxIconBytes = 256 * 1024

var (
	// ErrNotImage is returned when the fetched content is not an image
	ErrNotImage = errors.New("favicon is not an image")
	// ErrUnsupportedScheme is returned for icon URLs that cannot be fetched
	ErrUnsupportedScheme = errors.New("unsupported favicon scheme")
)

// Compile-time interface check
var _ ports.FaviconFetcher = (*Fetcher)(nil)

// Fetcher downloads favicons and inlines them as data URIs. Concurrent
// requests for the same icon share one download.
type Fetcher struct {
	client *retryablehttp.Client
	group  singleflight.Group
}

// NewFetcher creates a Fetcher with a per-attempt timeout and retry count
func NewFetcher(timeout time.Duration, retries int) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 50 * time.Millisecond
	client.RetryWaitMax = 500 * time.Millisecond
	client.HTTPClient.Timeout = timeout
	client.Logger = logging.Logger

	return &Fetcher{client: client}
}

// DataURI returns iconURL as a base64 data URI. Data URIs are returned as is.
func (f *Fetcher) DataURI(ctx context.Context, iconURL string) (string, error) {
	if strings.HasPrefix(iconURL, "data:") {
		return iconURL, nil
	}
	if !strings.HasPrefix(iconURL, "http://") && !strings.HasPrefix(iconURL, "https://") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, iconURL)
	}

	v, err, shared := f.group.Do(iconURL, func() (any, error) {
		return f.fetch(ctx, iconURL)
	})
	if err != nil {
		return "", err
	}
	logging.Logger.Debug("Favicon inlined", "url", iconURL, "shared", shared)
	return v.(string), nil
}

func (f *Fetcher) fetch(ctx context.Context, iconURL string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build favicon request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch favicon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch favicon: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxIconBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read favicon: %w", err)
	}
	if len(data) > MaxIconBytes {
		return "", fmt.Errorf("favicon larger than %d bytes", MaxIconBytes)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
