package ports

import (
	"context"
	"time"

	"github.com/renato0307/tabrest/internal/domain"
)

// DeviceStatusProvider reports connectivity and power state
type DeviceStatusProvider interface {
	Status(ctx context.Context) (domain.DeviceStatus, error)
}

// FaviconFetcher turns an icon URL into a data URI
type FaviconFetcher interface {
	DataURI(ctx context.Context, iconURL string) (string, error)
}

// Visit is one entry of the browsing history
type Visit struct {
	URL       string
	VisitTime time.Time
}

// History manages browsing history entries
type History interface {
	AddVisit(ctx context.Context, url string, at time.Time) error
	DeleteRange(ctx context.Context, start, end time.Time) error
	DeleteURL(ctx context.Context, url string) error
	Visits(ctx context.Context, url string) ([]Visit, error)
}
