package solaredge

import (
	"context"
	"time"
)

// MonitoringAPI is the full read surface of the client, for callers that
// want to mock it in tests or swap implementations.
type MonitoringAPI interface {
	// ListSites lists all sites of the account.
	ListSites(ctx context.Context) (*SiteList, error)

	// SiteDetails returns the descriptive metadata of a site.
	SiteDetails(ctx context.Context, siteID SiteID) (*Site, error)

	// DataPeriod returns the production start and end dates of a site.
	DataPeriod(ctx context.Context, siteID SiteID) (*DataPeriod, error)

	// Overview returns the most recent production snapshot of a site.
	Overview(ctx context.Context, siteID SiteID) (*Overview, error)

	// Energy returns energy measurements over a period at a resolution.
	Energy(ctx context.Context, siteID SiteID, period DataPeriod, unit TimeUnit) (*EnergySeries, error)

	// TimeFrameEnergy returns the total energy produced over a period.
	TimeFrameEnergy(ctx context.Context, siteID SiteID, period DataPeriod) (*TimeFrameEnergy, error)

	// Power returns quarter-hour power measurements over a window.
	Power(ctx context.Context, siteID SiteID, start, end time.Time) (*PowerSeries, error)
}
