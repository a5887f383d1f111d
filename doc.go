// Package solaredge is a read-only Go client for the SolarEdge monitoring
// API. It covers the documented read endpoints (site list, details, data
// period, overview, energy, time-frame energy, power) and returns typed
// models whose numeric fields carry physical units via the quantity
// package, never bare floats.
//
// # API key and site id
//
// Generate an API key in the monitoring portal: log in with your SolarEdge
// account, open the Admin section, Site Access tab, and activate API
// access. The same page shows the numeric site id.
//
//	client, err := solaredge.New(apiKey)
//	if err != nil {
//		return err
//	}
//	overview, err := client.Overview(ctx, siteID)
//
// # Rate limits and polling
//
// The API enforces an hourly request quota server-side and publishes new
// measurements roughly every fifteen minutes. The client paces itself with
// an advisory token bucket (configurable via ClientConfig.RequestsPerHour)
// but never retries: quota rejections surface as *APIError immediately.
//
// To poll efficiently, schedule the next read from the overview's own
// timestamp:
//
//	next, wait := overview.EstimatedNextUpdate()
//
// The wait can be negative when the API is running late; treat that as
// "poll now" (or re-check after a short pause).
//
// # Errors
//
// Every operation returns one of three distinguishable kinds, checked with
// errors.As: *TransportError (the server was not reached), *APIError (the
// server rejected the request, carrying status and message), and
// *ParseError (the response did not match the documented shape, naming the
// offending field). The library never retries and never substitutes
// defaults for missing data.
package solaredge
