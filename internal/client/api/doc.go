// Package api speaks the suggestion service's REST contract: login and
// registration, paginated suggestion listing, vote toggling, moderation and
// the dashboard aggregate. It exposes the Client interface consumed by the
// service layer plus the concrete HTTPClient.
package api
