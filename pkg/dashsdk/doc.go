/*
Package dashsdk provides a typed client SDK for the CoachDesk dashboard
service.

# Overview

The package is organised around three layers:

  - SDKClient: one method per API operation, returning typed DTOs and
    *APIError values for non-2xx responses
  - Cache: stale-while-revalidate reads over an SDKClient for the endpoints
    dashboards poll
  - Command: optimistic mutations that apply locally, call the server, and
    revert on failure

# Authentication

The dashboard never mints tokens. Requests carry a Bearer token issued by
the hosted identity provider, supplied through a TokenSource:

	client := dashsdk.NewSDKClient("https://dash.example.com", dashsdk.StaticToken(token))

	clients, err := client.ListClients(ctx, dashsdk.ClientQuery{Status: "active"})

A TokenSource is consulted on every request, so callers holding rotating
tokens can plug in their own refresh logic. Probes and invitation redemption
need no token:

	client := dashsdk.NewSDKClient("https://dash.example.com", nil)
	health, err := client.GetLiveness(ctx)

# Cached reads

Dashboards poll rosters and rollups on an interval. Cache keeps those reads
cheap: fresh entries answer from memory, stale entries answer immediately
while one deduplicated refresh runs in the background:

	cache := dashsdk.NewCache(client)
	stats, err := cache.GetDashboardStats(ctx)

# Optimistic mutations

Command pairs a local state change with the remote call that confirms it.
On failure the local change is reverted verbatim; on success the listed
cache keys are invalidated so the next read observes the server's version:

	cmd := dashsdk.Command{
		Apply:  func() { row.Status = "active" },
		Do:     func(ctx context.Context) error { _, err := client.UpdateClientStatus(ctx, row.ID, "active"); return err },
		Revert: func() { row.Status = prev },

		Cache:       cache,
		Invalidates: []string{dashsdk.CacheKeyStats},
	}
	err := cmd.Run(ctx)

# Event stream

SubscribeEvents opens the server-sent event stream and decodes each frame:

	events, cancel, err := client.SubscribeEvents(ctx)
	defer cancel()
	for ev := range events {
		// invalidate caches, refresh views
	}

# Error handling

Non-2xx responses decode into *APIError carrying the HTTP status and the
service's machine-readable error code. IsNotFound and IsForbidden cover the
common branches:

	_, err := client.GetClient(ctx, id)
	if dashsdk.IsNotFound(err) {
		// client was deleted
	}
*/
package dashsdk
