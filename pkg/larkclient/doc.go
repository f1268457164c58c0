// Package larkclient provides the primary entry point for constructing a client of
// the Feishu/Lark open platform that implements the lark.Client interface.
//
// It layers configuration, the HTTP transport and access token management on top of
// the resource interfaces and types defined in the lark package.
//
// Quick start
//
//	ctx := context.Background()
//
//	cli, err := larkclient.New(ctx, &lark.Config{
//	  AppID:     "cli_a1b2c3",
//	  AppSecret: "secret",
//	  Domain:    "lark", // or "feishu", or a full base URL
//	})
//	if err != nil { log.Fatal(err) }
//
//	groups := cli.Attendance().Groups().ListWithIterator(ctx, &lark.Payload{
//	  Params: lark.Params{"page_size": 50},
//	})
//	for page := range groups.Pages() {
//	  if page == nil { break }
//	  // use page.GroupList
//	}
//
// # Marketplace apps
//
// Marketplace apps authenticate with an app ticket that the platform pushes to the
// app's event callback. Hand each pushed ticket to Client.SetAppTicket, or pass the
// latest one to NewMarketplace. Tenant tokens of marketplace apps require a tenant
// key, supplied per call with lark.WithTenantKey.
//
// # Shared token caches
//
// NewWithCache stores tokens in a memory, Redis or NATS KV cache built from a
// lark.CacheConfig so that several processes reuse the same tokens.
package larkclient
