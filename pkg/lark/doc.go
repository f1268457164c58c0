// Package lark provides types, interfaces, and helpers for working with the
// Feishu/Lark open platform API.
//
// # Overview
//
// The lark package defines the request and response types of the attendance,
// auth, authen, personal settings and report resources, and the interfaces of
// the resource clients (e.g., AttendanceGroupsClient). A concrete implementation
// is provided by the larkclient package, which wires configuration, transport,
// and token management.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/lark-client/pkg/lark"
//	  "github.com/fivetwenty-io/lark-client/pkg/larkclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := larkclient.New(ctx, &lark.Config{AppID: "cli_xxx", AppSecret: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Attendance().Groups().Get(ctx, &lark.Payload{
//	    Path: map[string]string{"group_id": "6919358128597097404"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  if err := resp.Err(); err != nil { log.Fatal(err) }
//	  _ = resp.Data
//	}
//
// # Pagination
//
// List endpoints have a ListWithIterator variant returning a PageIterator that
// fetches pages lazily, one at a time:
//
//	it := cli.Attendance().Groups().ListWithIterator(ctx, &lark.Payload{
//	  Params: lark.Params{"page_size": 50},
//	})
//	for page := range it.Pages() {
//	  if page == nil { break } // the fetch failed; see it.Err()
//	  _ = page.GroupList
//	}
//
// A failed page fetch is logged and yields a single nil page, after which the
// iterator stops. Err reports the failure.
//
// # Errors
//
// HTTP failures are returned as *APIError. Calls that reach the platform but are
// rejected return an Envelope with a non-zero Code; Envelope.Err converts it.
//
// # Caching and interceptors
//
// Access tokens and app tickets are cached in a Cache: in memory by default,
// or in NATS KV or redis when several processes share an app. Interceptors run
// around every HTTP exchange and PrometheusMetrics records request metrics.
package lark
