package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

var (
	reportRulesQuery     = &Endpoint{Method: http.MethodGet, Path: "/open-apis/report/v1/rules/query", AccessTokens: tenantToken}
	reportRuleViewRemove = &Endpoint{Method: http.MethodPost, Path: "/open-apis/report/v1/rules/:rule_id/views/remove", AccessTokens: tenantToken}
	reportTasksQuery     = &Endpoint{Method: http.MethodPost, Path: "/open-apis/report/v1/tasks/query", AccessTokens: tenantUserToken}
)

// ReportClient implements lark.ReportClient.
type ReportClient struct {
	rules     *ReportRulesClient
	ruleViews *ReportRuleViewsClient
	tasks     *ReportTasksClient
}

// newReportClient creates the report resource group.
func newReportClient(r *requester) *ReportClient {
	return &ReportClient{
		rules:     &ReportRulesClient{r: r},
		ruleViews: &ReportRuleViewsClient{r: r},
		tasks:     &ReportTasksClient{r: r},
	}
}

func (c *ReportClient) Rules() lark.ReportRulesClient         { return c.rules }
func (c *ReportClient) RuleViews() lark.ReportRuleViewsClient { return c.ruleViews }
func (c *ReportClient) Tasks() lark.ReportTasksClient         { return c.tasks }

// ReportRulesClient implements lark.ReportRulesClient.
type ReportRulesClient struct {
	r *requester
}

// Query finds rules by name (the rule_name query parameter).
func (c *ReportRulesClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.RuleQueryResult], error) {
	return call[lark.RuleQueryResult](ctx, c.r, reportRulesQuery, payload, opts)
}

// ReportRuleViewsClient implements lark.ReportRuleViewsClient.
type ReportRuleViewsClient struct {
	r *requester
}

// Remove implements lark.ReportRuleViewsClient.Remove.
func (c *ReportRuleViewsClient) Remove(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Empty], error) {
	return call[lark.Empty](ctx, c.r, reportRuleViewRemove, payload, opts)
}

// ReportTasksClient implements lark.ReportTasksClient.
type ReportTasksClient struct {
	r *requester
}

// Query pages through the request body (lark.TaskQuery.PageToken), not the query string.
func (c *ReportTasksClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.TaskQueryResult], error) {
	return call[lark.TaskQueryResult](ctx, c.r, reportTasksQuery, payload, opts)
}
