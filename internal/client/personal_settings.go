package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

const systemStatusesPath = "/open-apis/personal_settings/v1/system_statuses"

var (
	systemStatusesCreate     = &Endpoint{Method: http.MethodPost, Path: systemStatusesPath, AccessTokens: tenantToken}
	systemStatusesDelete     = &Endpoint{Method: http.MethodDelete, Path: systemStatusesPath + "/:system_status_id", AccessTokens: tenantToken}
	systemStatusesList       = &Endpoint{Method: http.MethodGet, Path: systemStatusesPath, AccessTokens: tenantToken}
	systemStatusesPatch      = &Endpoint{Method: http.MethodPatch, Path: systemStatusesPath + "/:system_status_id", AccessTokens: tenantToken}
	systemStatusesBatchOpen  = &Endpoint{Method: http.MethodPost, Path: systemStatusesPath + "/:system_status_id/batch_open", AccessTokens: tenantToken}
	systemStatusesBatchClose = &Endpoint{Method: http.MethodPost, Path: systemStatusesPath + "/:system_status_id/batch_close", AccessTokens: tenantToken}
)

// PersonalSettingsClient implements lark.PersonalSettingsClient.
type PersonalSettingsClient struct {
	systemStatuses *SystemStatusesClient
}

// newPersonalSettingsClient creates the personal settings resource group.
func newPersonalSettingsClient(r *requester) *PersonalSettingsClient {
	return &PersonalSettingsClient{systemStatuses: &SystemStatusesClient{r: r}}
}

// SystemStatuses implements lark.PersonalSettingsClient.SystemStatuses.
func (c *PersonalSettingsClient) SystemStatuses() lark.SystemStatusesClient {
	return c.systemStatuses
}

// SystemStatusesClient implements lark.SystemStatusesClient.
type SystemStatusesClient struct {
	r *requester
}

func (c *SystemStatusesClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.SystemStatusResult], error) {
	return call[lark.SystemStatusResult](ctx, c.r, systemStatusesCreate, payload, opts)
}

func (c *SystemStatusesClient) Delete(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Empty], error) {
	return call[lark.Empty](ctx, c.r, systemStatusesDelete, payload, opts)
}

func (c *SystemStatusesClient) List(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.SystemStatusPage], error) {
	return call[lark.SystemStatusPage](ctx, c.r, systemStatusesList, payload, opts)
}

func (c *SystemStatusesClient) ListWithIterator(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) *lark.PageIterator[lark.SystemStatusPage] {
	return iterate[lark.SystemStatusPage](ctx, c.r, systemStatusesList, payload, opts)
}

func (c *SystemStatusesClient) Patch(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.SystemStatusResult], error) {
	return call[lark.SystemStatusResult](ctx, c.r, systemStatusesPatch, payload, opts)
}

func (c *SystemStatusesClient) BatchOpen(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.SystemStatusOpenResult], error) {
	return call[lark.SystemStatusOpenResult](ctx, c.r, systemStatusesBatchOpen, payload, opts)
}

func (c *SystemStatusesClient) BatchClose(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.SystemStatusCloseResult], error) {
	return call[lark.SystemStatusCloseResult](ctx, c.r, systemStatusesBatchClose, payload, opts)
}
