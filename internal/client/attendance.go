package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

const attendancePath = "/open-apis/attendance/v1"

var (
	attendanceGroupsCreate = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/groups", AccessTokens: tenantToken}
	attendanceGroupsDelete = &Endpoint{Method: http.MethodDelete, Path: attendancePath + "/groups/:group_id", AccessTokens: tenantToken}
	attendanceGroupsGet    = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/groups/:group_id", AccessTokens: tenantToken}
	attendanceGroupsList   = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/groups", AccessTokens: tenantToken}
	attendanceGroupsSearch = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/groups/search", AccessTokens: tenantToken}

	attendanceShiftsCreate = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/shifts", AccessTokens: tenantToken}
	attendanceShiftsDelete = &Endpoint{Method: http.MethodDelete, Path: attendancePath + "/shifts/:shift_id", AccessTokens: tenantToken}
	attendanceShiftsGet    = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/shifts/:shift_id", AccessTokens: tenantToken}
	attendanceShiftsList   = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/shifts", AccessTokens: tenantToken}
	attendanceShiftsQuery  = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/shifts/query", AccessTokens: tenantToken}

	attendanceUserTasksQuery = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/user_tasks/query", AccessTokens: tenantToken}

	attendanceUserFlowsBatchCreate = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/user_flows/batch_create", AccessTokens: tenantToken}
	attendanceUserFlowsGet         = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/user_flows/:user_flow_id", AccessTokens: tenantToken}
	attendanceUserFlowsQuery       = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/user_flows/query", AccessTokens: tenantToken}

	attendanceUserApprovalsCreate = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/user_approvals", AccessTokens: tenantToken}
	attendanceUserApprovalsQuery  = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/user_approvals/query", AccessTokens: tenantToken}

	attendanceApprovalInfosProcess = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/approval_infos/process", AccessTokens: tenantToken}

	attendanceArchiveRulesList = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/archive_rule", AccessTokens: tenantToken}

	attendanceFilesUpload   = &Endpoint{Method: http.MethodPost, Path: attendancePath + "/files/upload", AccessTokens: tenantToken}
	attendanceFilesDownload = &Endpoint{Method: http.MethodGet, Path: attendancePath + "/files/:file_id/download", AccessTokens: tenantToken}
)

// AttendanceClient implements lark.AttendanceClient.
type AttendanceClient struct {
	groups        *AttendanceGroupsClient
	shifts        *AttendanceShiftsClient
	userTasks     *AttendanceUserTasksClient
	userFlows     *AttendanceUserFlowsClient
	userApprovals *AttendanceUserApprovalsClient
	approvalInfos *AttendanceApprovalInfosClient
	archiveRules  *AttendanceArchiveRulesClient
	files         *AttendanceFilesClient
}

// newAttendanceClient creates the attendance resource group.
func newAttendanceClient(r *requester) *AttendanceClient {
	return &AttendanceClient{
		groups:        &AttendanceGroupsClient{r: r},
		shifts:        &AttendanceShiftsClient{r: r},
		userTasks:     &AttendanceUserTasksClient{r: r},
		userFlows:     &AttendanceUserFlowsClient{r: r},
		userApprovals: &AttendanceUserApprovalsClient{r: r},
		approvalInfos: &AttendanceApprovalInfosClient{r: r},
		archiveRules:  &AttendanceArchiveRulesClient{r: r},
		files:         &AttendanceFilesClient{r: r},
	}
}

func (c *AttendanceClient) Groups() lark.AttendanceGroupsClient               { return c.groups }
func (c *AttendanceClient) Shifts() lark.AttendanceShiftsClient               { return c.shifts }
func (c *AttendanceClient) UserTasks() lark.AttendanceUserTasksClient         { return c.userTasks }
func (c *AttendanceClient) UserFlows() lark.AttendanceUserFlowsClient         { return c.userFlows }
func (c *AttendanceClient) UserApprovals() lark.AttendanceUserApprovalsClient { return c.userApprovals }
func (c *AttendanceClient) ApprovalInfos() lark.AttendanceApprovalInfosClient { return c.approvalInfos }
func (c *AttendanceClient) ArchiveRules() lark.AttendanceArchiveRulesClient   { return c.archiveRules }
func (c *AttendanceClient) Files() lark.AttendanceFilesClient                 { return c.files }

// AttendanceGroupsClient implements lark.AttendanceGroupsClient.
type AttendanceGroupsClient struct {
	r *requester
}

// Create creates a group, or updates it when the body carries a group id.
func (c *AttendanceGroupsClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.GroupResult], error) {
	return call[lark.GroupResult](ctx, c.r, attendanceGroupsCreate, payload, opts)
}

// Delete implements lark.AttendanceGroupsClient.Delete.
func (c *AttendanceGroupsClient) Delete(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Empty], error) {
	return call[lark.Empty](ctx, c.r, attendanceGroupsDelete, payload, opts)
}

// Get implements lark.AttendanceGroupsClient.Get.
func (c *AttendanceGroupsClient) Get(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Group], error) {
	return call[lark.Group](ctx, c.r, attendanceGroupsGet, payload, opts)
}

// List implements lark.AttendanceGroupsClient.List.
func (c *AttendanceGroupsClient) List(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.GroupPage], error) {
	return call[lark.GroupPage](ctx, c.r, attendanceGroupsList, payload, opts)
}

// ListWithIterator implements lark.AttendanceGroupsClient.ListWithIterator.
func (c *AttendanceGroupsClient) ListWithIterator(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) *lark.PageIterator[lark.GroupPage] {
	return iterate[lark.GroupPage](ctx, c.r, attendanceGroupsList, payload, opts)
}

// Search implements lark.AttendanceGroupsClient.Search.
func (c *AttendanceGroupsClient) Search(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.GroupSearchResult], error) {
	return call[lark.GroupSearchResult](ctx, c.r, attendanceGroupsSearch, payload, opts)
}

// AttendanceShiftsClient implements lark.AttendanceShiftsClient.
type AttendanceShiftsClient struct {
	r *requester
}

// Create implements lark.AttendanceShiftsClient.Create.
func (c *AttendanceShiftsClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.ShiftResult], error) {
	return call[lark.ShiftResult](ctx, c.r, attendanceShiftsCreate, payload, opts)
}

// Delete implements lark.AttendanceShiftsClient.Delete.
func (c *AttendanceShiftsClient) Delete(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Empty], error) {
	return call[lark.Empty](ctx, c.r, attendanceShiftsDelete, payload, opts)
}

// Get implements lark.AttendanceShiftsClient.Get.
func (c *AttendanceShiftsClient) Get(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Shift], error) {
	return call[lark.Shift](ctx, c.r, attendanceShiftsGet, payload, opts)
}

// List implements lark.AttendanceShiftsClient.List.
func (c *AttendanceShiftsClient) List(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.ShiftPage], error) {
	return call[lark.ShiftPage](ctx, c.r, attendanceShiftsList, payload, opts)
}

// ListWithIterator implements lark.AttendanceShiftsClient.ListWithIterator.
func (c *AttendanceShiftsClient) ListWithIterator(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) *lark.PageIterator[lark.ShiftPage] {
	return iterate[lark.ShiftPage](ctx, c.r, attendanceShiftsList, payload, opts)
}

// Query looks a shift up by name (the shift_name query parameter).
func (c *AttendanceShiftsClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Shift], error) {
	return call[lark.Shift](ctx, c.r, attendanceShiftsQuery, payload, opts)
}

// AttendanceUserTasksClient implements lark.AttendanceUserTasksClient.
type AttendanceUserTasksClient struct {
	r *requester
}

// Query implements lark.AttendanceUserTasksClient.Query.
func (c *AttendanceUserTasksClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserTaskQueryResult], error) {
	return call[lark.UserTaskQueryResult](ctx, c.r, attendanceUserTasksQuery, payload, opts)
}

// AttendanceUserFlowsClient implements lark.AttendanceUserFlowsClient.
type AttendanceUserFlowsClient struct {
	r *requester
}

// BatchCreate implements lark.AttendanceUserFlowsClient.BatchCreate.
func (c *AttendanceUserFlowsClient) BatchCreate(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserFlowBatchResult], error) {
	return call[lark.UserFlowBatchResult](ctx, c.r, attendanceUserFlowsBatchCreate, payload, opts)
}

// Get implements lark.AttendanceUserFlowsClient.Get.
func (c *AttendanceUserFlowsClient) Get(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserFlow], error) {
	return call[lark.UserFlow](ctx, c.r, attendanceUserFlowsGet, payload, opts)
}

// Query implements lark.AttendanceUserFlowsClient.Query.
func (c *AttendanceUserFlowsClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserFlowQueryResult], error) {
	return call[lark.UserFlowQueryResult](ctx, c.r, attendanceUserFlowsQuery, payload, opts)
}

// AttendanceUserApprovalsClient implements lark.AttendanceUserApprovalsClient.
type AttendanceUserApprovalsClient struct {
	r *requester
}

// Create implements lark.AttendanceUserApprovalsClient.Create.
func (c *AttendanceUserApprovalsClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserApprovalResult], error) {
	return call[lark.UserApprovalResult](ctx, c.r, attendanceUserApprovalsCreate, payload, opts)
}

// Query implements lark.AttendanceUserApprovalsClient.Query.
func (c *AttendanceUserApprovalsClient) Query(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserApprovalQueryResult], error) {
	return call[lark.UserApprovalQueryResult](ctx, c.r, attendanceUserApprovalsQuery, payload, opts)
}

// AttendanceApprovalInfosClient implements lark.AttendanceApprovalInfosClient.
type AttendanceApprovalInfosClient struct {
	r *requester
}

// Process implements lark.AttendanceApprovalInfosClient.Process.
func (c *AttendanceApprovalInfosClient) Process(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.ApprovalInfoResult], error) {
	return call[lark.ApprovalInfoResult](ctx, c.r, attendanceApprovalInfosProcess, payload, opts)
}

// AttendanceArchiveRulesClient implements lark.AttendanceArchiveRulesClient.
type AttendanceArchiveRulesClient struct {
	r *requester
}

// List implements lark.AttendanceArchiveRulesClient.List.
func (c *AttendanceArchiveRulesClient) List(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.ArchiveRulePage], error) {
	return call[lark.ArchiveRulePage](ctx, c.r, attendanceArchiveRulesList, payload, opts)
}

// ListWithIterator implements lark.AttendanceArchiveRulesClient.ListWithIterator.
func (c *AttendanceArchiveRulesClient) ListWithIterator(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) *lark.PageIterator[lark.ArchiveRulePage] {
	return iterate[lark.ArchiveRulePage](ctx, c.r, attendanceArchiveRulesList, payload, opts)
}

// AttendanceFilesClient implements lark.AttendanceFilesClient.
type AttendanceFilesClient struct {
	r *requester
}

// Upload sends a *lark.FormData body as multipart/form-data.
func (c *AttendanceFilesClient) Upload(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.FileUploadResult], error) {
	return call[lark.FileUploadResult](ctx, c.r, attendanceFilesUpload, payload, opts)
}

// Download returns a handle on the file body. The body can be read once.
func (c *AttendanceFilesClient) Download(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.File, error) {
	return c.r.download(ctx, attendanceFilesDownload, payload, opts)
}
