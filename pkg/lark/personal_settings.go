package lark

import "context"

// PersonalSettingsClient groups the personal_settings v1 resources.
type PersonalSettingsClient interface {
	SystemStatuses() SystemStatusesClient
}

// SystemStatusesClient manages tenant system statuses (e.g. "On leave") and their
// assignment to users.
type SystemStatusesClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[SystemStatusResult], error)
	Delete(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Empty], error)
	List(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[SystemStatusPage], error)
	ListWithIterator(ctx context.Context, payload *Payload, opts ...RequestOption) *PageIterator[SystemStatusPage]
	Patch(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[SystemStatusResult], error)
	BatchOpen(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[SystemStatusOpenResult], error)
	BatchClose(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[SystemStatusCloseResult], error)
}

// SystemStatus is a status users can be put in.
type SystemStatus struct {
	SystemStatusID string            `json:"system_status_id,omitempty" yaml:"system_status_id,omitempty"`
	Title          string            `json:"title"                      yaml:"title"`
	I18nTitle      map[string]string `json:"i18n_title,omitempty"       yaml:"i18n_title,omitempty"`
	IconKey        string            `json:"icon_key"                   yaml:"icon_key"`
	Color          string            `json:"color,omitempty"            yaml:"color,omitempty"`
	Priority       int               `json:"priority,omitempty"         yaml:"priority,omitempty"`
	SyncSetting    *SyncSetting      `json:"sync_setting,omitempty"     yaml:"sync_setting,omitempty"`
}

// SyncSetting controls whether the status is synced to the user's profile.
type SyncSetting struct {
	IsOpenByDefault *bool  `json:"is_open_by_default,omitempty" yaml:"is_open_by_default,omitempty"`
	Title           string `json:"title,omitempty"              yaml:"title,omitempty"`
	Explain         string `json:"explain,omitempty"            yaml:"explain,omitempty"`
}

// SystemStatusResult wraps a created or patched status.
type SystemStatusResult struct {
	SystemStatus *SystemStatus `json:"system_status" yaml:"system_status"`
}

// SystemStatusPatch is the body of a patch call.
type SystemStatusPatch struct {
	SystemStatus *SystemStatus `json:"system_status" yaml:"system_status"`
	UpdateFields []string      `json:"update_fields" yaml:"update_fields"`
}

// SystemStatusPage is one page of statuses.
type SystemStatusPage struct {
	Items []*SystemStatus `json:"items" yaml:"items"`
}

// SystemStatusUserOpen turns a status on for a user until EndTime (unix seconds).
type SystemStatusUserOpen struct {
	UserID  string `json:"user_id"  yaml:"user_id"`
	EndTime string `json:"end_time" yaml:"end_time"`
}

// SystemStatusBatchOpen is the body of a batch open call.
type SystemStatusBatchOpen struct {
	UserList []*SystemStatusUserOpen `json:"user_list" yaml:"user_list"`
}

// SystemStatusBatchClose is the body of a batch close call.
type SystemStatusBatchClose struct {
	UserList []string `json:"user_list" yaml:"user_list"`
}

// SystemStatusUserResult is the per-user outcome of a batch call.
type SystemStatusUserResult struct {
	UserID  string `json:"user_id"            yaml:"user_id"`
	EndTime string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Result  string `json:"result"             yaml:"result"`
}

// SystemStatusOpenResult is returned by batch open.
type SystemStatusOpenResult struct {
	ResultList []*SystemStatusUserResult `json:"result_list" yaml:"result_list"`
}

// SystemStatusCloseResult is returned by batch close.
type SystemStatusCloseResult struct {
	ResultList []*SystemStatusUserResult `json:"result_list" yaml:"result_list"`
}
