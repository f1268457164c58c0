package lark

import "context"

// ReportClient groups the report v1 resources.
type ReportClient interface {
	Rules() ReportRulesClient
	RuleViews() ReportRuleViewsClient
	Tasks() ReportTasksClient
}

// ReportRulesClient looks up report rules.
type ReportRulesClient interface {
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[RuleQueryResult], error)
}

// ReportRuleViewsClient manages who sees a rule's reports.
type ReportRuleViewsClient interface {
	Remove(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Empty], error)
}

// ReportTasksClient queries submitted reports.
type ReportTasksClient interface {
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[TaskQueryResult], error)
}

// Rule is a report rule.
type Rule struct {
	RuleID            string        `json:"rule_id"                        yaml:"rule_id"`
	Name              string        `json:"name"                           yaml:"name"`
	IconName          string        `json:"icon_name,omitempty"            yaml:"icon_name,omitempty"`
	CreatedAt         int           `json:"created_at"                     yaml:"created_at"`
	CreatorUserID     string        `json:"creator_user_id"                yaml:"creator_user_id"`
	CreatorUserName   string        `json:"creator_user_name,omitempty"    yaml:"creator_user_name,omitempty"`
	OwnerUserID       string        `json:"owner_user_id"                  yaml:"owner_user_id"`
	OwnerUserName     string        `json:"owner_user_name,omitempty"      yaml:"owner_user_name,omitempty"`
	FormSchema        []*FormSchema `json:"form_schema,omitempty"          yaml:"form_schema,omitempty"`
	IsDeleted         int           `json:"is_deleted"                     yaml:"is_deleted"`
	NeedReportUserIDs []string      `json:"need_report_user_ids,omitempty" yaml:"need_report_user_ids,omitempty"`
	CcUserIDs         []string      `json:"cc_user_ids,omitempty"          yaml:"cc_user_ids,omitempty"`
}

// FormSchema is one field of a report form.
type FormSchema struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// RuleQueryResult lists rules matching a name.
type RuleQueryResult struct {
	Rules []*Rule `json:"rules" yaml:"rules"`
}

// RuleViewsRemove is the body of a rule views remove call.
type RuleViewsRemove struct {
	UserIDs []string `json:"user_ids" yaml:"user_ids"`
}

// TaskQuery is the body of a task query. Paging is in the body for this endpoint.
type TaskQuery struct {
	CommitStartTime int    `json:"commit_start_time" yaml:"commit_start_time"`
	CommitEndTime   int    `json:"commit_end_time"   yaml:"commit_end_time"`
	RuleID          string `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
	UserID          string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	PageToken       string `json:"page_token"        yaml:"page_token"`
	PageSize        int    `json:"page_size"         yaml:"page_size"`
}

// Task is a submitted report.
type Task struct {
	TaskID         string         `json:"task_id"                   yaml:"task_id"`
	RuleName       string         `json:"rule_name"                 yaml:"rule_name"`
	RuleID         string         `json:"rule_id"                   yaml:"rule_id"`
	FromUserID     string         `json:"from_user_id"              yaml:"from_user_id"`
	FromUserName   string         `json:"from_user_name"            yaml:"from_user_name"`
	DepartmentName string         `json:"department_name,omitempty" yaml:"department_name,omitempty"`
	CommitTime     int            `json:"commit_time"               yaml:"commit_time"`
	FormContents   []*FormContent `json:"form_contents"             yaml:"form_contents"`
}

// FormContent is one answered field of a report.
type FormContent struct {
	FieldID    string `json:"field_id"    yaml:"field_id"`
	FieldName  string `json:"field_name"  yaml:"field_name"`
	FieldValue string `json:"field_value" yaml:"field_value"`
}

// TaskQueryResult is one page of reports.
type TaskQueryResult struct {
	Items     []*Task `json:"items"                yaml:"items"`
	HasMore   bool    `json:"has_more"             yaml:"has_more"`
	PageToken string  `json:"page_token,omitempty" yaml:"page_token,omitempty"`
}
