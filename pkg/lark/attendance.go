package lark

import "context"

// AttendanceClient groups the attendance v1 resources.
type AttendanceClient interface {
	Groups() AttendanceGroupsClient
	Shifts() AttendanceShiftsClient
	UserTasks() AttendanceUserTasksClient
	UserFlows() AttendanceUserFlowsClient
	UserApprovals() AttendanceUserApprovalsClient
	ApprovalInfos() AttendanceApprovalInfosClient
	ArchiveRules() AttendanceArchiveRulesClient
	Files() AttendanceFilesClient
}

// AttendanceGroupsClient manages attendance groups.
type AttendanceGroupsClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[GroupResult], error)
	Delete(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Empty], error)
	Get(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Group], error)
	List(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[GroupPage], error)
	ListWithIterator(ctx context.Context, payload *Payload, opts ...RequestOption) *PageIterator[GroupPage]
	Search(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[GroupSearchResult], error)
}

// AttendanceShiftsClient manages shifts.
type AttendanceShiftsClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[ShiftResult], error)
	Delete(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Empty], error)
	Get(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Shift], error)
	List(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[ShiftPage], error)
	ListWithIterator(ctx context.Context, payload *Payload, opts ...RequestOption) *PageIterator[ShiftPage]
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Shift], error)
}

// AttendanceUserTasksClient queries clock-in results.
type AttendanceUserTasksClient interface {
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserTaskQueryResult], error)
}

// AttendanceUserFlowsClient manages raw clock-in records.
type AttendanceUserFlowsClient interface {
	BatchCreate(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserFlowBatchResult], error)
	Get(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserFlow], error)
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserFlowQueryResult], error)
}

// AttendanceUserApprovalsClient manages approval records written back by third-party systems.
type AttendanceUserApprovalsClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserApprovalResult], error)
	Query(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserApprovalQueryResult], error)
}

// AttendanceApprovalInfosClient updates approval status.
type AttendanceApprovalInfosClient interface {
	Process(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[ApprovalInfoResult], error)
}

// AttendanceArchiveRulesClient lists archive report rules.
type AttendanceArchiveRulesClient interface {
	List(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[ArchiveRulePage], error)
	ListWithIterator(ctx context.Context, payload *Payload, opts ...RequestOption) *PageIterator[ArchiveRulePage]
}

// AttendanceFilesClient uploads and downloads attendance files such as face photos.
type AttendanceFilesClient interface {
	Upload(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[FileUploadResult], error)
	Download(ctx context.Context, payload *Payload, opts ...RequestOption) (*File, error)
}

// Group is an attendance group.
type Group struct {
	GroupID                string             `json:"group_id,omitempty"                   yaml:"group_id,omitempty"`
	GroupName              string             `json:"group_name"                           yaml:"group_name"`
	TimeZone               string             `json:"time_zone"                            yaml:"time_zone"`
	GroupType              int                `json:"group_type"                           yaml:"group_type"`
	BindDeptIDs            []string           `json:"bind_dept_ids,omitempty"              yaml:"bind_dept_ids,omitempty"`
	ExceptDeptIDs          []string           `json:"except_dept_ids,omitempty"            yaml:"except_dept_ids,omitempty"`
	BindUserIDs            []string           `json:"bind_user_ids,omitempty"              yaml:"bind_user_ids,omitempty"`
	ExceptUserIDs          []string           `json:"except_user_ids,omitempty"            yaml:"except_user_ids,omitempty"`
	GroupLeaderIDs         []string           `json:"group_leader_ids,omitempty"           yaml:"group_leader_ids,omitempty"`
	PunchDayShiftIDs       []string           `json:"punch_day_shift_ids,omitempty"        yaml:"punch_day_shift_ids,omitempty"`
	AllowOutPunch          *bool              `json:"allow_out_punch,omitempty"            yaml:"allow_out_punch,omitempty"`
	AllowPcPunch           *bool              `json:"allow_pc_punch,omitempty"             yaml:"allow_pc_punch,omitempty"`
	AllowRemedy            *bool              `json:"allow_remedy,omitempty"               yaml:"allow_remedy,omitempty"`
	RemedyLimit            *bool              `json:"remedy_limit,omitempty"               yaml:"remedy_limit,omitempty"`
	RemedyLimitCount       int                `json:"remedy_limit_count,omitempty"         yaml:"remedy_limit_count,omitempty"`
	RemedyDateLimit        *bool              `json:"remedy_date_limit,omitempty"          yaml:"remedy_date_limit,omitempty"`
	RemedyDateNum          int                `json:"remedy_date_num,omitempty"            yaml:"remedy_date_num,omitempty"`
	ShowCumulativeTime     *bool              `json:"show_cumulative_time,omitempty"       yaml:"show_cumulative_time,omitempty"`
	ShowOverTime           *bool              `json:"show_over_time,omitempty"             yaml:"show_over_time,omitempty"`
	HideStaffPunchTime     *bool              `json:"hide_staff_punch_time,omitempty"      yaml:"hide_staff_punch_time,omitempty"`
	FaceLiveNeedAction     *bool              `json:"face_live_need_action,omitempty"      yaml:"face_live_need_action,omitempty"`
	FacePunch              *bool              `json:"face_punch,omitempty"                 yaml:"face_punch,omitempty"`
	Locations              []*Location        `json:"locations,omitempty"                  yaml:"locations,omitempty"`
	Machines               []*Machine         `json:"machines,omitempty"                   yaml:"machines,omitempty"`
	FreePunchCfg           *FreePunchConfig   `json:"free_punch_cfg,omitempty"             yaml:"free_punch_cfg,omitempty"`
	CalendarID             int                `json:"calendar_id,omitempty"                yaml:"calendar_id,omitempty"`
	NeedPunchSpecialDays   []*PunchSpecialDay `json:"need_punch_special_days,omitempty"    yaml:"need_punch_special_days,omitempty"`
	NoNeedPunchSpecialDays []*PunchSpecialDay `json:"no_need_punch_special_days,omitempty" yaml:"no_need_punch_special_days,omitempty"`
}

// Location is a place members may clock in at.
type Location struct {
	LocationID   string  `json:"location_id,omitempty" yaml:"location_id,omitempty"`
	LocationName string  `json:"location_name"         yaml:"location_name"`
	LocationType int     `json:"location_type"         yaml:"location_type"`
	Latitude     float64 `json:"latitude,omitempty"    yaml:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"   yaml:"longitude,omitempty"`
	SSID         string  `json:"ssid,omitempty"        yaml:"ssid,omitempty"`
	BSSID        string  `json:"bssid,omitempty"       yaml:"bssid,omitempty"`
	Address      string  `json:"address,omitempty"     yaml:"address,omitempty"`
	GPSRange     int     `json:"gps_range,omitempty"   yaml:"gps_range,omitempty"`
}

// Machine is an attendance device.
type Machine struct {
	MachineSN   string `json:"machine_sn"   yaml:"machine_sn"`
	MachineName string `json:"machine_name" yaml:"machine_name"`
}

// FreePunchConfig configures free-schedule groups.
type FreePunchConfig struct {
	FreeStartTime        string `json:"free_start_time"                     yaml:"free_start_time"`
	FreeEndTime          string `json:"free_end_time"                       yaml:"free_end_time"`
	PunchDay             int    `json:"punch_day"                           yaml:"punch_day"`
	WorkDayNoPunchAsLack *bool  `json:"work_day_no_punch_as_lack,omitempty" yaml:"work_day_no_punch_as_lack,omitempty"`
}

// PunchSpecialDay overrides the schedule for one date.
type PunchSpecialDay struct {
	PunchDay int    `json:"punch_day"          yaml:"punch_day"`
	ShiftID  string `json:"shift_id,omitempty" yaml:"shift_id,omitempty"`
}

// GroupCreate is the body of a group create (or update, when Group.GroupID is set) call.
type GroupCreate struct {
	Group      *Group `json:"group"                 yaml:"group"`
	OperatorID string `json:"operator_id,omitempty" yaml:"operator_id,omitempty"`
}

// GroupResult is returned by group create.
type GroupResult struct {
	Group *Group `json:"group" yaml:"group"`
}

// GroupMeta identifies a group in list results.
type GroupMeta struct {
	GroupID   string `json:"group_id"   yaml:"group_id"`
	GroupName string `json:"group_name" yaml:"group_name"`
}

// GroupPage is one page of groups.
type GroupPage struct {
	GroupList []*GroupMeta `json:"group_list" yaml:"group_list"`
}

// GroupSearch is the body of a group search call.
type GroupSearch struct {
	GroupName string `json:"group_name" yaml:"group_name"`
}

// GroupSearchResult lists groups matching a search.
type GroupSearchResult struct {
	GroupList []*GroupMeta `json:"group_list" yaml:"group_list"`
}

// Shift is a work shift.
type Shift struct {
	ShiftID           string               `json:"shift_id,omitempty"              yaml:"shift_id,omitempty"`
	ShiftName         string               `json:"shift_name"                      yaml:"shift_name"`
	PunchTimes        int                  `json:"punch_times"                     yaml:"punch_times"`
	IsFlexible        *bool                `json:"is_flexible,omitempty"           yaml:"is_flexible,omitempty"`
	FlexibleMinutes   int                  `json:"flexible_minutes,omitempty"      yaml:"flexible_minutes,omitempty"`
	NoNeedOff         *bool                `json:"no_need_off,omitempty"           yaml:"no_need_off,omitempty"`
	PunchTimeRule     []*PunchTimeRule     `json:"punch_time_rule,omitempty"       yaml:"punch_time_rule,omitempty"`
	RestTimeRule      []*RestRule          `json:"rest_time_rule,omitempty"        yaml:"rest_time_rule,omitempty"`
	LateOffLateOnRule []*LateOffLateOnRule `json:"late_off_late_on_rule,omitempty" yaml:"late_off_late_on_rule,omitempty"`
}

// PunchTimeRule is one on/off duty pair of a shift.
type PunchTimeRule struct {
	OnTime              string `json:"on_time"                yaml:"on_time"`
	OffTime             string `json:"off_time"               yaml:"off_time"`
	LateMinutesAsLate   int    `json:"late_minutes_as_late"   yaml:"late_minutes_as_late"`
	LateMinutesAsLack   int    `json:"late_minutes_as_lack"   yaml:"late_minutes_as_lack"`
	OnAdvanceMinutes    int    `json:"on_advance_minutes"     yaml:"on_advance_minutes"`
	EarlyMinutesAsEarly int    `json:"early_minutes_as_early" yaml:"early_minutes_as_early"`
	EarlyMinutesAsLack  int    `json:"early_minutes_as_lack"  yaml:"early_minutes_as_lack"`
	OffDelayMinutes     int    `json:"off_delay_minutes"      yaml:"off_delay_minutes"`
}

// RestRule is a break within a shift.
type RestRule struct {
	RestBeginTime string `json:"rest_begin_time" yaml:"rest_begin_time"`
	RestEndTime   string `json:"rest_end_time"   yaml:"rest_end_time"`
}

// LateOffLateOnRule allows a later start after a late finish.
type LateOffLateOnRule struct {
	LateOffMinutes int `json:"late_off_minutes" yaml:"late_off_minutes"`
	LateOnMinutes  int `json:"late_on_minutes"  yaml:"late_on_minutes"`
}

// ShiftResult is returned by shift create.
type ShiftResult struct {
	Shift *Shift `json:"shift" yaml:"shift"`
}

// ShiftPage is one page of shifts.
type ShiftPage struct {
	ShiftList []*Shift `json:"shift_list" yaml:"shift_list"`
}

// UserTaskQuery is the body of a user task query.
type UserTaskQuery struct {
	UserIDs       []string `json:"user_ids"                       yaml:"user_ids"`
	CheckDateFrom int      `json:"check_date_from"                yaml:"check_date_from"`
	CheckDateTo   int      `json:"check_date_to"                  yaml:"check_date_to"`
	NeedOvertime  *bool    `json:"need_overtime_result,omitempty" yaml:"need_overtime_result,omitempty"`
}

// UserTask is the clock-in result of one user on one day.
type UserTask struct {
	ResultID     string        `json:"result_id"     yaml:"result_id"`
	UserID       string        `json:"user_id"       yaml:"user_id"`
	EmployeeName string        `json:"employee_name" yaml:"employee_name"`
	Day          int           `json:"day"           yaml:"day"`
	GroupID      string        `json:"group_id"      yaml:"group_id"`
	ShiftID      string        `json:"shift_id"      yaml:"shift_id"`
	Records      []*TaskResult `json:"records"       yaml:"records"`
}

// TaskResult is one punch pair of a user task.
type TaskResult struct {
	CheckInRecordID   string `json:"check_in_record_id"   yaml:"check_in_record_id"`
	CheckOutRecordID  string `json:"check_out_record_id"  yaml:"check_out_record_id"`
	CheckInResult     string `json:"check_in_result"      yaml:"check_in_result"`
	CheckOutResult    string `json:"check_out_result"     yaml:"check_out_result"`
	CheckInShiftTime  string `json:"check_in_shift_time"  yaml:"check_in_shift_time"`
	CheckOutShiftTime string `json:"check_out_shift_time" yaml:"check_out_shift_time"`
}

// UserTaskQueryResult lists clock-in results.
type UserTaskQueryResult struct {
	UserTaskResults []*UserTask `json:"user_task_results"          yaml:"user_task_results"`
	InvalidUserIDs  []string    `json:"invalid_user_ids,omitempty" yaml:"invalid_user_ids,omitempty"`
}

// UserFlow is a raw clock-in record.
type UserFlow struct {
	UserID       string   `json:"user_id"              yaml:"user_id"`
	CreatorID    string   `json:"creator_id"           yaml:"creator_id"`
	LocationName string   `json:"location_name"        yaml:"location_name"`
	CheckTime    string   `json:"check_time"           yaml:"check_time"`
	Comment      string   `json:"comment"              yaml:"comment"`
	RecordID     string   `json:"record_id,omitempty"  yaml:"record_id,omitempty"`
	SSID         string   `json:"ssid,omitempty"       yaml:"ssid,omitempty"`
	BSSID        string   `json:"bssid,omitempty"      yaml:"bssid,omitempty"`
	IsField      *bool    `json:"is_field,omitempty"   yaml:"is_field,omitempty"`
	IsWifi       *bool    `json:"is_wifi,omitempty"    yaml:"is_wifi,omitempty"`
	Type         int      `json:"type,omitempty"       yaml:"type,omitempty"`
	PhotoURLs    []string `json:"photo_urls,omitempty" yaml:"photo_urls,omitempty"`
}

// UserFlowBatchCreate is the body of a user flow batch create.
type UserFlowBatchCreate struct {
	FlowRecords []*UserFlow `json:"flow_records" yaml:"flow_records"`
}

// UserFlowBatchResult echoes the created records.
type UserFlowBatchResult struct {
	FlowRecords []*UserFlow `json:"flow_records" yaml:"flow_records"`
}

// UserFlowQuery is the body of a user flow query.
type UserFlowQuery struct {
	UserIDs       []string `json:"user_ids"        yaml:"user_ids"`
	CheckTimeFrom string   `json:"check_time_from" yaml:"check_time_from"`
	CheckTimeTo   string   `json:"check_time_to"   yaml:"check_time_to"`
}

// UserFlowQueryResult lists clock-in records.
type UserFlowQueryResult struct {
	UserFlowResults []*UserFlow `json:"user_flow_results"          yaml:"user_flow_results"`
	InvalidUserIDs  []string    `json:"invalid_user_ids,omitempty" yaml:"invalid_user_ids,omitempty"`
}

// UserApproval holds one user's approvals on one date.
type UserApproval struct {
	UserID string       `json:"user_id"          yaml:"user_id"`
	Date   string       `json:"date"             yaml:"date"`
	Outs   []*UserOut   `json:"outs,omitempty"   yaml:"outs,omitempty"`
	Leaves []*UserLeave `json:"leaves,omitempty" yaml:"leaves,omitempty"`
	Trips  []*UserTrip  `json:"trips,omitempty"  yaml:"trips,omitempty"`
}

// UserLeave is a leave approval.
type UserLeave struct {
	ApprovalID      string `json:"approval_id,omitempty"       yaml:"approval_id,omitempty"`
	UniqID          string `json:"uniq_id,omitempty"           yaml:"uniq_id,omitempty"`
	Unit            int    `json:"unit"                        yaml:"unit"`
	Interval        int    `json:"interval"                    yaml:"interval"`
	StartTime       string `json:"start_time"                  yaml:"start_time"`
	EndTime         string `json:"end_time"                    yaml:"end_time"`
	Reason          string `json:"reason"                      yaml:"reason"`
	ApprovePassTime string `json:"approve_pass_time,omitempty" yaml:"approve_pass_time,omitempty"`
}

// UserOut is an out-of-office approval.
type UserOut struct {
	ApprovalID string `json:"approval_id,omitempty" yaml:"approval_id,omitempty"`
	UniqID     string `json:"uniq_id"               yaml:"uniq_id"`
	Unit       int    `json:"unit"                  yaml:"unit"`
	Interval   int    `json:"interval"              yaml:"interval"`
	StartTime  string `json:"start_time"            yaml:"start_time"`
	EndTime    string `json:"end_time"              yaml:"end_time"`
	Reason     string `json:"reason"                yaml:"reason"`
}

// UserTrip is a business trip approval.
type UserTrip struct {
	ApprovalID string `json:"approval_id,omitempty" yaml:"approval_id,omitempty"`
	StartTime  string `json:"start_time"            yaml:"start_time"`
	EndTime    string `json:"end_time"              yaml:"end_time"`
	Reason     string `json:"reason"                yaml:"reason"`
}

// UserApprovalCreate is the body of a user approval create.
type UserApprovalCreate struct {
	UserApproval *UserApproval `json:"user_approval" yaml:"user_approval"`
}

// UserApprovalResult is returned by user approval create.
type UserApprovalResult struct {
	UserApproval *UserApproval `json:"user_approval" yaml:"user_approval"`
}

// UserApprovalQuery is the body of a user approval query.
type UserApprovalQuery struct {
	UserIDs       []string `json:"user_ids"        yaml:"user_ids"`
	CheckDateFrom int      `json:"check_date_from" yaml:"check_date_from"`
	CheckDateTo   int      `json:"check_date_to"   yaml:"check_date_to"`
}

// UserApprovalQueryResult lists approvals.
type UserApprovalQueryResult struct {
	UserApprovals []*UserApproval `json:"user_approvals" yaml:"user_approvals"`
}

// ApprovalInfoProcess is the body of an approval status update.
type ApprovalInfoProcess struct {
	ApprovalID   string `json:"approval_id"   yaml:"approval_id"`
	ApprovalType string `json:"approval_type" yaml:"approval_type"`
	Status       int    `json:"status"        yaml:"status"`
}

// ApprovalInfoResult is returned by approval process.
type ApprovalInfoResult struct {
	ApprovalInfo *ApprovalInfo `json:"approval_info" yaml:"approval_info"`
}

// ApprovalInfo is the state of an approval.
type ApprovalInfo struct {
	ApprovalID   string `json:"approval_id"   yaml:"approval_id"`
	ApprovalType string `json:"approval_type" yaml:"approval_type"`
	Status       int    `json:"status"        yaml:"status"`
}

// ArchiveRule is an archive report rule.
type ArchiveRule struct {
	RuleID        string `json:"rule_id"         yaml:"rule_id"`
	RuleName      string `json:"rule_name"       yaml:"rule_name"`
	MonthType     int    `json:"month_type"      yaml:"month_type"`
	CycleStartDay int    `json:"cycle_start_day" yaml:"cycle_start_day"`
}

// ArchiveRulePage is one page of archive rules.
type ArchiveRulePage struct {
	Items []*ArchiveRule `json:"items" yaml:"items"`
}

// FileUploadResult is returned by file upload.
type FileUploadResult struct {
	File *UploadedFile `json:"file" yaml:"file"`
}

// UploadedFile identifies an uploaded file.
type UploadedFile struct {
	FileID string `json:"file_id" yaml:"file_id"`
}
