package dashboard

// Metrics is the headline card data shown on every role's dashboard.
type Metrics struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	PendingLeaves   int64 `json:"pending_leaves"`
	ApprovedLeaves  int64 `json:"approved_leaves"`
	OnLeaveToday    int64 `json:"on_leave_today"`
}

// Analytics carries the heavier breakdowns only analytics viewers see.
type Analytics struct {
	DepartmentHeadcount map[string]int64 `json:"department_headcount"`
	LeaveTypeBreakdown  map[string]int64 `json:"leave_type_breakdown"`
}
