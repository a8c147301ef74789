package leave

type ApplyLeaveRequest struct {
	Type        string `json:"type" binding:"required,oneof=CASUAL SICK ANNUAL MATERNITY PATERNITY UNPAID casual sick annual maternity paternity unpaid"`
	FromDate    string `json:"fromDate" binding:"required"`
	ToDate      string `json:"toDate" binding:"required"`
	Reason      string `json:"reason" binding:"max=1000"`
	HalfDay     bool   `json:"halfDay"`
	HalfDayType string `json:"halfDayType"`
	Emergency   bool   `json:"emergency"`
}

type UpdateLeaveStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments" binding:"max=1000"`
}

type ListFilter struct {
	UserID uint
	Status string
	Type   string
	Year   int
}

type LeaveUserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LeaveResponse struct {
	ID             uint               `json:"id"`
	UserID         uint               `json:"userId"`
	Type           string             `json:"type"`
	FromDate       string             `json:"fromDate"`
	ToDate         string             `json:"toDate"`
	Days           float64            `json:"days"`
	Reason         string             `json:"reason,omitempty"`
	Status         string             `json:"status"`
	HalfDay        bool               `json:"halfDay"`
	HalfDayType    *string            `json:"halfDayType,omitempty"`
	Emergency      bool               `json:"emergency"`
	ApprovedBy     *uint              `json:"approvedBy,omitempty"`
	ApprovedAt     *string            `json:"approvedAt,omitempty"`
	Comments       *string            `json:"comments,omitempty"`
	CreatedAt      string             `json:"createdAt"`
	UpdatedAt      string             `json:"updatedAt"`
	User           *LeaveUserResponse `json:"user,omitempty"`
	ApprovedByUser *LeaveUserResponse `json:"approvedByUser,omitempty"`
}

type BalanceResponse struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"userId"`
	Year        int              `json:"year"`
	CasualTotal float64          `json:"casualTotal"`
	CasualUsed  float64          `json:"casualUsed"`
	SickTotal   float64          `json:"sickTotal"`
	SickUsed    float64          `json:"sickUsed"`
	AnnualTotal float64          `json:"annualTotal"`
	AnnualUsed  float64          `json:"annualUsed"`
	Remaining   RemainingBalance `json:"remaining"`
}

type RemainingBalance struct {
	Casual float64 `json:"casual"`
	Sick   float64 `json:"sick"`
	Annual float64 `json:"annual"`
}

type StatsResponse struct {
	TotalLeaves  int               `json:"totalLeaves"`
	Pending      int               `json:"pending"`
	Approved     int               `json:"approved"`
	Rejected     int               `json:"rejected"`
	Cancelled    int               `json:"cancelled"`
	LeaveBalance *RemainingBalance `json:"leaveBalance,omitempty"`
}

type StatusCount struct {
	Status string
	Count  int
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type CalendarEvent struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
	AllDay   bool   `json:"allDay"`
	Color    string `json:"color"`
}

type HistoryResponse struct {
	EventID     string  `json:"eventId"`
	EventType   string  `json:"eventType"`
	ActorID     *uint   `json:"actorId,omitempty"`
	FromStatus  *string `json:"fromStatus,omitempty"`
	ToStatus    string  `json:"toStatus"`
	Days        float64 `json:"days"`
	LedgerDelta float64 `json:"ledgerDelta"`
	Comments    *string `json:"comments,omitempty"`
	OccurredAt  string  `json:"occurredAt"`
}
