package leave

import "time"

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeCasual    = "CASUAL"
	TypeSick      = "SICK"
	TypeAnnual    = "ANNUAL"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
	TypeUnpaid    = "UNPAID"
)

const (
	HalfDayFirst  = "FIRST_HALF"
	HalfDaySecond = "SECOND_HALF"
)

type LeaveRequest struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_leave_requests_user_status"`
	Type        string    `gorm:"type:varchar(20);not null"`
	FromDate    time.Time `gorm:"type:date;not null"`
	ToDate      time.Time `gorm:"type:date;not null"`
	Days        float64   `gorm:"type:numeric(6,1);not null"`
	Reason      string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_user_status"`
	HalfDay     bool      `gorm:"not null;default:false"`
	HalfDayType *string   `gorm:"type:varchar(20)"`
	Emergency   bool      `gorm:"not null;default:false"`
	ApprovedBy  *uint
	ApprovedAt  *time.Time
	Comments    *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User         *LeaveUser `gorm:"foreignKey:UserID"`
	ApprovedUser *LeaveUser `gorm:"foreignKey:ApprovedBy"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

// LeaveUser adalah proyeksi read-only dari tabel users untuk preload nama.
type LeaveUser struct {
	ID    uint
	Name  string
	Email string
}

func (LeaveUser) TableName() string { return "users" }

type LeaveBalance struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"not null;uniqueIndex:uq_leave_balance_user_year"`
	Year        int     `gorm:"not null;uniqueIndex:uq_leave_balance_user_year"`
	CasualTotal float64 `gorm:"type:numeric(6,1);not null"`
	CasualUsed  float64 `gorm:"type:numeric(6,1);not null;default:0"`
	SickTotal   float64 `gorm:"type:numeric(6,1);not null"`
	SickUsed    float64 `gorm:"type:numeric(6,1);not null;default:0"`
	AnnualTotal float64 `gorm:"type:numeric(6,1);not null"`
	AnnualUsed  float64 `gorm:"type:numeric(6,1);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveBalance) TableName() string { return "leave_balances" }

// Available returns total minus used for a tracked type. ok is false for
// types the ledger does not track.
func (b LeaveBalance) Available(leaveType string) (available float64, ok bool) {
	switch normalizeType(leaveType) {
	case TypeCasual:
		return b.CasualTotal - b.CasualUsed, true
	case TypeSick:
		return b.SickTotal - b.SickUsed, true
	case TypeAnnual:
		return b.AnnualTotal - b.AnnualUsed, true
	default:
		return 0, false
	}
}

type LeaveAuditLog struct {
	ID             uint      `gorm:"primaryKey"`
	EventID        string    `gorm:"type:uuid;not null;uniqueIndex:uq_leave_audit_event"`
	LeaveRequestID uint      `gorm:"not null"`
	UserID         uint      `gorm:"not null"`
	ActorID        *uint
	EventType      string    `gorm:"type:varchar(50);not null"`
	FromStatus     *string   `gorm:"type:varchar(20)"`
	ToStatus       string    `gorm:"type:varchar(20);not null"`
	Days           float64   `gorm:"type:numeric(6,1);not null"`
	LedgerDelta    float64   `gorm:"type:numeric(6,1);not null"`
	Comments       *string   `gorm:"type:text"`
	OccurredAt     time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

func (LeaveAuditLog) TableName() string { return "leave_audit_logs" }
