package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveApplied       = "leave_applied"
	LeaveStatusChanged = "leave_status_changed"
	LeaveCancelled     = "leave_cancelled"
)

// LeaveEvent dipakai untuk semua perubahan leave request.
// LedgerDelta bernilai positif saat approve, negatif saat approval dibatalkan.
type LeaveEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID uint      `json:"leave_request_id"`
	UserID         uint      `json:"user_id"`
	ActorID        uint      `json:"actor_id"`
	LeaveType      string    `json:"leave_type"`
	FromStatus     string    `json:"from_status,omitempty"`
	ToStatus       string    `json:"to_status"`
	Days           float64   `json:"days"`
	LedgerDelta    float64   `json:"ledger_delta"`
	Comments       string    `json:"comments,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
