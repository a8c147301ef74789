package events

import "time"

const PayslipGeneratedTopic = "hr.payslip.generated.v1"

const PayslipGenerated = "payslip_generated"

type PayslipGeneratedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayslipID  uint      `json:"payslip_id"`
	UserID     uint      `json:"user_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetPay     string    `json:"net_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}
