package payslip

import "github.com/shopspring/decimal"

type SalaryStructureRequest struct {
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	TravelAllowance  decimal.Decimal `json:"travelAllowance"`
	MedicalAllowance decimal.Decimal `json:"medicalAllowance"`
	PF               decimal.Decimal `json:"pf"`
	ProfessionalTax  decimal.Decimal `json:"professionalTax"`
	TDS              decimal.Decimal `json:"tds"`
	OtherDeductions  decimal.Decimal `json:"otherDeductions"`
	EffectiveFrom    string          `json:"effectiveFrom" binding:"required"`
}

type GeneratePayslipsRequest struct {
	UserID uint  `json:"userId" binding:"required"`
	Months []int `json:"months" binding:"required,min=1"`
	Year   int   `json:"year" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListFilter struct {
	Month  int
	Year   int
	Status string
}

type SalaryStructureResponse struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"userId"`
	Earnings      Components `json:"earnings"`
	Deductions    Components `json:"deductions"`
	EffectiveFrom string     `json:"effectiveFrom"`
	CreatedAt     string     `json:"createdAt"`
}

type PayslipUserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type PayslipResponse struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"userId"`
	Month       int                  `json:"month"`
	MonthName   string               `json:"monthName"`
	Year        int                  `json:"year"`
	Earnings    Components           `json:"earnings"`
	Deductions  Components           `json:"deductions"`
	GrossPay    decimal.Decimal      `json:"grossPay"`
	TotalDeduct decimal.Decimal      `json:"totalDeduct"`
	NetPay      decimal.Decimal      `json:"netPay"`
	Status      string               `json:"status"`
	CreatedAt   string               `json:"createdAt"`
	User        *PayslipUserResponse `json:"user,omitempty"`
}

type FailedMonth struct {
	Month  int    `json:"month"`
	Reason string `json:"reason"`
}

type GenerateResult struct {
	Success      int               `json:"success"`
	Failed       int               `json:"failed"`
	Payslips     []PayslipResponse `json:"payslips"`
	FailedMonths []FailedMonth     `json:"failedMonths"`
	Message      string            `json:"message"`
}

type StatsResponse struct {
	TotalPayslips int64           `json:"totalPayslips"`
	PaidPayslips  int64           `json:"paidPayslips"`
	TotalNetPay   decimal.Decimal `json:"totalNetPay"`
}
