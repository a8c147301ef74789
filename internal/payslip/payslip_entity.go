package payslip

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusGenerated = "GENERATED"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
)

// Components adalah map komponen gaji -> nominal, disimpan sebagai JSONB.
type Components map[string]decimal.Decimal

func (c *Components) Scan(src interface{}) error {
	if src == nil {
		*c = Components{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("Components.Scan: unsupported type %T", src)
	}
	out := Components{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("Components.Scan: %w", err)
	}
	*c = out
	return nil
}

func (c Components) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]decimal.Decimal(c))
}

// Sum menjumlahkan semua komponen.
func (c Components) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c {
		total = total.Add(v)
	}
	return total
}

// Keys returns component names in a stable order.
func (c Components) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type SalaryStructure struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;index"`
	Earnings      Components `gorm:"type:jsonb;not null"`
	Deductions    Components `gorm:"type:jsonb;not null"`
	EffectiveFrom time.Time  `gorm:"type:date;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

type Payslip struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;uniqueIndex:uq_payslip_user_period"`
	Month       int             `gorm:"not null;uniqueIndex:uq_payslip_user_period"`
	Year        int             `gorm:"not null;uniqueIndex:uq_payslip_user_period"`
	Earnings    Components      `gorm:"type:jsonb;not null"`
	Deductions  Components      `gorm:"type:jsonb;not null"`
	GrossPay    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeduct decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetPay      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'GENERATED'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *PayslipUser `gorm:"foreignKey:UserID;references:ID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

type PayslipUser struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Phone string `gorm:"column:phone"`
}

func (PayslipUser) TableName() string {
	return "users"
}
