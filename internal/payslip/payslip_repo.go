package payslip

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSalaryStructure(ctx context.Context, s *SalaryStructure) error
	FindLatestSalaryStructure(ctx context.Context, userID uint) (*SalaryStructure, error)
	ExistsForPeriod(ctx context.Context, userID uint, month, year int) (bool, error)
	Create(ctx context.Context, p *Payslip) error
	FindAll(ctx context.Context, filter ListFilter) ([]Payslip, error)
	FindByUser(ctx context.Context, userID uint) ([]Payslip, error)
	FindByID(ctx context.Context, id uint) (*Payslip, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (StatsResponse, error)
	DistinctYears(ctx context.Context) ([]int, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithTx(ctx, r.db, r.tx)
}

func (r *repository) CreateSalaryStructure(ctx context.Context, s *SalaryStructure) error {
	return r.conn(ctx).Create(s).Error
}

// FindLatestSalaryStructure: effective_from terbaru yang dipakai. nil kalau belum ada.
func (r *repository) FindLatestSalaryStructure(ctx context.Context, userID uint) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("effective_from DESC").
		Order("id DESC").
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ExistsForPeriod(ctx context.Context, userID uint, month, year int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Payslip{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	return r.conn(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payslip, error) {
	q := r.conn(ctx).Preload("User")
	if filter.Month != 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var payslips []Payslip
	err := q.Order("year DESC").Order("month DESC").Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByUser(ctx context.Context, userID uint) ([]Payslip, error) {
	var payslips []Payslip
	err := r.conn(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("year DESC").
		Order("month DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Payslip, error) {
	var p Payslip
	err := r.conn(ctx).Preload("User").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.conn(ctx).
		Model(&Payslip{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.conn(ctx).Delete(&Payslip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Stats(ctx context.Context) (StatsResponse, error) {
	var row struct {
		Total int64
		Paid  int64
		Net   decimal.NullDecimal
	}
	err := r.conn(ctx).
		Model(&Payslip{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS paid, SUM(net_pay) AS net", StatusPaid).
		Scan(&row).Error
	if err != nil {
		return StatsResponse{}, err
	}

	net := decimal.Zero
	if row.Net.Valid {
		net = row.Net.Decimal
	}
	return StatsResponse{TotalPayslips: row.Total, PaidPayslips: row.Paid, TotalNetPay: net}, nil
}

func (r *repository) DistinctYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.conn(ctx).
		Model(&Payslip{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	return years, err
}
