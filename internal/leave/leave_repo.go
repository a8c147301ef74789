package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*LeaveRequest, error)
	UpdateStatus(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	FindInRange(ctx context.Context, start, end time.Time, userID uint) ([]LeaveRequest, error)
	CountByStatus(ctx context.Context, userID uint, year int) ([]StatusCount, error)
	CreateAuditLog(ctx context.Context, log *LeaveAuditLog) error
	FindAuditLogs(ctx context.Context, leaveRequestID uint) ([]LeaveAuditLog, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("User").
		Preload("ApprovedUser").
		First(&l, "id = ?", id).Error
	return &l, err
}

// FindByIDForUpdate mengunci baris sampai transaksi selesai.
func (r *repository) FindByIDForUpdate(ctx context.Context, id uint) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) UpdateStatus(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"status":      l.Status,
			"approved_by": l.ApprovedBy,
			"approved_at": l.ApprovedAt,
			"comments":    l.Comments,
			"updated_at":  l.UpdatedAt,
		}).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	var leaves []LeaveRequest

	q := r.conn(ctx).Preload("User").Preload("ApprovedUser")
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM from_date) = ?", filter.Year)
	}

	err := q.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindInRange(ctx context.Context, start, end time.Time, userID uint) ([]LeaveRequest, error) {
	var leaves []LeaveRequest

	q := r.conn(ctx).
		Preload("User").
		Where("from_date <= ? AND to_date >= ?", end, start)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	err := q.Order("from_date ASC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) CountByStatus(ctx context.Context, userID uint, year int) ([]StatusCount, error) {
	var rows []StatusCount

	q := r.conn(ctx).Model(&LeaveRequest{}).Select("status, COUNT(*) AS count")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if year != 0 {
		q = q.Where("EXTRACT(YEAR FROM from_date) = ?", year)
	}

	err := q.Group("status").Scan(&rows).Error
	return rows, err
}

func (r *repository) CreateAuditLog(ctx context.Context, log *LeaveAuditLog) error {
	return r.conn(ctx).Create(log).Error
}

func (r *repository) FindAuditLogs(ctx context.Context, leaveRequestID uint) ([]LeaveAuditLog, error) {
	var logs []LeaveAuditLog
	err := r.conn(ctx).
		Where("leave_request_id = ?", leaveRequestID).
		Order("occurred_at ASC").
		Find(&logs).Error
	return logs, err
}
