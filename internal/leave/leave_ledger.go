package leave

import (
	"context"
	"database/sql"

	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger menyimpan saldo cuti per (user, tahun). Semua perubahan *_used
// dilakukan dengan satu statement UPDATE sehingga tidak ada read-modify-write.
//
//go:generate mockgen -source=leave_ledger.go -destination=mock/leave_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	GetOrCreate(ctx context.Context, userID uint, year int) (*LeaveBalance, error)
	Increment(ctx context.Context, userID uint, year int, leaveType string, days float64) error
	Decrement(ctx context.Context, userID uint, year int, leaveType string, days float64) error
}

type ledger struct {
	db         *gorm.DB
	tx         *sql.Tx
	allotments config.Allotments
}

func NewLedger(db *gorm.DB, allotments config.Allotments) Ledger {
	return &ledger{db: db, allotments: allotments}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{db: l.db, tx: tx, allotments: l.allotments}
}

func (l *ledger) conn(ctx context.Context) *gorm.DB {
	return connection.WithTx(ctx, l.db, l.tx)
}

func (l *ledger) GetOrCreate(ctx context.Context, userID uint, year int) (*LeaveBalance, error) {
	db := l.conn(ctx)

	fresh := LeaveBalance{
		UserID:      userID,
		Year:        year,
		CasualTotal: l.allotments.Casual,
		SickTotal:   l.allotments.Sick,
		AnnualTotal: l.allotments.Annual,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	var bal LeaveBalance
	err := db.Where("user_id = ? AND year = ?", userID, year).First(&bal).Error
	if err != nil {
		return nil, err
	}
	return &bal, nil
}

func (l *ledger) Increment(ctx context.Context, userID uint, year int, leaveType string, days float64) error {
	col, ok := usedColumn(leaveType)
	if !ok {
		return nil
	}
	return l.adjust(ctx, userID, year, col, gorm.Expr(col+" + ?", days))
}

func (l *ledger) Decrement(ctx context.Context, userID uint, year int, leaveType string, days float64) error {
	col, ok := usedColumn(leaveType)
	if !ok {
		return nil
	}
	return l.adjust(ctx, userID, year, col, gorm.Expr("GREATEST("+col+" - ?, 0)", days))
}

func (l *ledger) adjust(ctx context.Context, userID uint, year int, col string, expr clause.Expr) error {
	update := func() (int64, error) {
		res := l.conn(ctx).
			Model(&LeaveBalance{}).
			Where("user_id = ? AND year = ?", userID, year).
			UpdateColumn(col, expr)
		return res.RowsAffected, res.Error
	}

	affected, err := update()
	if err != nil || affected > 0 {
		return err
	}

	// baris belum ada: buat dengan allotment default lalu ulangi
	if _, err := l.GetOrCreate(ctx, userID, year); err != nil {
		return err
	}
	_, err = update()
	return err
}

func usedColumn(leaveType string) (string, bool) {
	switch normalizeType(leaveType) {
	case TypeCasual:
		return "casual_used", true
	case TypeSick:
		return "sick_used", true
	case TypeAnnual:
		return "annual_used", true
	default:
		return "", false
	}
}
