package payslip_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/payslip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (payslip.Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return payslip.NewRepository(gdb), mock
}

func TestRepository_FindLatestSalaryStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes jsonb components", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "salary_structures" WHERE user_id = $1 ORDER BY effective_from DESC,id DESC LIMIT $2`)).
			WithArgs(7, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "earnings", "deductions"}).
				AddRow(3, 7, []byte(`{"basic":50000,"hra":"20000.50"}`), []byte(`{"pf":6000}`)))

		s, err := repo.FindLatestSalaryStructure(ctx, 7)

		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.True(t, s.Earnings.Sum().Equal(dec("70000.50")))
		assert.Equal(t, []string{"basic", "hra"}, s.Earnings.Keys())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none yet", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "salary_structures"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		s, err := repo.FindLatestSalaryStructure(ctx, 7)

		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_UpdateStatus_Missing(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "payslips" SET "status"=$1,"updated_at"=NOW() WHERE id = $2`)).
		WithArgs(payslip.StatusPaid, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 4, payslip.StatusPaid)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsForPeriod(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "payslips" WHERE user_id = $1 AND month = $2 AND year = $3`)).
		WithArgs(7, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsForPeriod(context.Background(), 7, 3, 2024)

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestComponents_ScanNil(t *testing.T) {
	var c payslip.Components
	assert.NoError(t, c.Scan(nil))
	assert.NotNil(t, c)
	assert.True(t, c.Sum().IsZero())

	assert.Error(t, c.Scan(42))
}

func TestComponents_Value(t *testing.T) {
	v, err := payslip.Components{"basic": dec("100.5")}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"basic":"100.5"}`, string(v.([]byte)))
}
