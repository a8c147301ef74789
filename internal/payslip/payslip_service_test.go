package payslip_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/events"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"
	"github.com/Arun-hash30/Attendence-helix/internal/payslip"
	paysliperrors "github.com/Arun-hash30/Attendence-helix/internal/payslip/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/user"
	mock_user "github.com/Arun-hash30/Attendence-helix/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakePayslipRepository struct {
	createSalaryStructureFn func(ctx context.Context, s *payslip.SalaryStructure) error
	findLatestFn            func(ctx context.Context, userID uint) (*payslip.SalaryStructure, error)
	existsForPeriodFn       func(ctx context.Context, userID uint, month, year int) (bool, error)
	createFn                func(ctx context.Context, p *payslip.Payslip) error
	findAllFn               func(ctx context.Context, filter payslip.ListFilter) ([]payslip.Payslip, error)
	findByUserFn            func(ctx context.Context, userID uint) ([]payslip.Payslip, error)
	findByIDFn              func(ctx context.Context, id uint) (*payslip.Payslip, error)
	updateStatusFn          func(ctx context.Context, id uint, status string) error
	deleteFn                func(ctx context.Context, id uint) error
	statsFn                 func(ctx context.Context) (payslip.StatsResponse, error)
	distinctYearsFn         func(ctx context.Context) ([]int, error)
}

func (f *fakePayslipRepository) WithTx(tx *sql.Tx) payslip.Repository { return f }

func (f *fakePayslipRepository) CreateSalaryStructure(ctx context.Context, s *payslip.SalaryStructure) error {
	if f.createSalaryStructureFn != nil {
		return f.createSalaryStructureFn(ctx, s)
	}
	s.ID = 1
	return nil
}

func (f *fakePayslipRepository) FindLatestSalaryStructure(ctx context.Context, userID uint) (*payslip.SalaryStructure, error) {
	if f.findLatestFn != nil {
		return f.findLatestFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakePayslipRepository) ExistsForPeriod(ctx context.Context, userID uint, month, year int) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, userID, month, year)
	}
	return false, nil
}

func (f *fakePayslipRepository) Create(ctx context.Context, p *payslip.Payslip) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	p.ID = uint(p.Month)
	return nil
}

func (f *fakePayslipRepository) FindAll(ctx context.Context, filter payslip.ListFilter) ([]payslip.Payslip, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByUser(ctx context.Context, userID uint) ([]payslip.Payslip, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByID(ctx context.Context, id uint) (*payslip.Payslip, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayslipRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakePayslipRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakePayslipRepository) Stats(ctx context.Context) (payslip.StatsResponse, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return payslip.StatsResponse{}, nil
}

func (f *fakePayslipRepository) DistinctYears(ctx context.Context) ([]int, error) {
	if f.distinctYearsFn != nil {
		return f.distinctYearsFn(ctx)
	}
	return nil, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, e kafka.OutboxEvent) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type payslipServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakePayslipRepository
	outbox  *fakeOutbox
	users   *mock_user.MockService
	service payslip.Service
}

func setupPayslipServiceTest(t *testing.T) *payslipServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &payslipServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    &fakePayslipRepository{},
		outbox:  &fakeOutbox{},
		users:   mock_user.NewMockService(gomock.NewController(t)),
	}
	deps.service = payslip.NewService(db, deps.repo, deps.users, deps.outbox)
	return deps
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func sampleStructure() *payslip.SalaryStructure {
	return &payslip.SalaryStructure{
		ID:     3,
		UserID: 7,
		Earnings: payslip.Components{
			"basic":            dec("50000"),
			"hra":              dec("20000"),
			"specialAllowance": dec("10000.50"),
		},
		Deductions: payslip.Components{
			"pf":  dec("6000"),
			"tds": dec("4000.25"),
		},
	}
}

func TestComputeTotals(t *testing.T) {
	s := sampleStructure()

	gross, totalDeduct, net := payslip.ComputeTotals(s.Earnings, s.Deductions)

	assert.True(t, gross.Equal(dec("80000.50")))
	assert.True(t, totalDeduct.Equal(dec("10000.25")))
	assert.True(t, net.Equal(dec("70000.25")))
}

func TestComputeTotals_EmptyDeductions(t *testing.T) {
	gross, totalDeduct, net := payslip.ComputeTotals(payslip.Components{"basic": dec("100")}, nil)

	assert.True(t, gross.Equal(dec("100")))
	assert.True(t, totalDeduct.IsZero())
	assert.True(t, net.Equal(dec("100")))
}

func TestPayslipService_CreateSalaryStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("stores earnings and deductions", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)

		var stored *payslip.SalaryStructure
		deps.repo.createSalaryStructureFn = func(ctx context.Context, s *payslip.SalaryStructure) error {
			s.ID = 9
			stored = s
			return nil
		}

		resp, err := deps.service.CreateSalaryStructure(ctx, 7, payslip.SalaryStructureRequest{
			BasicSalary:   dec("50000"),
			HRA:           dec("20000"),
			PF:            dec("6000"),
			EffectiveFrom: "2024-01-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, "2024-01-01", resp.EffectiveFrom)
		assert.Len(t, stored.Earnings, 5)
		assert.Len(t, stored.Deductions, 4)
		assert.True(t, stored.Earnings["basic"].Equal(dec("50000")))
		assert.True(t, stored.Deductions["pf"].Equal(dec("6000")))
	})

	t.Run("negative amount", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.CreateSalaryStructure(ctx, 7, payslip.SalaryStructureRequest{
			BasicSalary:   dec("-1"),
			EffectiveFrom: "2024-01-01",
		})

		assert.ErrorIs(t, err, paysliperrors.ErrNegativeAmount)
	})

	t.Run("bad effective date", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.CreateSalaryStructure(ctx, 7, payslip.SalaryStructureRequest{EffectiveFrom: "01/01/2024"})

		assert.ErrorIs(t, err, paysliperrors.ErrInvalidDateFormat)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(99)).Return(false, nil)

		_, err := deps.service.CreateSalaryStructure(ctx, 99, payslip.SalaryStructureRequest{EffectiveFrom: "2024-01-01"})

		assert.ErrorIs(t, err, paysliperrors.ErrUserNotFound)
	})
}

func TestPayslipService_GeneratePayslips(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one payslip per month and enqueues events", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)
		deps.repo.findLatestFn = func(ctx context.Context, userID uint) (*payslip.SalaryStructure, error) {
			return sampleStructure(), nil
		}
		expectTx(deps.sqlMock, true)
		expectTx(deps.sqlMock, true)

		var created []*payslip.Payslip
		deps.repo.createFn = func(ctx context.Context, p *payslip.Payslip) error {
			p.ID = uint(100 + p.Month)
			created = append(created, p)
			return nil
		}

		result, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{1, 2}, Year: 2024})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Success)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, "Successfully generated 2 payslip(s)", result.Message)
		assert.Len(t, created, 2)
		assert.Equal(t, payslip.StatusGenerated, created[0].Status)
		assert.True(t, created[0].NetPay.Equal(dec("70000.25")))
		assert.Equal(t, "January", result.Payslips[0].MonthName)

		assert.Len(t, deps.outbox.created, 2)
		assert.Equal(t, events.PayslipGeneratedTopic, deps.outbox.created[0].Topic)
		assert.Equal(t, "101", deps.outbox.created[0].AggregateID)
		var ev events.PayslipGeneratedEvent
		assert.NoError(t, json.Unmarshal(deps.outbox.created[1].Payload, &ev))
		assert.Equal(t, events.PayslipGenerated, ev.EventType)
		assert.Equal(t, 2, ev.Month)
		assert.Equal(t, "70000.25", ev.NetPay)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing month is reported as failed", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)
		deps.repo.findLatestFn = func(ctx context.Context, userID uint) (*payslip.SalaryStructure, error) {
			return sampleStructure(), nil
		}
		deps.repo.existsForPeriodFn = func(ctx context.Context, userID uint, month, year int) (bool, error) {
			return month == 3, nil
		}
		expectTx(deps.sqlMock, false)
		expectTx(deps.sqlMock, true)

		result, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{3, 4}, Year: 2024})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Success)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, []payslip.FailedMonth{{Month: 3, Reason: "Payslip already exists"}}, result.FailedMonths)
		assert.Len(t, deps.outbox.created, 1)
	})

	t.Run("unique violation race counts as existing", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)
		deps.repo.findLatestFn = func(ctx context.Context, userID uint) (*payslip.SalaryStructure, error) {
			return sampleStructure(), nil
		}
		deps.repo.createFn = func(ctx context.Context, p *payslip.Payslip) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payslip_user_period"}
		}
		expectTx(deps.sqlMock, false)

		result, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{5}, Year: 2024})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Success)
		assert.Equal(t, "No payslips were generated", result.Message)
		assert.Equal(t, "Payslip already exists", result.FailedMonths[0].Reason)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("invalid months", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{0, 5, 13}, Year: 2024})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid months: 0, 13")
	})

	t.Run("no months", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Year: 2024})

		assert.ErrorIs(t, err, paysliperrors.ErrNoMonths)
	})

	t.Run("missing salary structure", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)

		_, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{1}, Year: 2024})

		assert.ErrorIs(t, err, paysliperrors.ErrSalaryStructureNotFound)
	})

	t.Run("negative net pay", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)
		deps.repo.findLatestFn = func(ctx context.Context, userID uint) (*payslip.SalaryStructure, error) {
			return &payslip.SalaryStructure{
				Earnings:   payslip.Components{"basic": dec("1000")},
				Deductions: payslip.Components{"tds": dec("1500")},
			}, nil
		}

		_, err := deps.service.GeneratePayslips(ctx, payslip.GeneratePayslipsRequest{UserID: 7, Months: []int{1}, Year: 2024})

		assert.ErrorIs(t, err, paysliperrors.ErrNegativeNetPay)
	})
}

func TestPayslipService_UpdatePayslipStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("paid", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		var gotStatus string
		deps.repo.updateStatusFn = func(ctx context.Context, id uint, status string) error {
			gotStatus = status
			return nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*payslip.Payslip, error) {
			return &payslip.Payslip{ID: id, UserID: 7, Month: 6, Status: payslip.StatusPaid}, nil
		}

		resp, err := deps.service.UpdatePayslipStatus(ctx, 4, "paid")

		assert.NoError(t, err)
		assert.Equal(t, payslip.StatusPaid, gotStatus)
		assert.Equal(t, "June", resp.MonthName)
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.UpdatePayslipStatus(ctx, 4, "VOID")

		assert.ErrorIs(t, err, paysliperrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.repo.updateStatusFn = func(ctx context.Context, id uint, status string) error {
			return gorm.ErrRecordNotFound
		}

		_, err := deps.service.UpdatePayslipStatus(ctx, 4, "PROCESSED")

		assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
	})
}

func TestPayslipService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("delete missing payslip", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.repo.deleteFn = func(ctx context.Context, id uint) error { return gorm.ErrRecordNotFound }

		assert.ErrorIs(t, deps.service.DeletePayslip(ctx, 8), paysliperrors.ErrPayslipNotFound)
	})

	t.Run("all payslips normalizes status filter", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		var got payslip.ListFilter
		deps.repo.findAllFn = func(ctx context.Context, filter payslip.ListFilter) ([]payslip.Payslip, error) {
			got = filter
			return []payslip.Payslip{{ID: 1, UserID: 7, Month: 2, Year: 2024, User: &payslip.PayslipUser{ID: 7, Name: "Alice"}}}, nil
		}

		resp, err := deps.service.GetAllPayslips(ctx, payslip.ListFilter{Year: 2024, Status: " paid "})

		assert.NoError(t, err)
		assert.Equal(t, payslip.ListFilter{Year: 2024, Status: payslip.StatusPaid}, got)
		assert.Equal(t, "Alice", resp[0].User.Name)
	})

	t.Run("all payslips rejects unknown status", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		_, err := deps.service.GetAllPayslips(ctx, payslip.ListFilter{Status: "VOID"})

		assert.ErrorIs(t, err, paysliperrors.ErrInvalidStatus)
	})

	t.Run("years never nil", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)

		years, err := deps.service.GetAvailableYears(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, years)
	})

	t.Run("users for payslip are active plain users", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		deps.users.EXPECT().ListActive(gomock.Any(), "user").Return([]user.UserResponse{{ID: 7}}, nil)

		resp, err := deps.service.GetUsersForPayslip(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("stats error propagates", func(t *testing.T) {
		deps := setupPayslipServiceTest(t)
		boom := errors.New("db down")
		deps.repo.statsFn = func(ctx context.Context) (payslip.StatsResponse, error) {
			return payslip.StatsResponse{}, boom
		}

		_, err := deps.service.GetPayslipStats(ctx)

		assert.ErrorIs(t, err, boom)
	})
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}
