package payslip

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/events"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"
	paysliperrors "github.com/Arun-hash30/Attendence-helix/internal/payslip/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/contextutil"
	"github.com/Arun-hash30/Attendence-helix/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	CreateSalaryStructure(ctx context.Context, userID uint, req SalaryStructureRequest) (SalaryStructureResponse, error)
	GetLatestSalaryStructure(ctx context.Context, userID uint) (SalaryStructureResponse, error)
	GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) (GenerateResult, error)

	GetPayslipsByUser(ctx context.Context, userID uint) ([]PayslipResponse, error)
	GetAllPayslips(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)
	GetPayslipByID(ctx context.Context, id uint) (PayslipResponse, error)
	UpdatePayslipStatus(ctx context.Context, id uint, status string) (PayslipResponse, error)
	DeletePayslip(ctx context.Context, id uint) error
	GetPayslipStats(ctx context.Context) (StatsResponse, error)
	GetAvailableYears(ctx context.Context) ([]int, error)
	GetUsersForPayslip(ctx context.Context) ([]user.UserResponse, error)
	ExportPayslips(ctx context.Context, filter ListFilter) (*bytes.Buffer, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		outbox: outboxRepo,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ComputeTotals menghitung gross, total potongan dan net pay dari struktur gaji.
func ComputeTotals(earnings, deductions Components) (gross, totalDeduct, net decimal.Decimal) {
	gross = earnings.Sum()
	totalDeduct = deductions.Sum()
	return gross, totalDeduct, gross.Sub(totalDeduct)
}

func isValidStatus(status string) bool {
	switch status {
	case StatusGenerated, StatusProcessed, StatusPaid:
		return true
	}
	return false
}

func (s *service) ensureUser(ctx context.Context, userID uint) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("payslip user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	if !exists {
		return paysliperrors.ErrUserNotFound
	}
	return nil
}

func (s *service) CreateSalaryStructure(ctx context.Context, userID uint, req SalaryStructureRequest) (SalaryStructureResponse, error) {
	s.logger.Debug("create salary structure requested", zap.Uint("user_id", userID))

	effectiveFrom, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, paysliperrors.ErrInvalidDateFormat
	}

	earnings := Components{
		"basic":            req.BasicSalary,
		"hra":              req.HRA,
		"specialAllowance": req.SpecialAllowance,
		"travelAllowance":  req.TravelAllowance,
		"medicalAllowance": req.MedicalAllowance,
	}
	deductions := Components{
		"pf":              req.PF,
		"professionalTax": req.ProfessionalTax,
		"tds":             req.TDS,
		"otherDeductions": req.OtherDeductions,
	}
	for _, set := range []Components{earnings, deductions} {
		for _, v := range set {
			if v.IsNegative() {
				return SalaryStructureResponse{}, paysliperrors.ErrNegativeAmount
			}
		}
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return SalaryStructureResponse{}, err
	}

	structure := &SalaryStructure{
		UserID:        userID,
		Earnings:      earnings,
		Deductions:    deductions,
		EffectiveFrom: effectiveFrom,
	}
	if err := s.repo.CreateSalaryStructure(ctx, structure); err != nil {
		s.logger.Error("create salary structure failed", zap.Uint("user_id", userID), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("salary structure created",
		zap.Uint("user_id", userID),
		zap.Uint("salary_structure_id", structure.ID),
		zap.String("effective_from", req.EffectiveFrom),
	)
	return mapSalaryStructure(*structure), nil
}

func (s *service) GetLatestSalaryStructure(ctx context.Context, userID uint) (SalaryStructureResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return SalaryStructureResponse{}, err
	}

	structure, err := s.repo.FindLatestSalaryStructure(ctx, userID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	if structure == nil {
		return SalaryStructureResponse{}, paysliperrors.ErrSalaryStructureNotFound
	}
	return mapSalaryStructure(*structure), nil
}

func (s *service) GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) (GenerateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslips requested",
		zap.String("request_id", rid),
		zap.Uint("user_id", req.UserID),
		zap.Ints("months", req.Months),
		zap.Int("year", req.Year),
	)

	if len(req.Months) == 0 {
		return GenerateResult{}, paysliperrors.ErrNoMonths
	}
	var invalid []string
	for _, m := range req.Months {
		if m < 1 || m > 12 {
			invalid = append(invalid, strconv.Itoa(m))
		}
	}
	if len(invalid) > 0 {
		return GenerateResult{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("invalid months: %s, must be between 1 and 12", strings.Join(invalid, ", ")),
			http.StatusBadRequest,
		)
	}
	if req.Year < 1 || req.Year > 9999 {
		return GenerateResult{}, paysliperrors.ErrInvalidYear
	}

	if err := s.ensureUser(ctx, req.UserID); err != nil {
		return GenerateResult{}, err
	}

	structure, err := s.repo.FindLatestSalaryStructure(ctx, req.UserID)
	if err != nil {
		s.logger.Error("load salary structure failed", zap.Uint("user_id", req.UserID), zap.Error(err))
		return GenerateResult{}, err
	}
	if structure == nil {
		return GenerateResult{}, paysliperrors.ErrSalaryStructureNotFound
	}

	gross, totalDeduct, net := ComputeTotals(structure.Earnings, structure.Deductions)
	if net.IsNegative() {
		s.logger.Warn("generate payslips rejected, negative net pay",
			zap.Uint("user_id", req.UserID),
			zap.String("net_pay", net.StringFixed(2)),
		)
		return GenerateResult{}, paysliperrors.ErrNegativeNetPay
	}

	result := GenerateResult{
		Payslips:     []PayslipResponse{},
		FailedMonths: []FailedMonth{},
	}

	// Tiap bulan punya transaksinya sendiri, gagal satu bulan tidak membatalkan yang lain.
	for _, month := range req.Months {
		p := &Payslip{
			UserID:      req.UserID,
			Month:       month,
			Year:        req.Year,
			Earnings:    structure.Earnings,
			Deductions:  structure.Deductions,
			GrossPay:    gross,
			TotalDeduct: totalDeduct,
			NetPay:      net,
			Status:      StatusGenerated,
		}

		if err := s.generateOne(ctx, rid, p); err != nil {
			reason := apperror.ToHTTP(err).Message
			if errors.Is(err, paysliperrors.ErrPayslipExists) {
				reason = "Payslip already exists"
			}
			result.FailedMonths = append(result.FailedMonths, FailedMonth{Month: month, Reason: reason})
			continue
		}
		result.Payslips = append(result.Payslips, mapToResponse(*p))
	}

	result.Success = len(result.Payslips)
	result.Failed = len(result.FailedMonths)
	if result.Success > 0 {
		result.Message = fmt.Sprintf("Successfully generated %d payslip(s)", result.Success)
	} else {
		result.Message = "No payslips were generated"
	}

	s.logger.Info("payslips generated",
		zap.String("request_id", rid),
		zap.Uint("user_id", req.UserID),
		zap.Int("year", req.Year),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *service) generateOne(ctx context.Context, rid string, p *Payslip) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, p.UserID, p.Month, p.Year)
	if err != nil {
		return err
	}
	if exists {
		return paysliperrors.ErrPayslipExists
	}

	if err := qtx.Create(ctx, p); err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, paysliperrors.ErrPayslipExists) {
			s.logger.Error("create payslip failed",
				zap.Uint("user_id", p.UserID),
				zap.Int("month", p.Month),
				zap.Int("year", p.Year),
				zap.Error(err),
			)
		}
		return mapped
	}

	if err := s.enqueue(ctx, tx, events.PayslipGeneratedEvent{
		EventType:  events.PayslipGenerated,
		RequestID:  rid,
		PayslipID:  p.ID,
		UserID:     p.UserID,
		Month:      p.Month,
		Year:       p.Year,
		NetPay:     p.NetPay.StringFixed(2),
		OccurredAt: s.now(),
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, event events.PayslipGeneratedEvent) error {
	if s.outbox == nil {
		return nil
	}

	event.EventID = uuid.NewString()
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            event.EventID,
		RequestID:     event.RequestID,
		AggregateType: "payslip",
		AggregateID:   strconv.FormatUint(uint64(event.PayslipID), 10),
		EventType:     event.EventType,
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payslip outbox persist failed", zap.Uint("payslip_id", event.PayslipID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetPayslipsByUser(ctx context.Context, userID uint) ([]PayslipResponse, error) {
	payslips, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list user payslips failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(payslips), nil
}

func (s *service) GetAllPayslips(ctx context.Context, filter ListFilter) ([]PayslipResponse, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	if filter.Status != "" && !isValidStatus(filter.Status) {
		return nil, paysliperrors.ErrInvalidStatus
	}

	payslips, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list payslips failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(payslips), nil
}

func (s *service) GetPayslipByID(ctx context.Context, id uint) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) UpdatePayslipStatus(ctx context.Context, id uint, status string) (PayslipResponse, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !isValidStatus(status) {
		return PayslipResponse{}, paysliperrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payslip status updated", zap.Uint("payslip_id", id), zap.String("status", status))
	return mapToResponse(*p), nil
}

func (s *service) DeletePayslip(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("payslip deleted", zap.Uint("payslip_id", id))
	return nil
}

func (s *service) GetPayslipStats(ctx context.Context) (StatsResponse, error) {
	return s.repo.Stats(ctx)
}

func (s *service) GetAvailableYears(ctx context.Context) ([]int, error) {
	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

func (s *service) GetUsersForPayslip(ctx context.Context) ([]user.UserResponse, error) {
	return s.users.ListActive(ctx, "user")
}

func (s *service) ExportPayslips(ctx context.Context, filter ListFilter) (*bytes.Buffer, error) {
	rows, err := s.GetAllPayslips(ctx, filter)
	if err != nil {
		return nil, err
	}

	buf, err := buildPayslipWorkbook(rows)
	if err != nil {
		s.logger.Error("build payslip workbook failed", zap.Error(err))
		return nil, err
	}
	return buf, nil
}

func mapSalaryStructure(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Earnings:      s.Earnings,
		Deductions:    s.Deductions,
		EffectiveFrom: s.EffectiveFrom.Format(dateLayout),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Month:       p.Month,
		MonthName:   time.Month(p.Month).String(),
		Year:        p.Year,
		Earnings:    p.Earnings,
		Deductions:  p.Deductions,
		GrossPay:    p.GrossPay,
		TotalDeduct: p.TotalDeduct,
		NetPay:      p.NetPay,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.User != nil {
		resp.User = &PayslipUserResponse{
			ID:    p.User.ID,
			Name:  p.User.Name,
			Email: p.User.Email,
			Phone: p.User.Phone,
		}
	}
	return resp
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapToResponse(p)
	}
	return resp
}
