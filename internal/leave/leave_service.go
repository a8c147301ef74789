package leave

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/events"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/contextutil"
	"github.com/Arun-hash30/Attendence-helix/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	ApplyLeave(ctx context.Context, userID uint, req ApplyLeaveRequest) (LeaveResponse, error)
	UpdateLeaveStatus(ctx context.Context, id, approverID uint, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	CancelLeaveRequest(ctx context.Context, id, userID uint) (LeaveResponse, error)

	GetLeaveBalance(ctx context.Context, userID uint, year int) (BalanceResponse, error)
	GetMyLeaves(ctx context.Context, userID uint, filter ListFilter) ([]LeaveResponse, error)
	GetAllLeaves(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetLeaveRequest(ctx context.Context, id uint) (LeaveResponse, error)
	GetLeaveStats(ctx context.Context, userID uint, year int) (StatsResponse, error)
	GetLeaveCalendar(ctx context.Context, year, month int, userID uint) ([]CalendarEvent, error)
	ExportCalendarICS(ctx context.Context, year, month int, userID uint) (string, error)
	ExportLeaves(ctx context.Context, filter ListFilter) (*bytes.Buffer, error)
	GetLeaveHistory(ctx context.Context, id uint) ([]HistoryResponse, error)
	GetLeaveTypes() []OptionResponse
	GetLeaveStatuses() []OptionResponse
	GetUsersForLeaveManagement(ctx context.Context) ([]user.UserResponse, error)

	RecordLeaveEvent(ctx context.Context, event events.LeaveEvent) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	ledger   Ledger
	users    user.Service
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       singleflight.Group
	cacheCfg config.CacheConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger Ledger,
	users user.Service,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	cacheCfg config.CacheConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		users:    users,
		outbox:   outboxRepo,
		rdb:      rdb,
		cacheCfg: cacheCfg,
		logger:   l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ApplyLeave(ctx context.Context, userID uint, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Uint("user_id", userID),
		zap.String("type", req.Type),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	leaveType := normalizeType(req.Type)
	if !isKnownType(leaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if fromDate.After(toDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	var halfDayType *string
	if req.HalfDay {
		hdt := strings.ToUpper(strings.TrimSpace(req.HalfDayType))
		if hdt != HalfDayFirst && hdt != HalfDaySecond {
			return LeaveResponse{}, leaveerrors.ErrHalfDayTypeRequired
		}
		halfDayType = &hdt
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("apply leave user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrUserNotFound
	}

	days := CountChargeableDays(fromDate, toDate, req.HalfDay)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if isTrackedType(leaveType) {
		bal, err := s.ledger.WithTx(tx).GetOrCreate(ctx, userID, fromDate.Year())
		if err != nil {
			s.logger.Error("apply leave balance lookup failed", zap.Uint("user_id", userID), zap.Error(err))
			return LeaveResponse{}, err
		}
		available, _ := bal.Available(leaveType)
		if available < days {
			s.logger.Warn("apply leave insufficient balance",
				zap.Uint("user_id", userID),
				zap.String("type", leaveType),
				zap.Float64("available", available),
				zap.Float64("requested", days),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
	}

	now := s.now()
	l := &LeaveRequest{
		UserID:      userID,
		Type:        leaveType,
		FromDate:    fromDate,
		ToDate:      toDate,
		Days:        days,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
		HalfDay:     req.HalfDay,
		HalfDayType: halfDayType,
		Emergency:   req.Emergency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.LeaveEvent{
		EventType:      events.LeaveApplied,
		RequestID:      rid,
		LeaveRequestID: l.ID,
		UserID:         userID,
		ActorID:        userID,
		LeaveType:      leaveType,
		ToStatus:       StatusPending,
		Days:           days,
		OccurredAt:     now,
	}); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.invalidate(ctx, l)
	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.Uint("user_id", userID),
		zap.Float64("days", days),
	)

	return mapToResponse(*l), nil
}

// CanTransition: PENDING boleh ke status akhir manapun, APPROVED hanya bisa
// dibalik ke REJECTED atau CANCELLED.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected || to == StatusCancelled
	case StatusApproved:
		return to == StatusRejected || to == StatusCancelled
	default:
		return false
	}
}

func (s *service) UpdateLeaveStatus(ctx context.Context, id, approverID uint, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	target := strings.ToUpper(strings.TrimSpace(req.Status))
	s.logger.Debug("update leave status requested",
		zap.String("request_id", rid),
		zap.Uint("leave_id", id),
		zap.Uint("approver_id", approverID),
		zap.String("target_status", target),
	)

	switch target {
	case StatusApproved, StatusRejected, StatusCancelled:
	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	current := l.Status
	if !CanTransition(current, target) {
		s.logger.Warn("update leave status invalid transition",
			zap.Uint("leave_id", id),
			zap.String("from_status", current),
			zap.String("to_status", target),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	year := l.FromDate.Year()
	qledger := s.ledger.WithTx(tx)
	var delta float64
	switch {
	case target == StatusApproved && current != StatusApproved:
		if err := qledger.Increment(ctx, l.UserID, year, l.Type, l.Days); err != nil {
			s.logger.Error("ledger increment failed", zap.Uint("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
		if isTrackedType(l.Type) {
			delta = l.Days
		}
	case current == StatusApproved && (target == StatusRejected || target == StatusCancelled):
		if err := qledger.Decrement(ctx, l.UserID, year, l.Type, l.Days); err != nil {
			s.logger.Error("ledger decrement failed", zap.Uint("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
		if isTrackedType(l.Type) {
			delta = -l.Days
		}
	}

	now := s.now()
	l.Status = target
	l.ApprovedBy = &approverID
	l.ApprovedAt = nil
	if target == StatusApproved {
		l.ApprovedAt = &now
	}
	l.Comments = nil
	if c := strings.TrimSpace(req.Comments); c != "" {
		l.Comments = &c
	}
	l.UpdatedAt = now

	if err := qtx.UpdateStatus(ctx, l); err != nil {
		s.logger.Error("update leave status persist failed", zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.LeaveEvent{
		EventType:      events.LeaveStatusChanged,
		RequestID:      rid,
		LeaveRequestID: l.ID,
		UserID:         l.UserID,
		ActorID:        approverID,
		LeaveType:      l.Type,
		FromStatus:     current,
		ToStatus:       target,
		Days:           l.Days,
		LedgerDelta:    delta,
		Comments:       strings.TrimSpace(req.Comments),
		OccurredAt:     now,
	}); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.invalidate(ctx, l)
	s.logger.Info("update leave status success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", id),
		zap.String("from_status", current),
		zap.String("to_status", target),
		zap.Float64("ledger_delta", delta),
	)

	return mapToResponse(*l), nil
}

func (s *service) CancelLeaveRequest(ctx context.Context, id, userID uint) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested", zap.Uint("leave_id", id), zap.Uint("user_id", userID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.UserID != userID {
		s.logger.Warn("cancel leave not owner", zap.Uint("leave_id", id), zap.Uint("user_id", userID))
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	now := s.now()
	l.Status = StatusCancelled
	l.UpdatedAt = now

	if err := qtx.UpdateStatus(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.LeaveEvent{
		EventType:      events.LeaveCancelled,
		RequestID:      rid,
		LeaveRequestID: l.ID,
		UserID:         l.UserID,
		ActorID:        userID,
		LeaveType:      l.Type,
		FromStatus:     StatusPending,
		ToStatus:       StatusCancelled,
		Days:           l.Days,
		OccurredAt:     now,
	}); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.invalidate(ctx, l)
	s.logger.Info("cancel leave success", zap.Uint("leave_id", id), zap.Uint("user_id", userID))

	return mapToResponse(*l), nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, event events.LeaveEvent) error {
	if s.outbox == nil {
		return nil
	}

	event.EventID = uuid.NewString()
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave event failed", zap.String("event_type", event.EventType), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            event.EventID,
		RequestID:     event.RequestID,
		AggregateType: "leave_request",
		AggregateID:   strconv.FormatUint(uint64(event.LeaveRequestID), 10),
		EventType:     event.EventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.Uint("leave_id", event.LeaveRequestID),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// invalidate membuang cache kalender dan statistik yang tersentuh request ini.
func (s *service) invalidate(ctx context.Context, l *LeaveRequest) {
	if s.rdb == nil {
		return
	}

	keys := calendarKeysFor(l.UserID, l.FromDate, l.ToDate)
	keys = append(keys, statsKeysFor(l.UserID, l.FromDate.Year())...)
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate leave cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}

func (s *service) RecordLeaveEvent(ctx context.Context, event events.LeaveEvent) error {
	entry := &LeaveAuditLog{
		EventID:        event.EventID,
		LeaveRequestID: event.LeaveRequestID,
		UserID:         event.UserID,
		EventType:      event.EventType,
		ToStatus:       event.ToStatus,
		Days:           event.Days,
		LedgerDelta:    event.LedgerDelta,
		OccurredAt:     event.OccurredAt,
	}
	if event.ActorID != 0 {
		actor := event.ActorID
		entry.ActorID = &actor
	}
	if event.FromStatus != "" {
		from := event.FromStatus
		entry.FromStatus = &from
	}
	if event.Comments != "" {
		c := event.Comments
		entry.Comments = &c
	}

	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, leaveerrors.ErrDuplicateAuditEvent) {
			s.logger.Error("record leave event failed",
				zap.String("event_id", event.EventID),
				zap.Error(err),
			)
		}
		return mapped
	}
	return nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Type:        l.Type,
		FromDate:    l.FromDate.Format(dateLayout),
		ToDate:      l.ToDate.Format(dateLayout),
		Days:        l.Days,
		Reason:      l.Reason,
		Status:      l.Status,
		HalfDay:     l.HalfDay,
		HalfDayType: l.HalfDayType,
		Emergency:   l.Emergency,
		ApprovedBy:  l.ApprovedBy,
		Comments:    l.Comments,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if l.User != nil {
		resp.User = &LeaveUserResponse{Name: l.User.Name, Email: l.User.Email}
	}
	if l.ApprovedUser != nil {
		resp.ApprovedByUser = &LeaveUserResponse{Name: l.ApprovedUser.Name, Email: l.ApprovedUser.Email}
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
