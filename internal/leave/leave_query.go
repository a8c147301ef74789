package leave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/user"

	"go.uber.org/zap"
)

func statsCacheKey(userID uint, year int) string {
	scope := "all"
	if userID != 0 {
		scope = fmt.Sprintf("%d", userID)
	}
	return fmt.Sprintf("leave:stats:%s:%d", scope, year)
}

func statsKeysFor(userID uint, year int) []string {
	return []string{
		statsCacheKey(0, 0),
		statsCacheKey(0, year),
		statsCacheKey(userID, 0),
		statsCacheKey(userID, year),
	}
}

func (s *service) ensureUser(ctx context.Context, userID uint) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return leaveerrors.ErrUserNotFound
	}
	return nil
}

func (s *service) GetLeaveBalance(ctx context.Context, userID uint, year int) (BalanceResponse, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return BalanceResponse{}, err
	}

	bal, err := s.ledger.GetOrCreate(ctx, userID, year)
	if err != nil {
		s.logger.Error("get leave balance failed", zap.Uint("user_id", userID), zap.Int("year", year), zap.Error(err))
		return BalanceResponse{}, err
	}

	return BalanceResponse{
		ID:          bal.ID,
		UserID:      bal.UserID,
		Year:        bal.Year,
		CasualTotal: bal.CasualTotal,
		CasualUsed:  bal.CasualUsed,
		SickTotal:   bal.SickTotal,
		SickUsed:    bal.SickUsed,
		AnnualTotal: bal.AnnualTotal,
		AnnualUsed:  bal.AnnualUsed,
		Remaining:   remainingOf(*bal),
	}, nil
}

func remainingOf(bal LeaveBalance) RemainingBalance {
	casual, _ := bal.Available(TypeCasual)
	sick, _ := bal.Available(TypeSick)
	annual, _ := bal.Available(TypeAnnual)
	return RemainingBalance{Casual: casual, Sick: sick, Annual: annual}
}

func (s *service) GetMyLeaves(ctx context.Context, userID uint, filter ListFilter) ([]LeaveResponse, error) {
	filter.UserID = userID
	return s.GetAllLeaves(ctx, filter)
}

func (s *service) GetAllLeaves(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	filter.Type = normalizeType(filter.Type)

	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetLeaveRequest(ctx context.Context, id uint) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) GetLeaveStats(ctx context.Context, userID uint, year int) (StatsResponse, error) {
	cacheKey := statsCacheKey(userID, year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	if userID != 0 {
		if err := s.ensureUser(ctx, userID); err != nil {
			return StatsResponse{}, err
		}
	}

	counts, err := s.repo.CountByStatus(ctx, userID, year)
	if err != nil {
		s.logger.Error("count leaves by status failed", zap.Error(err))
		return StatsResponse{}, err
	}

	var resp StatsResponse
	for _, c := range counts {
		resp.TotalLeaves += c.Count
		switch c.Status {
		case StatusPending:
			resp.Pending = c.Count
		case StatusApproved:
			resp.Approved = c.Count
		case StatusRejected:
			resp.Rejected = c.Count
		case StatusCancelled:
			resp.Cancelled = c.Count
		}
	}

	if userID != 0 {
		balanceYear := year
		if balanceYear == 0 {
			balanceYear = s.now().Year()
		}
		bal, err := s.ledger.GetOrCreate(ctx, userID, balanceYear)
		if err != nil {
			return StatsResponse{}, err
		}
		remaining := remainingOf(*bal)
		resp.LeaveBalance = &remaining
	}

	if s.rdb != nil {
		if jsonData, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKey, jsonData, s.cacheCfg.StatsTTL)
		}
	}

	return resp, nil
}

func (s *service) GetLeaveCalendar(ctx context.Context, year, month int, userID uint) ([]CalendarEvent, error) {
	if month < 1 || month > 12 {
		return nil, leaveerrors.ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return nil, leaveerrors.ErrInvalidYear
	}

	cacheKey := calendarCacheKey(year, month, userID)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []CalendarEvent
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight, banyak user membuka bulan yang sama
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		start, end := MonthRange(year, month)
		leaves, err := s.repo.FindInRange(ctx, start, end, userID)
		if err != nil {
			return nil, err
		}

		resp := BuildCalendarEvents(leaves, year, month)

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, s.cacheCfg.CalendarTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get leave calendar failed", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, err
	}

	return v.([]CalendarEvent), nil
}

func (s *service) ExportCalendarICS(ctx context.Context, year, month int, userID uint) (string, error) {
	events, err := s.GetLeaveCalendar(ctx, year, month, userID)
	if err != nil {
		return "", err
	}
	return buildCalendarICS(events, year, month, s.now())
}

func (s *service) ExportLeaves(ctx context.Context, filter ListFilter) (*bytes.Buffer, error) {
	rows, err := s.GetAllLeaves(ctx, filter)
	if err != nil {
		return nil, err
	}

	buf, err := buildLeaveWorkbook(rows)
	if err != nil {
		s.logger.Error("build leave workbook failed", zap.Error(err))
		return nil, err
	}
	return buf, nil
}

func (s *service) GetLeaveHistory(ctx context.Context, id uint) ([]HistoryResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	logs, err := s.repo.FindAuditLogs(ctx, id)
	if err != nil {
		s.logger.Error("get leave history failed", zap.Uint("leave_id", id), zap.Error(err))
		return nil, err
	}

	resp := make([]HistoryResponse, len(logs))
	for i, l := range logs {
		resp[i] = HistoryResponse{
			EventID:     l.EventID,
			EventType:   l.EventType,
			ActorID:     l.ActorID,
			FromStatus:  l.FromStatus,
			ToStatus:    l.ToStatus,
			Days:        l.Days,
			LedgerDelta: l.LedgerDelta,
			Comments:    l.Comments,
			OccurredAt:  l.OccurredAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

var typeLabels = []struct{ value, label string }{
	{TypeCasual, "Casual Leave"},
	{TypeSick, "Sick Leave"},
	{TypeAnnual, "Annual Leave"},
	{TypeMaternity, "Maternity Leave"},
	{TypePaternity, "Paternity Leave"},
	{TypeUnpaid, "Unpaid Leave"},
}

var statusLabels = []struct{ value, label string }{
	{StatusPending, "Pending"},
	{StatusApproved, "Approved"},
	{StatusRejected, "Rejected"},
	{StatusCancelled, "Cancelled"},
}

func (s *service) GetLeaveTypes() []OptionResponse {
	resp := make([]OptionResponse, len(typeLabels))
	for i, t := range typeLabels {
		resp[i] = OptionResponse{Value: t.value, Label: t.label, Color: typeColors[t.value]}
	}
	return resp
}

func (s *service) GetLeaveStatuses() []OptionResponse {
	resp := make([]OptionResponse, len(statusLabels))
	for i, st := range statusLabels {
		resp[i] = OptionResponse{Value: st.value, Label: st.label, Color: statusColors[st.value]}
	}
	return resp
}

func (s *service) GetUsersForLeaveManagement(ctx context.Context) ([]user.UserResponse, error) {
	return s.users.ListActive(ctx, "")
}
