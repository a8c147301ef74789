package leave

import (
	"fmt"
	"net/http"
	"strconv"

	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/middleware"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

func listFilterFromQuery(c *gin.Context) ListFilter {
	f := ListFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Year:   queryInt(c, "year"),
	}
	if uid, err := strconv.ParseUint(c.Query("userId"), 10, 64); err == nil {
		f.UserID = uint(uid)
	}
	return f
}

func paginate[T any](c *gin.Context, items []T) ([]T, response.PaginationMeta) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], response.NewPaginationMeta(int64(len(items)), page, limit)
}

func (h *Handler) GetTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.GetLeaveTypes(), nil)
}

func (h *Handler) GetStatuses(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.GetLeaveStatuses(), nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.GetLeaveBalance(c.Request.Context(), userID, queryInt(c, "year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}
	h.logger.Debug("http apply leave", zap.Uint("user_id", userID))

	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply leave validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.ApplyLeave(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMyLeaves(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.GetMyLeaves(c.Request.Context(), userID, listFilterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pageItems, meta := paginate(c, resp)
	response.Success(c, http.StatusOK, pageItems, &meta)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}
	if actorID, ok := middleware.ActorID(c); !ok || actorID != userID {
		h.writeServiceError(c, leaveerrors.ErrNotOwner)
		return
	}

	resp, err := h.service.CancelLeaveRequest(c.Request.Context(), id, userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.GetLeaveStats(c.Request.Context(), userID, queryInt(c, "year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) calendarArgs(c *gin.Context) (int, int, uint, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, leaveerrors.ErrInvalidYear)
		return 0, 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.writeServiceError(c, leaveerrors.ErrInvalidMonth)
		return 0, 0, 0, false
	}
	var userID uint
	if v := c.Query("userId"); v != "" {
		uid, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidUserID)
			return 0, 0, 0, false
		}
		userID = uint(uid)
	}
	return year, month, userID, true
}

func (h *Handler) GetCalendar(c *gin.Context) {
	year, month, userID, ok := h.calendarArgs(c)
	if !ok {
		return
	}

	resp, err := h.service.GetLeaveCalendar(c.Request.Context(), year, month, userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCalendarICS(c *gin.Context) {
	year, month, userID, ok := h.calendarArgs(c)
	if !ok {
		return
	}

	feed, err := h.service.ExportCalendarICS(c.Request.Context(), year, month, userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("leave-calendar-%04d-%02d.ics", year, month)
	response.Attachment(c, filename, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *Handler) AdminGetAll(c *gin.Context) {
	resp, err := h.service.GetAllLeaves(c.Request.Context(), listFilterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pageItems, meta := paginate(c, resp)
	response.Success(c, http.StatusOK, pageItems, &meta)
}

func (h *Handler) AdminStats(c *gin.Context) {
	resp, err := h.service.GetLeaveStats(c.Request.Context(), 0, queryInt(c, "year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminUsers(c *gin.Context) {
	resp, err := h.service.GetUsersForLeaveManagement(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminExport(c *gin.Context) {
	buf, err := h.service.ExportLeaves(c.Request.Context(), listFilterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, "leave-requests.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) AdminGetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	resp, err := h.service.GetLeaveRequest(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminHistory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	resp, err := h.service.GetLeaveHistory(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}
	approverID, ok := middleware.ActorID(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave status validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.UpdateLeaveStatus(c.Request.Context(), id, approverID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
