package payslip

import (
	"net/http"
	"strconv"

	"github.com/Arun-hash30/Attendence-helix/internal/middleware"
	paysliperrors "github.com/Arun-hash30/Attendence-helix/internal/payslip/errors"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rbacService middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, rbac: rbacService, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payslip request failed",
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

func (h *Handler) CreateSalaryStructure(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidUserID)
		return
	}

	var req SalaryStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.CreateSalaryStructure(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetSalaryStructure(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.GetLatestSalaryStructure(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayslipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.service.GeneratePayslips(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// tidak ada yang dibuat: kemungkinan semua bulan sudah punya payslip
	if result.Success == 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"No payslips were generated. They may already exist for the selected months.", result)
		return
	}
	response.Success(c, http.StatusCreated, result, nil)
}

func filterFromQuery(c *gin.Context) ListFilter {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	return ListFilter{Month: month, Year: year, Status: c.Query("status")}
}

func (h *Handler) AdminGetAll(c *gin.Context) {
	resp, err := h.service.GetAllPayslips(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	total := int64(len(resp))
	start := (page - 1) * limit
	end := start + limit
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) AdminUsers(c *gin.Context) {
	resp, err := h.service.GetUsersForPayslip(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminStats(c *gin.Context) {
	resp, err := h.service.GetPayslipStats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminExport(c *gin.Context) {
	buf, err := h.service.ExportPayslips(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, "payslips.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) GetYears(c *gin.Context) {
	resp, err := h.service.GetAvailableYears(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidUserID)
		return
	}

	resp, err := h.service.GetPayslipsByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidPayslipID)
		return
	}

	resp, err := h.service.GetPayslipByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// pemilik payslip boleh lihat, selain itu butuh payslip:manage
	actorID, _ := middleware.ActorID(c)
	if actorID != resp.UserID && !middleware.HasPermission(c, h.rbac, "payslip", "manage") {
		h.writeServiceError(c, paysliperrors.ErrNotOwner)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidPayslipID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.UpdatePayslipStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		h.writeServiceError(c, paysliperrors.ErrInvalidPayslipID)
		return
	}

	if err := h.service.DeletePayslip(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
