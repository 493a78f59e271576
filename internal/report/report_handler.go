package report

import (
	"net/http"

	"go-paylink/internal/shared/apperror"
	"go-paylink/internal/shared/contextutil"
	"go-paylink/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dua call site untuk query entries per (employee, link) memakai default
// page size berbeda; keduanya dipertahankan sebagai kontrak terpisah.
const (
	defaultLinksLimit        = 20
	defaultAdminEntriesLimit = 20
	defaultEmplEntriesLimit  = 10
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) LinksByEmployee(c *gin.Context) {
	var req LinksByEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http links by employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultLinksLimit
	}

	resp, err := h.service.LinksByEmployee(c.Request.Context(), req.EmployeeID, req.Page, req.Limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Total, resp.Page, req.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) AdminEntriesByEmployeeAndLink(c *gin.Context) {
	h.entriesByEmployeeAndLink(c, defaultAdminEntriesLimit)
}

func (h *Handler) EmployeeEntriesByEmployeeAndLink(c *gin.Context) {
	h.entriesByEmployeeAndLink(c, defaultEmplEntriesLimit)
}

func (h *Handler) entriesByEmployeeAndLink(c *gin.Context, defaultLimit int) {
	var req EntriesByEmployeeAndLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http entries by employee and link validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}

	resp, err := h.service.EntriesByEmployeeAndLink(c.Request.Context(), req.EmployeeID, req.LinkID, req.Page, req.Limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Total, resp.Page, req.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) LinkSummary(c *gin.Context) {
	var req LinkSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http link summary validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.LinkSummary(c.Request.Context(), req.LinkID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
