package entry

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"go-paylink/internal/shared/apperror"
	"go-paylink/internal/shared/contextutil"
	"go-paylink/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Submission image dibatasi 5 MB; QR payee biasanya jauh di bawah itu
const maxQRImageSize = 5 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("entry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	logger.Warn("entry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit menerima multipart form: name, amount, employeeId, dan salah satu
// dari file qrImage atau field upiId.
func (h *Handler) Submit(c *gin.Context) {
	linkID := c.Param("linkId")

	amountStr := strings.TrimSpace(c.PostForm("amount"))
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil && amountStr != "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "amount must be numeric")
		return
	}

	req := SubmitEntryRequest{
		LinkID:     linkID,
		EmployeeID: c.PostForm("employeeId"),
		Name:       c.PostForm("name"),
		Amount:     amount,
		UpiID:      c.PostForm("upiId"),
	}

	if file, err := c.FormFile("qrImage"); err == nil {
		if file.Size > maxQRImageSize {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "qrImage is too large")
			return
		}

		f, err := file.Open()
		if err != nil {
			h.logger.Error("http submit entry open upload failed", zap.Error(err))
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "qrImage could not be read")
			return
		}
		defer f.Close()

		buf, err := io.ReadAll(io.LimitReader(f, maxQRImageSize))
		if err != nil {
			h.logger.Error("http submit entry read upload failed", zap.Error(err))
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "qrImage could not be read")
			return
		}
		req.Image = buf
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByLink(c *gin.Context) {
	var req EntriesByLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http get entries by link validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetByLink(c.Request.Context(), req.LinkID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	var req EntriesByEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http get entries by employee validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
