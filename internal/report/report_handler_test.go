package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-paylink/internal/link"
	linkerrors "go-paylink/internal/link/errors"
	"go-paylink/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	LinksByEmployeeFn          func(ctx context.Context, employeeID string, page, limit int) (report.LinksByEmployeeResponse, error)
	EntriesByEmployeeAndLinkFn func(ctx context.Context, employeeID, linkID string, page, limit int) (report.EntriesByEmployeeAndLinkResponse, error)
	LinkSummaryFn              func(ctx context.Context, linkID string) (report.LinkSummaryResponse, error)
}

func (f *fakeReportService) LinksByEmployee(ctx context.Context, employeeID string, page, limit int) (report.LinksByEmployeeResponse, error) {
	return f.LinksByEmployeeFn(ctx, employeeID, page, limit)
}
func (f *fakeReportService) EntriesByEmployeeAndLink(ctx context.Context, employeeID, linkID string, page, limit int) (report.EntriesByEmployeeAndLinkResponse, error) {
	return f.EntriesByEmployeeAndLinkFn(ctx, employeeID, linkID, page, limit)
}
func (f *fakeReportService) LinkSummary(ctx context.Context, linkID string) (report.LinkSummaryResponse, error) {
	return f.LinkSummaryFn(ctx, linkID)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportHandler_LinksByEmployee(t *testing.T) {
	t.Run("defaults applied when page and limit omitted", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeReportService{
			LinksByEmployeeFn: func(ctx context.Context, id string, page, limit int) (report.LinksByEmployeeResponse, error) {
				assert.Equal(t, employeeID, id)
				assert.Equal(t, 1, page)
				assert.Equal(t, 20, limit)
				return report.LinksByEmployeeResponse{Links: []link.LinkResponse{}, Page: 1}, nil
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/employees/links", handler.LinksByEmployee)

		w := postJSON(router, "/admin/employees/links", `{"employeeId":"`+employeeID+`"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit page and limit forwarded", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeReportService{
			LinksByEmployeeFn: func(ctx context.Context, id string, page, limit int) (report.LinksByEmployeeResponse, error) {
				assert.Equal(t, 3, page)
				assert.Equal(t, 5, limit)
				return report.LinksByEmployeeResponse{Links: []link.LinkResponse{}, Page: 3}, nil
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/employees/links", handler.LinksByEmployee)

		w := postJSON(router, "/admin/employees/links",
			`{"employeeId":"`+employeeID+`","page":3,"limit":5}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing employeeId rejected", func(t *testing.T) {
		svc := &fakeReportService{}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/employees/links", handler.LinksByEmployee)

		w := postJSON(router, "/admin/employees/links", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_EntriesByEmployeeAndLink(t *testing.T) {
	employeeID := uuid.New().String()
	linkID := uuid.New().String()
	body := `{"employeeId":"` + employeeID + `","linkId":"` + linkID + `"}`

	t.Run("admin route defaults to 20 per page", func(t *testing.T) {
		svc := &fakeReportService{
			EntriesByEmployeeAndLinkFn: func(ctx context.Context, eid, lid string, page, limit int) (report.EntriesByEmployeeAndLinkResponse, error) {
				assert.Equal(t, 20, limit)
				return report.EntriesByEmployeeAndLinkResponse{}, nil
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/employees/links/entries", handler.AdminEntriesByEmployeeAndLink)

		w := postJSON(router, "/admin/employees/links/entries", body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee route defaults to 10 per page", func(t *testing.T) {
		svc := &fakeReportService{
			EntriesByEmployeeAndLinkFn: func(ctx context.Context, eid, lid string, page, limit int) (report.EntriesByEmployeeAndLinkResponse, error) {
				assert.Equal(t, 10, limit)
				return report.EntriesByEmployeeAndLinkResponse{}, nil
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/employee/links/entries", handler.EmployeeEntriesByEmployeeAndLink)

		w := postJSON(router, "/employee/links/entries", body)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestReportHandler_LinkSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		linkID := uuid.New().String()

		svc := &fakeReportService{
			LinkSummaryFn: func(ctx context.Context, id string) (report.LinkSummaryResponse, error) {
				assert.Equal(t, linkID, id)
				return report.LinkSummaryResponse{Title: "August Collection", GrandTotal: 475}, nil
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/links/summary", handler.LinkSummary)

		w := postJSON(router, "/admin/links/summary", `{"linkId":"`+linkID+`"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "August Collection")
	})

	t.Run("unknown link surfaces 404", func(t *testing.T) {
		svc := &fakeReportService{
			LinkSummaryFn: func(ctx context.Context, id string) (report.LinkSummaryResponse, error) {
				return report.LinkSummaryResponse{}, linkerrors.ErrLinkNotFound
			},
		}

		router := setupRouter()
		handler := report.NewHandler(svc)
		router.POST("/admin/links/summary", handler.LinkSummary)

		w := postJSON(router, "/admin/links/summary", `{"linkId":"`+uuid.New().String()+`"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
