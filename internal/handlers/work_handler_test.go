package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock work service ---

type mockWorkService struct {
	addWorkFn     func(input services.AddWorkInput) (models.WorkLog, error)
	listWorkFn    func(page pagination.PageRequest) pagination.PageResponse[models.WorkLog]
	weekBucketsFn func(monthKey string) ([]services.WeekBucket, error)
	deleteWorkFn  func(id string) error
}

func (m *mockWorkService) AddWork(input services.AddWorkInput) (models.WorkLog, error) {
	if m.addWorkFn != nil {
		return m.addWorkFn(input)
	}
	return models.WorkLog{}, nil
}

func (m *mockWorkService) ListWork(page pagination.PageRequest) pagination.PageResponse[models.WorkLog] {
	if m.listWorkFn != nil {
		return m.listWorkFn(page)
	}
	return pagination.NewPageResponse([]models.WorkLog{}, 1, 20, 0)
}

func (m *mockWorkService) WeekBuckets(monthKey string) ([]services.WeekBucket, error) {
	if m.weekBucketsFn != nil {
		return m.weekBucketsFn(monthKey)
	}
	return nil, nil
}

func (m *mockWorkService) DeleteWork(id string) error {
	if m.deleteWorkFn != nil {
		return m.deleteWorkFn(id)
	}
	return nil
}

// verify interface compliance
var _ services.WorkServicer = (*mockWorkService)(nil)

func setupWorkRouter(handler *WorkHandler) *gin.Engine {
	r := gin.New()
	r.POST("/work", handler.AddWork)
	r.GET("/work", handler.GetWork)
	r.GET("/work/weeks", handler.GetWeekBuckets)
	r.DELETE("/work/:id", handler.DeleteWork)
	return r
}

func TestWorkHandler_AddWork(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockWorkService{
			addWorkFn: func(input services.AddWorkInput) (models.WorkLog, error) {
				return models.WorkLog{
					Base:    models.Base{ID: "w1"},
					Mode:    input.Mode,
					DateISO: input.Date,
					Amount:  input.Amount,
				}, nil
			},
		}
		r := setupWorkRouter(NewWorkHandler(svc))

		rec := doRequest(r, "POST", "/work",
			`{"mode":"weekly","date":"2026-01-05","end":"2026-01-11","amount":500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		work := result["work"].(map[string]interface{})
		if work["id"] != "w1" {
			t.Errorf("expected id w1, got %v", work["id"])
		}
	})

	t.Run("returns 400 on invalid mode", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "POST", "/work",
			`{"mode":"daily","date":"2026-01-05","amount":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "POST", "/work",
			`{"mode":"weekly","date":"Jan 5","amount":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("propagates service errors", func(t *testing.T) {
		svc := &mockWorkService{
			addWorkFn: func(input services.AddWorkInput) (models.WorkLog, error) {
				return models.WorkLog{}, apperrors.ErrInvalidInput
			},
		}
		r := setupWorkRouter(NewWorkHandler(svc))

		rec := doRequest(r, "POST", "/work",
			`{"mode":"weekly","date":"2026-01-05","amount":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestWorkHandler_GetWork(t *testing.T) {
	t.Run("returns paginated entries", func(t *testing.T) {
		svc := &mockWorkService{
			listWorkFn: func(page pagination.PageRequest) pagination.PageResponse[models.WorkLog] {
				return pagination.NewPageResponse([]models.WorkLog{
					{Base: models.Base{ID: "w1"}, Mode: models.PeriodModeWeekly, Amount: decimal.NewFromInt(500)},
				}, 1, 20, 1)
			},
		}
		r := setupWorkRouter(NewWorkHandler(svc))

		rec := doRequest(r, "GET", "/work", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 entry, got %d", len(data))
		}
	})

	t.Run("returns 400 on bad page size", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "GET", "/work?page_size=1000", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestWorkHandler_GetWeekBuckets(t *testing.T) {
	t.Run("returns buckets", func(t *testing.T) {
		svc := &mockWorkService{
			weekBucketsFn: func(monthKey string) ([]services.WeekBucket, error) {
				if monthKey != "2026-01" {
					t.Errorf("expected month 2026-01, got %s", monthKey)
				}
				return []services.WeekBucket{
					{WeekStart: "2025-12-29", Income: decimal.Zero},
					{WeekStart: "2026-01-05", Income: decimal.NewFromInt(500), Entries: 2},
				}, nil
			},
		}
		r := setupWorkRouter(NewWorkHandler(svc))

		rec := doRequest(r, "GET", "/work/weeks?month=2026-01", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		weeks := result["weeks"].([]interface{})
		if len(weeks) != 2 {
			t.Errorf("expected 2 buckets, got %d", len(weeks))
		}
	})

	t.Run("returns 400 without month", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "GET", "/work/weeks", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "GET", "/work/weeks?month=2026-13", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestWorkHandler_DeleteWork(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupWorkRouter(NewWorkHandler(&mockWorkService{}))

		rec := doRequest(r, "DELETE", "/work/w1", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockWorkService{
			deleteWorkFn: func(id string) error { return apperrors.ErrWorkLogNotFound },
		}
		r := setupWorkRouter(NewWorkHandler(svc))

		rec := doRequest(r, "DELETE", "/work/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "WORK_LOG_NOT_FOUND")
	})
}
