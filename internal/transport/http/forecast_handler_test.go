package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafecast/internal/config"
	apierrors "cafecast/internal/errors"
	"cafecast/internal/files"
	"cafecast/internal/services"
	"cafecast/pkg/contracts/domain"
)

type stubForecastService struct {
	runResult  *services.PipelineResult
	runErr     error
	lastResult *services.PipelineResult
	summary    domain.SalesInsight
	summaryErr error

	ranWith string
}

func (s *stubForecastService) Run(ctx context.Context, path string) (*services.PipelineResult, error) {
	s.ranWith = path
	return s.runResult, s.runErr
}

func (s *stubForecastService) LastResult() *services.PipelineResult { return s.lastResult }

func (s *stubForecastService) Summary(ctx context.Context) (domain.SalesInsight, error) {
	return s.summary, s.summaryErr
}

func newTestHandler(t *testing.T, svc ForecastServiceInterface) *ForecastHandler {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := files.NewManager(config.PathsConfig{
		DataDir:     dir,
		UploadsDir:  filepath.Join(dir, "uploads"),
		SummaryFile: filepath.Join(dir, "summary_insight.json"),
	})
	return NewForecastHandler(svc, manager, logger, apierrors.NewErrorHandler(logger), 1<<20)
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestCreateForecast(t *testing.T) {
	svc := &stubForecastService{
		runResult: &services.PipelineResult{
			GeneratedAt: time.Now().UTC(),
			RowCount:    3,
			Overall: []domain.OverallPoint{
				{DateString: "2024-04-10", PredictedTotal: 12},
			},
		},
	}
	handler := newTestHandler(t, svc)

	body, contentType := multipartUpload(t, "sales.csv", "date,money,menu\n2024-01-01,3.50,Latte\n")
	req := httptest.NewRequest(http.MethodPost, "/forecast", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, svc.ranWith, "sales.csv")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["overall_future_sales"], 1)
}

func TestCreateForecastRejectsExtension(t *testing.T) {
	handler := newTestHandler(t, &stubForecastService{})

	body, contentType := multipartUpload(t, "sales.txt", "whatever")
	req := httptest.NewRequest(http.MethodPost, "/forecast", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestCreateForecastMissingFileField(t *testing.T) {
	handler := newTestHandler(t, &stubForecastService{})

	req := httptest.NewRequest(http.MethodPost, "/forecast", bytes.NewBufferString("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()

	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateForecastNoUsableData(t *testing.T) {
	handler := newTestHandler(t, &stubForecastService{runErr: services.ErrNoData})

	body, contentType := multipartUpload(t, "empty.csv", "date,money,menu\n")
	req := httptest.NewRequest(http.MethodPost, "/forecast", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no forecastable sales data")
}

func TestGetForecastBeforeAnyRun(t *testing.T) {
	handler := newTestHandler(t, &stubForecastService{})

	req := httptest.NewRequest(http.MethodGet, "/forecast", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSummary(t *testing.T) {
	svc := &stubForecastService{summary: domain.SalesInsight{
		BestMenu:  "Latte",
		WorstMenu: "Tea",
		Info:      "CSV contains no hour_of_day column.",
	}}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var insight domain.SalesInsight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.Equal(t, "Latte", insight.BestMenu)
}

func TestGetSummaryNotFound(t *testing.T) {
	handler := newTestHandler(t, &stubForecastService{summaryErr: services.ErrNoSummary})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No summary insight")
}
