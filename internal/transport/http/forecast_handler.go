package http

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "cafecast/internal/errors"
	"cafecast/internal/files"
	"cafecast/internal/services"
	"cafecast/internal/validation"
)

// ForecastHandler serves the forecasting endpoints.
type ForecastHandler struct {
	service        ForecastServiceInterface
	files          *files.Manager
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	maxUploadBytes int64
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(service ForecastServiceInterface, fileManager *files.Manager, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUploadBytes int64) *ForecastHandler {
	return &ForecastHandler{
		service:        service,
		files:          fileManager,
		logger:         logger.With(slog.String("component", "forecast_handler")),
		errorHandler:   errorHandler,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the forecast routes.
func (h *ForecastHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/forecast", h.CreateForecast)
	r.Get("/forecast", h.GetForecast)
	r.Get("/summary", h.GetSummary)
	return r
}

// CreateForecast accepts a CSV or Excel upload in the "file" multipart
// field, runs the full pipeline on it, and responds with the overall
// forecast.
func (h *ForecastHandler) CreateForecast(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			h.errorHandler.HandleError(w, r, apierrors.NewProblemDetails(
				http.StatusRequestEntityTooLarge,
				apierrors.TypePayloadTooLarge,
				"Payload Too Large",
				fmt.Sprintf("Upload exceeds the %d byte limit", tooLarge.Limit),
				r.URL.Path,
			))
			return
		}
		h.errorHandler.HandleError(w, r,
			apierrors.ValidationProblem("file", "A sales file is required in the 'file' field", r.URL.Path))
		return
	}
	defer file.Close()

	if err := validation.ValidateUploadName(header.Filename); err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.ValidationProblem("file", err.Error(), r.URL.Path))
		return
	}

	path, err := h.files.SaveUpload(file, header.Filename)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "upload accepted",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size))

	result, err := h.service.Run(r.Context(), path)
	if err != nil {
		if stderrors.Is(err, services.ErrNoData) {
			h.errorHandler.HandleError(w, r,
				apierrors.ValidationProblem("file", "The upload contains no forecastable sales data", r.URL.Path))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// GetForecast returns the most recent forecast produced since startup.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	result := h.service.LastResult()
	if result == nil {
		h.errorHandler.HandleError(w, r,
			apierrors.NotFoundProblem("No forecast has been generated yet", r.URL.Path))
		return
	}
	render.JSON(w, r, result)
}

// GetSummary returns the persisted summary insight document.
func (h *ForecastHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	insight, err := h.service.Summary(r.Context())
	if err != nil {
		if stderrors.Is(err, services.ErrNoSummary) {
			h.errorHandler.HandleError(w, r,
				apierrors.NotFoundProblem("No summary insight has been generated yet", r.URL.Path))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, insight)
}
