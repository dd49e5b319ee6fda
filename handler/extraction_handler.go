package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/service"
	"github.com/Aashish23092/tax-document-extraction/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentExtractor runs the extraction pipeline over one client's documents.
type DocumentExtractor interface {
	ExtractDocuments(ctx context.Context, client string, docs []dto.SourceDocument) (*dto.ExtractionResult, error)
}

// RunStore persists extraction runs.
type RunStore interface {
	SaveRun(ctx context.Context, result *dto.ExtractionResult) (string, error)
	GetRun(ctx context.Context, runID string) (*store.Run, error)
	ListTrades(ctx context.Context, runID string) ([]dto.TradeRecord, error)
}

const (
	tradeViewRaw       = "raw"
	tradeViewTax       = "tax"
	tradeViewAnalytics = "analytics"
)

type ExtractionHandler struct {
	extractor   DocumentExtractor
	runs        RunStore
	maxFileSize int64
}

func NewExtractionHandler(extractor DocumentExtractor, runs RunStore, maxFileSize int64) *ExtractionHandler {
	return &ExtractionHandler{
		extractor:   extractor,
		runs:        runs,
		maxFileSize: maxFileSize,
	}
}

// Extract handles POST /api/v1/extract
func (h *ExtractionHandler) Extract(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	request := &dto.ExtractionRequest{
		Files:    form.File["files[]"],
		Client:   strings.TrimSpace(c.PostForm("client")),
		Password: c.PostForm("password"),
	}

	if err := request.Validate(h.maxFileSize); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dto.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.sendError(c, status, err.Error(), err)
		return
	}

	zap.L().Info("received extraction request",
		zap.String("client", request.Client),
		zap.Int("files", len(request.Files)),
	)

	docs := make([]dto.SourceDocument, 0, len(request.Files))
	for _, fileHeader := range request.Files {
		data, err := readUpload(fileHeader)
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
			return
		}
		docs = append(docs, service.NewSourceDocument(fileHeader.Filename, data, request.Password))
	}

	result, err := h.extractor.ExtractDocuments(c.Request.Context(), request.Client, docs)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract documents", err)
		return
	}

	runID, err := h.runs.SaveRun(c.Request.Context(), result)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to save extraction run", err)
		return
	}

	zap.L().Info("extraction request completed",
		zap.String("client", request.Client),
		zap.String("run_id", runID),
	)
	c.JSON(http.StatusOK, dto.ExtractionResponse{
		RunID:       runID,
		Result:      result,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetRun handles GET /api/v1/runs/:id
func (h *ExtractionHandler) GetRun(c *gin.Context) {
	run, err := h.runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExtractionResponse{
		RunID:       run.ID,
		Result:      run.Result,
		ProcessedAt: run.CreatedAt.Format(time.RFC3339),
	})
}

// ListTrades handles GET /api/v1/runs/:id/trades. The view query parameter selects raw trade
// records (default), tax export rows or analytics rows; tax_year defaults to the first year
// detected among the run's documents.
func (h *ExtractionHandler) ListTrades(c *gin.Context) {
	runID := c.Param("id")
	view := c.DefaultQuery("view", tradeViewRaw)
	if view != tradeViewRaw && view != tradeViewTax && view != tradeViewAnalytics {
		h.sendError(c, http.StatusBadRequest, fmt.Sprintf("unknown view %q", view), nil)
		return
	}

	trades, err := h.runs.ListTrades(c.Request.Context(), runID)
	if err != nil {
		h.sendStoreError(c, err)
		return
	}

	if view == tradeViewRaw {
		c.JSON(http.StatusOK, dto.TradesResponse{RunID: runID, Trades: trades})
		return
	}

	run, err := h.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		h.sendStoreError(c, err)
		return
	}

	taxYear, err := resolveTaxYear(c.Query("tax_year"), run.Result)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid tax_year", err)
		return
	}

	rows := make([]map[string]any, 0, len(trades))
	for _, trade := range trades {
		if view == tradeViewTax {
			rows = append(rows, trade.TaxRow(run.Client, taxYear))
		} else {
			rows = append(rows, trade.AnalyticsRow(run.Client, taxYear))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":   runID,
		"view":     view,
		"tax_year": taxYear,
		"rows":     rows,
	})
}

// CompareRuns handles GET /api/v1/runs/:id/compare?prior=<runID>
func (h *ExtractionHandler) CompareRuns(c *gin.Context) {
	runID := c.Param("id")
	priorID := strings.TrimSpace(c.Query("prior"))
	if priorID == "" {
		h.sendError(c, http.StatusBadRequest, "prior run id is required", nil)
		return
	}

	current, err := h.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		h.sendStoreError(c, err)
		return
	}
	prior, err := h.runs.GetRun(c.Request.Context(), priorID)
	if err != nil {
		h.sendStoreError(c, err)
		return
	}

	metrics := service.CompareResults(current.Result, prior.Result)
	flagged := service.CountLargeChanges(metrics)
	if current.Client != prior.Client {
		zap.L().Warn("comparing runs of different clients",
			zap.String("run_id", runID),
			zap.String("prior_run_id", priorID),
		)
	}

	c.JSON(http.StatusOK, dto.ComparisonResponse{
		RunID:      current.ID,
		PriorRunID: prior.ID,
		Client:     current.Client,
		Metrics:    metrics,
		Flagged:    flagged,
	})
}

// Health handles GET /health
func (h *ExtractionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Tax Document Extraction",
	})
}

func resolveTaxYear(param string, result *dto.ExtractionResult) (int, error) {
	if param != "" {
		year, err := strconv.Atoi(param)
		if err != nil {
			return 0, fmt.Errorf("tax_year %q is not a number: %w", param, err)
		}
		return year, nil
	}
	if result != nil {
		for _, doc := range result.Documents {
			if doc.DetectedYear != nil {
				return *doc.DetectedYear, nil
			}
		}
	}
	return time.Now().Year() - 1, nil
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileHeader.Filename, err)
	}
	return data, nil
}

func (h *ExtractionHandler) sendStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrRunNotFound) {
		h.sendError(c, http.StatusNotFound, "Extraction run not found", err)
		return
	}
	h.sendError(c, http.StatusInternalServerError, "Failed to load extraction run", err)
}

// sendError sends a structured error response
func (h *ExtractionHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		zap.L().Warn(message, zap.Int("status", statusCode), zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

// RegisterRoutes mounts the extraction endpoints on router.
func (h *ExtractionHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/extract", h.Extract)

		runs := api.Group("/runs")
		{
			runs.GET("/:id", h.GetRun)
			runs.GET("/:id/trades", h.ListTrades)
			runs.GET("/:id/compare", h.CompareRuns)
		}
	}
}
