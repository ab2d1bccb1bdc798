package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cluckaudit/chicken-math-api/internal/domain/models"
)

// Composer abstracts report generation for the HTTP layer.
type Composer interface {
	Generate(ctx context.Context, report models.Report, outputPath string) (string, error)
}

// ReportHandler handles report generation HTTP requests.
type ReportHandler struct {
	composer Composer
	tempDir  string
	logger   *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter. Generated files are
// staged under tempDir and removed once their bytes have been served.
func NewReportHandler(composer Composer, tempDir string, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{composer: composer, tempDir: tempDir, logger: logger}
}

// Index describes the service and its routes.
func (h *ReportHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Chicken Math PDF Generator API",
		"version": "1.0",
		"endpoints": gin.H{
			"/generate-pdf":        "POST - Generate PDF report",
			"/generate-pdf-base64": "POST - Generate PDF report as base64 JSON",
			"/health":              "GET - Health check",
		},
	})
}

// Health reports liveness.
func (h *ReportHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "chicken-math-pdf-api"})
}

// GeneratePDF renders a report and streams it back as a downloadable
// attachment, deleting the staged file after the response is written.
func (h *ReportHandler) GeneratePDF(c *gin.Context) {
	report, ok := h.bindReport(c)
	if !ok {
		return
	}

	path, err := h.generate(c.Request.Context(), report)
	if err != nil {
		h.logger.Error("failed generating report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate PDF",
			"message": err.Error(),
		})
		return
	}
	defer h.removeTempFile(path)

	c.FileAttachment(path, report.DownloadFilename())
}

// GeneratePDFBase64 renders a report and returns it base64-encoded in a JSON
// envelope, deleting the staged file immediately after reading it.
func (h *ReportHandler) GeneratePDFBase64(c *gin.Context) {
	report, ok := h.bindReport(c)
	if !ok {
		return
	}

	path, err := h.generate(c.Request.Context(), report)
	if err != nil {
		h.logger.Error("failed generating report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate PDF",
			"message": err.Error(),
		})
		return
	}

	raw, err := os.ReadFile(path)
	h.removeTempFile(path)
	if err != nil {
		h.logger.Error("failed reading generated report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate PDF",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"pdf_base64": base64.StdEncoding.EncodeToString(raw),
		"filename":   report.DownloadFilename(),
	})
}

// bindReport decodes and validates the request body. On failure it writes the
// error response and reports false.
func (h *ReportHandler) bindReport(c *gin.Context) (models.Report, bool) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return models.Report{}, false
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		h.logger.Warn("report payload missing fields", zap.Strings("missing", missing))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"missing": missing,
		})
		return models.Report{}, false
	}

	return req.ToReport(), true
}

func (h *ReportHandler) generate(ctx context.Context, report models.Report) (string, error) {
	path := filepath.Join(h.tempDir, fmt.Sprintf("chicken_math_%s.pdf", uuid.NewString()))
	return h.composer.Generate(ctx, report, path)
}

// removeTempFile deletes a staged report. Failures are logged, never surfaced;
// the sweeper reaps anything left behind.
func (h *ReportHandler) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Error("failed removing temp report", zap.String("path", path), zap.Error(err))
	}
}
