package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
	"github.com/wazeer/wazeer_backend/internal/middleware"
)

// reportingHandler handles report payloads and their document exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	exportService    portssvc.ReportExportSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, es portssvc.ReportExportSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, exportService: es}
}

// registerReportingRoutes registers report and export routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, exportService portssvc.ReportExportSvcFacade) {
	h := newReportingHandler(reportingService, exportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/purchases", h.purchasesReport)
		reports.GET("/purchases/export", h.exportPurchases)
		reports.GET("/suppliers/:id", h.supplierMonthlyReport)
		reports.GET("/suppliers/:id/export", h.exportSupplierMonthly)
		reports.GET("/expenses", h.expensesReport)
		reports.GET("/expenses/export", h.exportExpenses)
	}
}

// parseFormat validates the format query parameter, defaulting to pdf.
func parseFormat(c *gin.Context) (portssvc.ExportFormat, bool) {
	format := portssvc.ExportFormat(c.DefaultQuery("format", string(portssvc.FormatPDF)))
	if format != portssvc.FormatPDF && format != portssvc.FormatXLSX {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported format %q, use pdf or xlsx", format)})
		return "", false
	}
	return format, true
}

// sendArtifact writes a rendered document as an attachment download.
func sendArtifact(c *gin.Context, artifact *portssvc.ExportArtifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func purchaseFilterFromParams(params dto.PurchaseReportParams) domain.ReportFilter {
	return domain.ReportFilter{
		Period:     dto.ToPeriod(params.Period, params.From, params.To),
		SupplierID: params.SupplierID,
		MaterialID: params.MaterialID,
	}
}

// purchasesReport godoc
// @Summary Purchases report
// @Description Aggregates purchases by period, supplier and material filters
// @Tags reports
// @Produce json
// @Param period query string false "all|today|month|custom" default(all)
// @Param from query string false "Start date (YYYY-MM-DD, custom period)"
// @Param to query string false "End date (YYYY-MM-DD, custom period)"
// @Param supplier query string false "Supplier ID filter"
// @Param material query string false "Material ID filter"
// @Success 200 {object} dto.PurchaseReportResponse
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/purchases [get]
func (h *reportingHandler) purchasesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PurchaseReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.PurchasesReport(c.Request.Context(), purchaseFilterFromParams(params))
	if err != nil {
		logger.Error("Failed to build purchases report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseReportResponse(report))
}

// exportPurchases godoc
// @Summary Export purchases report
// @Description Renders the purchases report as a PDF or XLSX download
// @Tags reports
// @Produce application/pdf
// @Param period query string false "all|today|month|custom" default(all)
// @Param from query string false "Start date (YYYY-MM-DD, custom period)"
// @Param to query string false "End date (YYYY-MM-DD, custom period)"
// @Param supplier query string false "Supplier ID filter"
// @Param material query string false "Material ID filter"
// @Param format query string false "pdf|xlsx" default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Unsupported format"
// @Security BearerAuth
// @Router /reports/purchases/export [get]
func (h *reportingHandler) exportPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PurchaseReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.ExportPurchases(c.Request.Context(), purchaseFilterFromParams(params), format)
	if err != nil {
		logger.Error("Failed to export purchases report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	sendArtifact(c, artifact)
}

// supplierMonthlyReport godoc
// @Summary Supplier monthly report
// @Description Tables one supplier's per-material breakdown for an exact month
// @Tags reports
// @Produce json
// @Param id path string true "Supplier ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.SupplierMonthlyReportResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /reports/suppliers/{id} [get]
func (h *reportingHandler) supplierMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	var params dto.SupplierReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.SupplierMonthlyReport(c.Request.Context(), supplierID, params.Year, time.Month(params.Month))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to build supplier monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierMonthlyReportResponse(report))
}

// exportSupplierMonthly godoc
// @Summary Export supplier monthly report
// @Description Renders one supplier's monthly breakdown as a PDF or XLSX download
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Supplier ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param format query string false "pdf|xlsx" default(pdf)
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /reports/suppliers/{id}/export [get]
func (h *reportingHandler) exportSupplierMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	var params dto.SupplierReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.ExportSupplierMonthly(c.Request.Context(), supplierID, params.Year, time.Month(params.Month), format)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to export supplier monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	sendArtifact(c, artifact)
}

// expensesReport godoc
// @Summary Expenses report
// @Description Aggregates expenses by period and optional tag
// @Tags reports
// @Produce json
// @Param period query string false "all|today|month|custom" default(all)
// @Param from query string false "Start date (YYYY-MM-DD, custom period)"
// @Param to query string false "End date (YYYY-MM-DD, custom period)"
// @Param tag query string false "Tag ID filter"
// @Success 200 {object} dto.ExpenseReportResponse
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/expenses [get]
func (h *reportingHandler) expensesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ExpenseReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	period := dto.ToPeriod(params.Period, params.From, params.To)
	report, err := h.reportingService.ExpensesReport(c.Request.Context(), period, params.TagID)
	if err != nil {
		logger.Error("Failed to build expenses report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseReportResponse(report))
}

// exportExpenses godoc
// @Summary Export expenses report
// @Description Renders the expenses report as a PDF or XLSX download
// @Tags reports
// @Produce application/pdf
// @Param period query string false "all|today|month|custom" default(all)
// @Param from query string false "Start date (YYYY-MM-DD, custom period)"
// @Param to query string false "End date (YYYY-MM-DD, custom period)"
// @Param tag query string false "Tag ID filter"
// @Param format query string false "pdf|xlsx" default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Unsupported format"
// @Security BearerAuth
// @Router /reports/expenses/export [get]
func (h *reportingHandler) exportExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ExpenseReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	period := dto.ToPeriod(params.Period, params.From, params.To)
	artifact, err := h.exportService.ExportExpenses(c.Request.Context(), period, params.TagID, format)
	if err != nil {
		logger.Error("Failed to export expenses report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	sendArtifact(c, artifact)
}
