package handlers

import (
	"net/http"

	"poolworks/internal/adapter/report"
	"poolworks/internal/usecase"
	"poolworks/pkg"

	"github.com/gin-gonic/gin"
)

const reportFilename = "construction_estimate.pdf"

// ReportHandler renders estimates as downloadable PDF documents.
type ReportHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewReportHandler(uc usecase.IEstimateUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetEstimateReport renders the estimate as a PDF and returns it inline.
func (h *ReportHandler) GetEstimateReport(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, err := report.RenderEstimatePDF(estimate)
	if err != nil {
		appErr := pkg.NewDomainError("REPORT_RENDER_FAILED", "Failed to generate PDF", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
