package handlers

import (
	"time"

	"finlytics/internal/services/report"
	"finlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	reports *report.Service
}

func NewReportHandler(reports *report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// DailySummary returns the aggregated transaction summary for one date.
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return response.BadRequest(c, "date must be YYYY-MM-DD")
	}

	summary, err := h.reports.DailySummary(c.Context(), date)
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	if summary.TotalTransactions == 0 {
		return response.NotFound(c, "no data found for the specified date")
	}
	return c.JSON(summary)
}

func (h *ReportHandler) FailedPayments(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		return response.BadRequest(c, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		return response.BadRequest(c, "end_date must be YYYY-MM-DD")
	}

	rows, err := h.reports.FailedPayments(c.Context(), start, end)
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}

func (h *ReportHandler) SLABreaches(c *fiber.Ctx) error {
	rows, err := h.reports.SLABreaches(c.Context())
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}

func (h *ReportHandler) HighRiskTransactions(c *fiber.Ctx) error {
	threshold := c.QueryFloat("risk_threshold", 70.0)
	rows, err := h.reports.HighRiskTransactions(c.Context(), threshold)
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}
