package handlers

import (
	"finlytics/internal/services/report"
	"finlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const maxAnalyticsLimit = 1000

type AnalyticsHandler struct {
	reports *report.Service
}

func NewAnalyticsHandler(reports *report.Service) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports}
}

func analyticsLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", 100)
	if limit < 1 {
		limit = 1
	}
	if limit > maxAnalyticsLimit {
		limit = maxAnalyticsLimit
	}
	return limit
}

func (h *AnalyticsHandler) PaymentAnalytics(c *fiber.Ctx) error {
	rows, err := h.reports.PaymentAnalytics(c.Context(), analyticsLimit(c))
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}

func (h *AnalyticsHandler) MerchantPerformance(c *fiber.Ctx) error {
	rows, err := h.reports.MerchantPerformance(c.Context())
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}

func (h *AnalyticsHandler) CustomerInsights(c *fiber.Ctx) error {
	rows, err := h.reports.CustomerInsights(c.Context(), analyticsLimit(c))
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(rows)
}
