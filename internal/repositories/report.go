package repositories

import (
	"context"
	"time"

	"finlytics/internal/models"

	"gorm.io/gorm"
)

// ReportRepository runs the read-side queries against the reporting
// functions and views.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) DailySummary(ctx context.Context, date time.Time) (*models.DailyTransactionSummary, error) {
	var row models.DailyTransactionSummary
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_daily_transaction_summary(?)", date.Format("2006-01-02")).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ReportRepository) FailedPayments(ctx context.Context, start, end time.Time) ([]models.FailedPayment, error) {
	var rows []models.FailedPayment
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM detect_failed_payments(?, ?)", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) SLABreaches(ctx context.Context) ([]models.SLABreachReport, error) {
	var rows []models.SLABreachReport
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM identify_sla_breaches()").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) HighRiskTransactions(ctx context.Context, threshold float64) ([]models.HighRiskTransaction, error) {
	var rows []models.HighRiskTransaction
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM detect_high_risk_transactions(?)", threshold).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) PaymentAnalytics(ctx context.Context, limit int) ([]models.PaymentAnalytics, error) {
	var rows []models.PaymentAnalytics
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM vw_payment_analytics ORDER BY payment_date DESC LIMIT ?", limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) MerchantPerformance(ctx context.Context) ([]models.MerchantPerformance, error) {
	var rows []models.MerchantPerformance
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM vw_merchant_performance ORDER BY total_revenue DESC NULLS LAST").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) CustomerInsights(ctx context.Context, limit int) ([]models.CustomerInsight, error) {
	var rows []models.CustomerInsight
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM vw_customer_insights ORDER BY total_spent DESC NULLS LAST LIMIT ?", limit).
		Scan(&rows).Error
	return rows, err
}
