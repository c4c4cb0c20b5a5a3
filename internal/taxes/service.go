package taxes

import (
	"context"
	"log/slog"
	"time"

	"bizform/internal/taxes/metrics"
	id "bizform/pkg/domain"
	"bizform/pkg/requestcontext"
)

// Service wraps the pure calculators with logging and metrics. The arithmetic
// lives in npd.go, usn.go, and recommend.go; the service owns observability.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a taxes service with its dependencies.
func NewService(logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		logger:  logger,
		metrics: metrics,
	}
}

// CalculateNPD runs the professional-income-tax calculation.
func (s *Service) CalculateNPD(ctx context.Context, monthlyIncome float64, clientType id.ClientType) (*NPDResult, error) {
	start := time.Now()
	result, err := CalculateNPD(monthlyIncome, clientType)
	s.metrics.ObserveCalculateLatency("npd", time.Since(start))

	if err != nil {
		s.metrics.IncrementCalculation("npd", "invalid")
		return nil, err
	}

	s.metrics.IncrementCalculation("npd", "ok")
	if result.Warning != "" {
		s.metrics.IncrementLimitWarning("npd_annual_cap")
		s.logger.InfoContext(ctx, "npd cap exceeded",
			"request_id", requestcontext.RequestID(ctx),
			"annual_income", result.AnnualIncome,
		)
	}
	return result, nil
}

// CalculateUSN runs the simplified-regime comparison.
func (s *Service) CalculateUSN(ctx context.Context, yearlyIncome, yearlyExpenses float64) (*USNResult, error) {
	start := time.Now()
	result, err := CalculateUSN(yearlyIncome, yearlyExpenses)
	s.metrics.ObserveCalculateLatency("usn", time.Since(start))

	if err != nil {
		s.metrics.IncrementCalculation("usn", "invalid")
		return nil, err
	}

	s.metrics.IncrementCalculation("usn", "ok")
	if result.VAT.Applicable {
		s.metrics.IncrementLimitWarning("vat_threshold")
	}
	if len(result.Warnings) > 0 {
		s.metrics.IncrementLimitWarning("usn_ceiling")
	}
	return result, nil
}

// RecommendForm runs the business-form decision tree.
func (s *Service) RecommendForm(ctx context.Context, monthlyRevenue, monthlyExpenses float64, employees, partners int) (*FormRecommendation, error) {
	start := time.Now()
	rec, err := RecommendForm(monthlyRevenue, monthlyExpenses, employees, partners)
	s.metrics.ObserveCalculateLatency("simulate", time.Since(start))

	if err != nil {
		s.metrics.IncrementCalculation("simulate", "invalid")
		return nil, err
	}

	s.metrics.IncrementCalculation("simulate", "ok")
	s.logger.InfoContext(ctx, "form recommended",
		"request_id", requestcontext.RequestID(ctx),
		"form", rec.Form,
		"confidence", rec.Confidence,
	)
	return rec, nil
}
