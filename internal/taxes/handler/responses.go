package handler

import (
	"bizform/internal/taxes"
)

// NPDResponse is the HTTP response for POST /api/calculate/npd.
type NPDResponse struct {
	MonthlyIncome    float64        `json:"monthlyIncome"`
	AnnualIncome     float64        `json:"annualIncome"`
	ClientType       string         `json:"clientType"`
	Rate             float64        `json:"rate"`
	MonthlyTax       float64        `json:"monthlyTax"`
	AnnualTax        float64        `json:"annualTax"`
	NetMonthlyIncome float64        `json:"netMonthlyIncome"`
	Warning          *string        `json:"warning"`
	Limit            taxes.NPDLimit `json:"limit"`
}

// FromNPDResult converts a domain NPDResult to an HTTP response.
// The warning is explicitly null when the regime applies.
func FromNPDResult(result *taxes.NPDResult) *NPDResponse {
	resp := &NPDResponse{
		MonthlyIncome:    result.MonthlyIncome,
		AnnualIncome:     result.AnnualIncome,
		ClientType:       result.ClientType.String(),
		Rate:             result.Rate,
		MonthlyTax:       result.MonthlyTax,
		AnnualTax:        result.AnnualTax,
		NetMonthlyIncome: result.NetMonthlyIncome,
		Limit:            result.Limit,
	}
	if result.Warning != "" {
		warning := result.Warning
		resp.Warning = &warning
	}
	return resp
}

// USNResponse is the HTTP response for POST /api/calculate/usn.
type USNResponse struct {
	USN6     taxes.USNVariant `json:"usn6"`
	USN15    taxes.USNVariant `json:"usn15"`
	Optimal  string           `json:"optimal"`
	Savings  float64          `json:"savings"`
	VAT      taxes.VATInfo    `json:"vat"`
	Limits   taxes.USNLimits  `json:"limits"`
	Warnings []string         `json:"warnings"`
}

// FromUSNResult converts a domain USNResult to an HTTP response.
func FromUSNResult(result *taxes.USNResult) *USNResponse {
	return &USNResponse{
		USN6:     result.USN6,
		USN15:    result.USN15,
		Optimal:  result.Optimal,
		Savings:  result.Savings,
		VAT:      result.VAT,
		Limits:   result.Limits,
		Warnings: result.Warnings,
	}
}

// RecommendationResponse is the recommendation portion of the simulate response.
type RecommendationResponse struct {
	Form       string   `json:"form"`
	Regime     string   `json:"regime"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// SimulateResponse is the HTTP response for POST /api/simulate.
type SimulateResponse struct {
	Recommendation RecommendationResponse `json:"recommendation"`
}

// FromRecommendation converts a domain FormRecommendation to an HTTP response.
func FromRecommendation(rec *taxes.FormRecommendation) *SimulateResponse {
	return &SimulateResponse{
		Recommendation: RecommendationResponse{
			Form:       rec.Form.String(),
			Regime:     rec.Regime,
			Confidence: rec.Confidence,
			Reasons:    rec.Reasons,
		},
	}
}
