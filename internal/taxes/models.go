// Package taxes computes tax obligations under Russian small-business regimes.
// All calculations are pure arithmetic over the statutory rate tables below;
// exceeding a legal limit is reported as a warning on a normal result, never
// as an error.
package taxes

import (
	id "bizform/pkg/domain"
)

// Statutory rates and thresholds.
const (
	// NPDAnnualIncomeCap is the annual income ceiling for the professional
	// income tax regime. Above it the regime is legally inapplicable.
	NPDAnnualIncomeCap = 2_400_000.0

	// NPDRateIndividuals and NPDRateCompanies are the NPD rates by client type.
	NPDRateIndividuals = 0.04
	NPDRateCompanies   = 0.06

	// USNIncomeRate taxes gross revenue; USNProfitRate taxes revenue minus
	// expenses with a zero floor.
	USNIncomeRate = 0.06
	USNProfitRate = 0.15

	// VATThreshold is the yearly revenue above which USN filers must also
	// remit VAT at one of the reduced rates.
	VATThreshold      = 60_000_000.0
	VATReducedRateLow = 0.05
	VATReducedRateTop = 0.07

	// USNIncomeCeiling is the yearly revenue ceiling for the simplified
	// regime. Figures above it are informational, not an error.
	USNIncomeCeiling = 300_000_000.0
)

// Regime labels used in results and recommendations.
const (
	RegimeNPD   = "NPD"
	RegimeUSN6  = "USN 6%"
	RegimeUSN15 = "USN 15%"
)

// NPDLimit reports the statutory cap for display alongside an NPD breakdown.
type NPDLimit struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
}

// NPDResult is the full professional-income-tax breakdown for one month of
// income. Warning is empty while the regime applies; above the annual cap the
// tax fields are zero and Warning explains the required transition.
type NPDResult struct {
	MonthlyIncome    float64       `json:"monthlyIncome"`
	AnnualIncome     float64       `json:"annualIncome"`
	ClientType       id.ClientType `json:"clientType"`
	Rate             float64       `json:"rate"`
	MonthlyTax       float64       `json:"monthlyTax"`
	AnnualTax        float64       `json:"annualTax"`
	NetMonthlyIncome float64       `json:"netMonthlyIncome"`
	Warning          string        `json:"-"`
	Limit            NPDLimit      `json:"limit"`
}

// USNVariant is one simplified-regime computation (6% of revenue or 15% of
// profit).
type USNVariant struct {
	Rate            float64 `json:"rate"`
	YearlyTax       float64 `json:"yearlyTax"`
	MonthlyTax      float64 `json:"monthlyTax"`
	NetYearlyIncome float64 `json:"netYearlyIncome"`
}

// VATInfo reports whether the supplementary VAT obligation applies and the
// amounts at the two reduced rates.
type VATInfo struct {
	Applicable bool    `json:"applicable"`
	Threshold  float64 `json:"threshold"`
	AmountAt5  float64 `json:"amountAt5"`
	AmountAt7  float64 `json:"amountAt7"`
}

// USNLimits reports the statutory thresholds for display.
type USNLimits struct {
	VATThreshold  float64 `json:"vatThreshold"`
	IncomeCeiling float64 `json:"incomeCeiling"`
}

// USNResult compares both simplified-regime variants for a year of figures.
type USNResult struct {
	USN6     USNVariant `json:"usn6"`
	USN15    USNVariant `json:"usn15"`
	Optimal  string     `json:"optimal"`
	Savings  float64    `json:"savings"`
	VAT      VATInfo    `json:"vat"`
	Limits   USNLimits  `json:"limits"`
	Warnings []string   `json:"warnings"`
}

// FormRecommendation is the outcome of the business-form decision tree.
type FormRecommendation struct {
	Form       id.FormID `json:"form"`
	Regime     string    `json:"regime"`
	Confidence int       `json:"confidence"`
	Reasons    []string  `json:"reasons"`
}
