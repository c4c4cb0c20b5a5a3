package taxes

import (
	"math"

	dErrors "bizform/pkg/domain-errors"
)

const usnCeilingWarning = "yearly income exceeds the simplified regime ceiling; " +
	"the general taxation system applies above it"

// CalculateUSN computes both simplified-regime variants in parallel and picks
// the cheaper one. This is pure domain logic - no I/O, no side effects.
//
// Errors: CodeInvalidInput for negative figures. Crossing the VAT threshold or
// the USN ceiling is normal business behavior reported via VAT.Applicable and
// Warnings, never an error.
func CalculateUSN(yearlyIncome, yearlyExpenses float64) (*USNResult, error) {
	if yearlyIncome < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "yearly income must be non-negative")
	}
	if yearlyExpenses < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "yearly expenses must be non-negative")
	}

	tax6 := yearlyIncome * USNIncomeRate
	// Statutory floor: profit tax is never negative even when expenses exceed income.
	tax15 := math.Max((yearlyIncome-yearlyExpenses)*USNProfitRate, 0)

	result := &USNResult{
		USN6: USNVariant{
			Rate:            USNIncomeRate,
			YearlyTax:       tax6,
			MonthlyTax:      tax6 / 12,
			NetYearlyIncome: yearlyIncome - tax6,
		},
		USN15: USNVariant{
			Rate:            USNProfitRate,
			YearlyTax:       tax15,
			MonthlyTax:      tax15 / 12,
			NetYearlyIncome: yearlyIncome - tax15,
		},
		Savings: math.Abs(tax6 - tax15),
		VAT: VATInfo{
			Threshold: VATThreshold,
		},
		Limits: USNLimits{
			VATThreshold:  VATThreshold,
			IncomeCeiling: USNIncomeCeiling,
		},
		Warnings: []string{},
	}

	// Ties fall to USN 15% because the comparison is strict.
	if tax6 < tax15 {
		result.Optimal = RegimeUSN6
	} else {
		result.Optimal = RegimeUSN15
	}

	if yearlyIncome > VATThreshold {
		result.VAT.Applicable = true
		result.VAT.AmountAt5 = yearlyIncome * VATReducedRateLow
		result.VAT.AmountAt7 = yearlyIncome * VATReducedRateTop
	}

	if yearlyIncome > USNIncomeCeiling {
		result.Warnings = append(result.Warnings, usnCeilingWarning)
	}

	return result, nil
}
