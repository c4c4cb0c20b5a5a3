package taxes

import (
	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

// npdCapWarning is returned when annual income exceeds the NPD cap. The cap
// is a hard legal boundary: the regime simply does not apply above it.
const npdCapWarning = "annual income exceeds the professional income tax cap; " +
	"switch to sole proprietorship with the simplified regime (USN)"

// CalculateNPD computes the professional-income-tax breakdown for one month
// of income. This is pure domain logic - no I/O, no side effects.
//
// Errors: CodeInvalidInput for negative income or an unknown client type.
// Income above the annual cap is not an error; the result carries zero tax
// and a warning instead.
func CalculateNPD(monthlyIncome float64, clientType id.ClientType) (*NPDResult, error) {
	if monthlyIncome < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "monthly income must be non-negative")
	}
	if !clientType.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid client type")
	}

	annualIncome := monthlyIncome * 12
	result := &NPDResult{
		MonthlyIncome: monthlyIncome,
		AnnualIncome:  annualIncome,
		ClientType:    clientType,
		Limit: NPDLimit{
			Annual:  NPDAnnualIncomeCap,
			Monthly: NPDAnnualIncomeCap / 12,
		},
	}

	if annualIncome > NPDAnnualIncomeCap {
		result.NetMonthlyIncome = monthlyIncome
		result.Warning = npdCapWarning
		return result, nil
	}

	rate := NPDRateIndividuals
	if clientType == id.ClientCompanies {
		rate = NPDRateCompanies
	}

	result.Rate = rate
	result.MonthlyTax = monthlyIncome * rate
	result.AnnualTax = result.MonthlyTax * 12
	result.NetMonthlyIncome = monthlyIncome - result.MonthlyTax
	return result, nil
}
