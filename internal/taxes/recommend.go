package taxes

import (
	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

// Branch confidence constants. The earlier a branch matches, the tighter its
// conditions and the higher the confidence.
const (
	confidenceNPD = 95
	confidenceIP  = 90
	confidenceOOO = 85
)

// RecommendForm applies the business-form decision tree, evaluated top to
// bottom with the first matching branch winning:
//
//  1. annual revenue within the NPD cap, no employees, single owner -> NPD
//  2. annual revenue within the VAT threshold (inclusive), single owner -> IP
//  3. everything else -> OOO
//
// The IP and OOO branches pick the cheaper simplified-regime variant using the
// same comparison as CalculateUSN. This is pure domain logic - no I/O.
func RecommendForm(monthlyRevenue, monthlyExpenses float64, employees, partners int) (*FormRecommendation, error) {
	if monthlyRevenue < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "monthly revenue must be non-negative")
	}
	if monthlyExpenses < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "monthly expenses must be non-negative")
	}
	if employees < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "employee count must be non-negative")
	}
	if partners < 1 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "partner count must be at least 1")
	}

	annualRevenue := monthlyRevenue * 12
	annualExpenses := monthlyExpenses * 12

	if annualRevenue <= NPDAnnualIncomeCap && employees == 0 && partners == 1 {
		return &FormRecommendation{
			Form:       id.FormNPD,
			Regime:     RegimeNPD,
			Confidence: confidenceNPD,
			Reasons: []string{
				"annual revenue fits within the professional income tax cap",
				"no employees, which the self-employed regime requires",
				"single owner, no partners to accommodate",
				"registration takes minutes and requires no reporting",
			},
		}, nil
	}

	regime, regimeReason := cheaperUSNVariant(annualRevenue, annualExpenses)

	// The threshold comparison is inclusive: exactly 60M still qualifies for IP.
	if annualRevenue <= VATThreshold && partners == 1 {
		reasons := []string{
			"annual revenue fits within the simplified regime threshold",
			"single owner, so a company structure is unnecessary",
		}
		if employees > 0 {
			reasons = append(reasons, "allows hiring staff")
		}
		reasons = append(reasons, regimeReason)

		return &FormRecommendation{
			Form:       id.FormIP,
			Regime:     regime,
			Confidence: confidenceIP,
			Reasons:    reasons,
		}, nil
	}

	reasons := []string{
		"liability is limited to charter capital",
	}
	if partners > 1 {
		reasons = append(reasons, "supports multiple partners and investors")
	}
	if employees > 0 {
		reasons = append(reasons, "allows hiring staff")
	}
	reasons = append(reasons, regimeReason)

	return &FormRecommendation{
		Form:       id.FormOOO,
		Regime:     regime,
		Confidence: confidenceOOO,
		Reasons:    reasons,
	}, nil
}

// cheaperUSNVariant compares both simplified-regime variants for the given
// annual figures and names the winner.
func cheaperUSNVariant(annualRevenue, annualExpenses float64) (regime, reason string) {
	tax6 := annualRevenue * USNIncomeRate
	tax15 := (annualRevenue - annualExpenses) * USNProfitRate
	if tax15 < 0 {
		tax15 = 0
	}

	if tax6 < tax15 {
		return RegimeUSN6, "USN 6% of revenue costs less than 15% of profit at these margins"
	}
	return RegimeUSN15, "USN 15% of profit costs less than 6% of revenue at these margins"
}
