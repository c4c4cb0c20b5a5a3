package wizard

import (
	id "bizform/pkg/domain"
)

// EligibilityConfig builds the NPD eligibility check. Four questions, each of
// which can rule the regime out immediately; anyone who passes all four gets
// the eligible summary with the rate their client mix implies.
func EligibilityConfig() *Config {
	return &Config{
		Mode:    ModeEligibility,
		Subject: id.FormNPD,
		Questions: []Question{
			{
				ID:     "activity",
				Prompt: "What kind of activity do you plan to run?",
				Options: []Option{
					{
						ID:          "services",
						Label:       "Services I perform myself",
						Explanation: "Personal services are the core NPD use case.",
						Effect:      Neutral{},
					},
					{
						ID:          "crafts",
						Label:       "Goods I make myself",
						Explanation: "Selling self-made goods is allowed under NPD.",
						Effect:      Neutral{},
					},
					{
						ID:          "resale",
						Label:       "Resale of purchased goods",
						Explanation: "NPD does not cover trading in goods bought for resale.",
						Effect: Disqualifying{
							Reason:      "Resale of purchased goods is not allowed under NPD.",
							Alternative: id.FormIP,
						},
					},
					{
						ID:          "agency",
						Label:       "Agency or commission work",
						Explanation: "Agency, commission and brokerage contracts are excluded from NPD.",
						Effect: Disqualifying{
							Reason:      "Agency and commission activity is not allowed under NPD.",
							Alternative: id.FormIP,
						},
					},
				},
			},
			{
				ID:     "income",
				Prompt: "What yearly income do you expect?",
				Options: []Option{
					{
						ID:          "under_2_4m",
						Label:       "Up to 2.4 million rubles",
						Explanation: "Within the statutory NPD annual cap.",
						Effect:      Neutral{},
					},
					{
						ID:          "over_2_4m",
						Label:       "More than 2.4 million rubles",
						Explanation: "NPD status is lost once income crosses the annual cap.",
						Effect: Disqualifying{
							Reason:      "Expected income exceeds the 2.4 million ruble NPD cap.",
							Alternative: id.FormIP,
						},
					},
				},
			},
			{
				ID:     "employees",
				Prompt: "Will you hire employees?",
				Options: []Option{
					{
						ID:          "none",
						Label:       "No, I work alone",
						Explanation: "NPD is strictly a solo regime.",
						Effect:      Neutral{},
					},
					{
						ID:          "have_employees",
						Label:       "Yes, I need employees",
						Explanation: "Hiring under an employment contract ends NPD eligibility.",
						Effect: Disqualifying{
							Reason:      "NPD does not permit hiring employees.",
							Alternative: id.FormIP,
						},
					},
				},
			},
			{
				ID:     "clients",
				Prompt: "Who will your clients be?",
				Options: []Option{
					{
						ID:          "individuals",
						Label:       "Mostly individuals",
						Explanation: "Income from individuals is taxed at 4%.",
						Effect:      Neutral{},
					},
					{
						ID:          "companies",
						Label:       "Mostly companies",
						Explanation: "Income from companies and IPs is taxed at 6%.",
						Effect:      Neutral{},
					},
					{
						ID:          "mixed",
						Label:       "Both",
						Explanation: "Each payment is taxed by its payer type, 4% or 6%.",
						Effect:      Neutral{},
					},
				},
			},
		},
	}
}
