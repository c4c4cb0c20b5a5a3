package wizard

import (
	id "bizform/pkg/domain"
)

// ScoredConfig builds the full ten-question comparison across NPD, IP and
// OOO. Every option carries a score delta; options that legally rule NPD out
// apply the disqualify sentinel instead of ending the run, so the caller
// always reaches a ranked result.
func ScoredConfig() *Config {
	return &Config{
		Mode:    ModeScored,
		Subject: id.FormNPD,
		Questions: []Question{
			{
				ID:     "income",
				Prompt: "What yearly income do you expect?",
				Options: []Option{
					{
						ID:          "under_2_4m",
						Label:       "Up to 2.4 million rubles",
						Explanation: "Fits within the NPD annual cap.",
						Effect:      ScoreDelta{id.FormNPD: 3, id.FormIP: 1},
					},
					{
						ID:          "over_2_4m",
						Label:       "More than 2.4 million rubles",
						Explanation: "Above the NPD cap; a registered business is required.",
						Effect:      ScoreDelta{id.FormNPD: ScoreDisqualify, id.FormIP: 2, id.FormOOO: 2},
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
						Explanation: "Solo work keeps every form available.",
						Effect:      ScoreDelta{id.FormNPD: 3},
					},
					{
						ID:          "employees",
						Label:       "Yes",
						Explanation: "Only IP and OOO can employ staff.",
						Effect:      ScoreDelta{id.FormNPD: ScoreDisqualify, id.FormIP: 2, id.FormOOO: 2},
					},
				},
			},
			{
				ID:     "clients",
				Prompt: "Who will your clients be?",
				Options: []Option{
					{
						ID:          "individuals",
						Label:       "Individuals",
						Explanation: "Retail clients favor the lightest regimes.",
						Effect:      ScoreDelta{id.FormNPD: 2, id.FormIP: 1},
					},
					{
						ID:          "companies",
						Label:       "Companies",
						Explanation: "Corporate clients often require formal counterparties.",
						Effect:      ScoreDelta{id.FormIP: 2, id.FormOOO: 2},
					},
					{
						ID:          "mixed",
						Label:       "Both",
						Explanation: "A mixed client base works under any form.",
						Effect:      ScoreDelta{id.FormNPD: 1, id.FormIP: 2},
					},
				},
			},
			{
				ID:     "license",
				Prompt: "Does your activity require a license?",
				Options: []Option{
					{
						ID:          "no",
						Label:       "No",
						Explanation: "Unlicensed activity is open to every form.",
						Effect:      ScoreDelta{id.FormNPD: 1},
					},
					{
						ID:          "yes",
						Label:       "Yes",
						Explanation: "Licenses are issued to registered businesses only.",
						Effect:      ScoreDelta{id.FormNPD: ScoreDisqualify, id.FormIP: 1, id.FormOOO: 2},
					},
				},
			},
			{
				ID:     "liability",
				Prompt: "How do you feel about personal liability?",
				Options: []Option{
					{
						ID:          "personal",
						Label:       "Personal liability is acceptable",
						Explanation: "NPD and IP answer for obligations with personal assets.",
						Effect:      ScoreDelta{id.FormNPD: 1, id.FormIP: 2},
					},
					{
						ID:          "limited",
						Label:       "I want limited liability",
						Explanation: "Only OOO limits liability to the company's assets.",
						Effect:      ScoreDelta{id.FormOOO: 3},
					},
				},
			},
			{
				ID:     "partners",
				Prompt: "Will you run the business alone or with partners?",
				Options: []Option{
					{
						ID:          "solo",
						Label:       "Alone",
						Explanation: "Solo ownership keeps every form available.",
						Effect:      ScoreDelta{id.FormNPD: 2, id.FormIP: 2},
					},
					{
						ID:          "partners",
						Label:       "With partners",
						Explanation: "Shared ownership requires an OOO with founder shares.",
						Effect:      ScoreDelta{id.FormNPD: ScoreDisqualify, id.FormOOO: 3},
					},
				},
			},
			{
				ID:     "simplicity",
				Prompt: "How important is minimal paperwork?",
				Options: []Option{
					{
						ID:          "high",
						Label:       "Very important",
						Explanation: "NPD has no reporting at all; IP has little.",
						Effect:      ScoreDelta{id.FormNPD: 3, id.FormIP: 1},
					},
					{
						ID:          "low",
						Label:       "Not a concern",
						Explanation: "Full accounting is acceptable.",
						Effect:      ScoreDelta{id.FormOOO: 2},
					},
				},
			},
			{
				ID:     "bank",
				Prompt: "How will you receive payments?",
				Options: []Option{
					{
						ID:          "personal_card",
						Label:       "Personal card or cash",
						Explanation: "NPD lets income arrive on a personal card.",
						Effect:      ScoreDelta{id.FormNPD: 2},
					},
					{
						ID:          "business_account",
						Label:       "Business account",
						Explanation: "A settlement account suits registered businesses.",
						Effect:      ScoreDelta{id.FormIP: 1, id.FormOOO: 2},
					},
				},
			},
			{
				ID:     "tax_regime",
				Prompt: "Do you want a choice of tax regimes?",
				Options: []Option{
					{
						ID:          "npd_only",
						Label:       "The flat 4-6% is enough",
						Explanation: "NPD has exactly one regime and no contributions.",
						Effect:      ScoreDelta{id.FormNPD: 3},
					},
					{
						ID:          "choice",
						Label:       "I want USN or other options",
						Explanation: "IP and OOO can pick between USN variants and the general regime.",
						Effect:      ScoreDelta{id.FormIP: 2, id.FormOOO: 2},
					},
				},
			},
			{
				ID:     "scale",
				Prompt: "What are your growth plans?",
				Options: []Option{
					{
						ID:          "stable",
						Label:       "Stable solo practice",
						Explanation: "A steady practice fits the lighter forms.",
						Effect:      ScoreDelta{id.FormNPD: 1, id.FormIP: 1},
					},
					{
						ID:          "scale",
						Label:       "Scale into a company",
						Explanation: "Investors and hiring point to an OOO.",
						Effect:      ScoreDelta{id.FormIP: 1, id.FormOOO: 3},
					},
				},
			},
		},
	}
}
