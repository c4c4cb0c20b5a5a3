package wizard

import (
	"fmt"

	id "bizform/pkg/domain"
)

// deriveEligibleResult summarizes a completed eligibility run. The rate and
// client wording depend on the answer to the clients question, the activity
// line on the answer to the activity question; everything else is fixed NPD
// guidance.
func deriveEligibleResult(cfg *Config, answers []Answer) *EligibleResult {
	rate := "4-6%"
	clientLabel := "individuals and companies"
	activityDetail := "NPD covers work you perform yourself, without hired staff or resale."
	for _, a := range answers {
		switch a.QuestionID {
		case "clients":
			switch a.OptionID {
			case "individuals":
				rate = "4%"
				clientLabel = "individuals"
			case "companies":
				rate = "6%"
				clientLabel = "companies"
			case "mixed":
				rate = "4-6%"
				clientLabel = "individuals and companies"
			}
		case "activity":
			switch a.OptionID {
			case "services":
				activityDetail = "Services you perform yourself are the core NPD use case."
			case "crafts":
				activityDetail = "Selling goods of your own making is allowed; reselling purchased goods would not be."
			}
		}
	}

	return &EligibleResult{
		Form:        cfg.Subject,
		Title:       cfg.Subject.Title(),
		Rate:        rate,
		ClientLabel: clientLabel,
		Details: []string{
			fmt.Sprintf("Your income from %s is taxed at %s.", clientLabel, rate),
			activityDetail,
			"No reporting, no mandatory contributions, no cash register.",
			"Registration takes minutes in the Moy Nalog app.",
			"The regime holds while yearly income stays within 2.4 million rubles.",
		},
		NextSteps: []string{
			"Register in the Moy Nalog mobile app or through your bank.",
			"Issue a receipt in the app for every payment you receive.",
			"Pay the tax the app calculates, monthly, by the 28th.",
		},
	}
}

// deriveScoredResult ranks the three forms from the accumulated scores.
//
// OOO wins only with a strict lead over both lighter forms. NPD wins on a
// strict lead over IP, but never from below the viability threshold, which a
// single disqualifying answer guarantees. Every remaining case, ties
// included, falls to IP as the safe middle ground.
func deriveScoredResult(scores *ScoreState) *ScoredResult {
	npd := scores.Scores[id.FormNPD]
	ip := scores.Scores[id.FormIP]
	ooo := scores.Scores[id.FormOOO]

	var winner id.FormID
	switch {
	case ooo > ip && ooo > npd:
		winner = id.FormOOO
	case npd > ip && npd > NPDViabilityThreshold:
		winner = id.FormNPD
	default:
		winner = id.FormIP
	}

	reasons := scores.Reasons[winner]
	if len(reasons) == 0 {
		reasons = defaultReasons(winner)
	}

	out := &ScoredResult{
		Form:        winner,
		Title:       winner.Title(),
		Description: formDescription(winner),
		Reasons:     reasons,
		Scores:      make(map[id.FormID]int, len(scores.Scores)),
	}
	for form, score := range scores.Scores {
		out.Scores[form] = score
	}
	return out
}

func formDescription(form id.FormID) string {
	switch form {
	case id.FormNPD:
		return "Self-employment with a flat 4-6% tax, no reporting and registration in a mobile app."
	case id.FormIP:
		return "Individual entrepreneurship with a choice of tax regimes, the right to hire and simple accounting."
	case id.FormOOO:
		return "A limited liability company with founder shares, suited to partners, investors and growth."
	default:
		return ""
	}
}

func defaultReasons(form id.FormID) []string {
	switch form {
	case id.FormNPD:
		return []string{
			"Your answers fit a solo practice within the NPD income cap.",
			"The flat 4-6% rate with zero reporting is the cheapest way to stay legal.",
		}
	case id.FormIP:
		return []string{
			"Your answers point to a registered business without the overhead of a company.",
			"IP keeps accounting simple while allowing employees and a choice of tax regimes.",
		}
	case id.FormOOO:
		return []string{
			"Your answers call for a structure with limited liability or shared ownership.",
			"An OOO separates business obligations from your personal assets.",
		}
	default:
		return nil
	}
}
