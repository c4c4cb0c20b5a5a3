// Package assistant proxies chat questions about business forms to an LLM
// provider, with response caching, request coalescing, and a canned fallback
// so the endpoint degrades instead of failing when the provider is down.
package assistant

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles accepted in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Tier scopes the assistant's system prompt to one business form.
type Tier string

const (
	TierGeneral Tier = "general"
	TierNPD     Tier = "npd"
	TierIP      Tier = "ip"
	TierOOO     Tier = "ooo"
)

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierGeneral, TierNPD, TierIP, TierOOO:
		return true
	}
	return false
}

const basePrompt = "You are a consultant on Russian business registration. " +
	"You explain the differences between self-employment (NPD), individual " +
	"entrepreneurship (IP), and limited liability companies (OOO), their tax " +
	"regimes, limits, and registration steps. Answer briefly and practically. " +
	"You are not a lawyer; recommend professional advice for complex cases."

// systemPrompt returns the provider system message for a tier.
func systemPrompt(tier Tier) string {
	switch tier {
	case TierNPD:
		return basePrompt + " The user is interested in NPD self-employment: " +
			"the 4-6% professional income tax, the 2.4 million ruble annual cap, " +
			"and the Moy Nalog app."
	case TierIP:
		return basePrompt + " The user is interested in registering as an IP: " +
			"USN regime selection, insurance contributions, and hiring."
	case TierOOO:
		return basePrompt + " The user is interested in founding an OOO: " +
			"charter capital, founder shares, and corporate accounting."
	default:
		return basePrompt
	}
}
