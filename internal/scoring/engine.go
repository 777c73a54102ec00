package scoring

import (
	"strings"
	"unicode/utf8"
)

// RuleConfig holds the keyword sets, thresholds and weights the scoring
// engine applies. Rules are deliberately plain data so operators can extend
// or re-tune them without touching the engine itself.
type RuleConfig struct {
	// Phone presence rule: a trimmed phone of at least PhoneMinLength
	// characters earns PhoneWeight.
	PhoneMinLength int
	PhoneWeight    int

	// Intent urgency rules: a two-tier exclusive keyword match on the intent
	// text. Urgent keywords are checked first; interested keywords only apply
	// when no urgent keyword matched.
	UrgentKeywords     []string
	UrgentWeight       int
	InterestedKeywords []string
	InterestedWeight   int

	// Message substance rule: a trimmed message strictly longer than
	// MessageMinLength characters earns MessageWeight.
	MessageMinLength int
	MessageWeight    int

	// Target locality rule: a city containing any TargetCities substring
	// earns CityWeight.
	TargetCities []string
	CityWeight   int

	// MaxScore caps the additive total.
	MaxScore int
}

// DefaultRules returns the production rule table tuned for the current
// campaign region.
func DefaultRules() RuleConfig {
	return RuleConfig{
		PhoneMinLength:     6,
		PhoneWeight:        30,
		UrgentKeywords:     []string{"急", "马上", "要"},
		UrgentWeight:       30,
		InterestedKeywords: []string{"想", "咨询"},
		InterestedWeight:   15,
		MessageMinLength:   30,
		MessageWeight:      20,
		TargetCities:       []string{"昆山", "苏州", "上海", "太仓", "常熟", "嘉定", "宝山", "青浦"},
		CityWeight:         10,
		MaxScore:           100,
	}
}

// Engine scores inbound leads against a fixed rule table. It is pure: no
// I/O, no stored state beyond the rules, and it never fails — absent fields
// simply contribute nothing.
type Engine struct {
	rules RuleConfig
}

// NewEngine creates a scoring engine with the given rule table.
func NewEngine(rules RuleConfig) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the rule table the engine was built with.
func (e *Engine) Rules() RuleConfig {
	return e.rules
}

// Result is the outcome of evaluating one lead: the capped total plus the
// contribution of each rule that fired.
type Result struct {
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown"`
}

// Breakdown keys, one per rule.
const (
	RulePhone   = "phone"
	RuleIntent  = "intent"
	RuleMessage = "message"
	RuleCity    = "city"
)

// Score returns the lead's score in [0, MaxScore].
func (e *Engine) Score(phone, city, intent, message string) int {
	return e.Evaluate(phone, city, intent, message).Score
}

// Evaluate applies every rule and returns the capped score together with a
// per-rule breakdown. Rules are additive and independent, except the two
// intent tiers which are mutually exclusive with the urgent tier winning.
func (e *Engine) Evaluate(phone, city, intent, message string) Result {
	breakdown := make(map[string]int)

	if utf8.RuneCountInString(strings.TrimSpace(phone)) >= e.rules.PhoneMinLength {
		breakdown[RulePhone] = e.rules.PhoneWeight
	}

	if intent != "" {
		lowered := strings.ToLower(intent)
		if containsAny(lowered, e.rules.UrgentKeywords) {
			breakdown[RuleIntent] = e.rules.UrgentWeight
		} else if containsAny(lowered, e.rules.InterestedKeywords) {
			breakdown[RuleIntent] = e.rules.InterestedWeight
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(message)) > e.rules.MessageMinLength {
		breakdown[RuleMessage] = e.rules.MessageWeight
	}

	if city != "" && containsAny(city, e.rules.TargetCities) {
		breakdown[RuleCity] = e.rules.CityWeight
	}

	total := 0
	for _, weight := range breakdown {
		total += weight
	}
	if total > e.rules.MaxScore {
		total = e.rules.MaxScore
	}

	return Result{Score: total, Breakdown: breakdown}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
