package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
)

const (
	HeuristicEngine  = "heuristic-mock"
	HeuristicVersion = "1.0"
)

// HeuristicAnalyzer derives a dossier from the submission alone. It is the
// analysis capability of local and mock deployments and its output is fully
// determined by its input.
type HeuristicAnalyzer struct{}

var _ interfaces.IAnalysisCapability = (*HeuristicAnalyzer)(nil)

func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

type budgetTier int

const (
	tierUnknown budgetTier = iota
	tierEntry
	tierMid
	tierPremium
)

func (t budgetTier) String() string {
	switch t {
	case tierEntry:
		return "entry-level"
	case tierMid:
		return "mid-range"
	case tierPremium:
		return "premium"
	default:
		return "undisclosed"
	}
}

func (t budgetTier) withArticle() string {
	if t == tierEntry || t == tierUnknown {
		return "an " + t.String()
	}
	return "a " + t.String()
}

// tierOf buckets budget_range values such as "under_50k", "100k_250k" or
// "250k_plus".
func tierOf(budget string) budgetTier {
	b := strings.ToLower(budget)
	switch {
	case b == "":
		return tierUnknown
	case strings.Contains(b, "plus"), strings.Contains(b, "250k_"), strings.Contains(b, "500"), strings.Contains(b, "1m"):
		return tierPremium
	case strings.Contains(b, "100"), strings.Contains(b, "150"):
		return tierMid
	default:
		return tierEntry
	}
}

func (a *HeuristicAnalyzer) Analyze(ctx context.Context, submission entities.Record) (entities.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.AnalysisResult{}, capabilityErr(HeuristicEngine, err)
	}

	name := firstNonEmpty(submission.String("contact_name"), "The client")
	city := firstNonEmpty(submission.String("property_city"), "an unspecified location")
	projectType := firstNonEmpty(groupString(submission, entities.GroupPropertyData, "project_type"), "custom")
	tier := tierOf(submission.String("budget_range"))
	timeline := submission.String("timeline")

	desired := stringList(submission["desired_features"])
	mustHave := stringList(submission["must_have_features"])
	niceToHave := stringList(submission["nice_to_have_features"])
	household := numberOf(submission["household_size"])
	hasChildren, _ := submission["has_children"].(bool)
	hasPets, _ := submission["has_pets"].(bool)

	summary := fmt.Sprintf("%s is planning a %s project in %s with %s budget.",
		name, strings.ReplaceAll(projectType, "_", " "), city, tier.withArticle())

	insights := []string{}
	if household > 0 {
		insights = append(insights, fmt.Sprintf("Household of %d%s.", household, householdDetail(hasChildren, hasPets)))
	}
	if n := len(desired) + len(mustHave) + len(niceToHave); n > 0 {
		insights = append(insights, fmt.Sprintf("%d features requested, %d of them must-haves.", n, len(mustHave)))
	}
	if timeline != "" {
		insights = append(insights, fmt.Sprintf("Requested timeline: %s.", strings.ReplaceAll(timeline, "_", " ")))
	}
	if submission.String("vision_statement") != "" {
		insights = append(insights, "Client provided a written vision statement.")
	}

	var flags []string
	if tier == tierUnknown {
		flags = append(flags, "Budget not disclosed")
	}
	if tier == tierEntry && len(mustHave) > 5 {
		flags = append(flags, "Must-have list may exceed the stated budget")
	}
	if strings.Contains(strings.ToLower(timeline), "asap") && len(mustHave)+len(desired) > 8 {
		flags = append(flags, "Aggressive timeline for the requested scope")
	}

	var upsells []entities.UpsellSuggestion
	if hasChildren && !containsFold("play", desired, mustHave) {
		upsells = append(upsells, entities.UpsellSuggestion{Item: "Play area", Reason: "Children in household"})
	}
	if hasPets {
		upsells = append(upsells, entities.UpsellSuggestion{Item: "Pet wash station", Reason: "Pets in household"})
	}
	switch strings.ToLower(groupString(submission, entities.GroupUsageIntent, "entertaining_frequency")) {
	case "weekly", "often", "frequently":
		upsells = append(upsells, entities.UpsellSuggestion{Item: "Outdoor kitchen", Reason: "Frequent entertaining"})
	}
	if tier == tierPremium {
		upsells = append(upsells, entities.UpsellSuggestion{Item: "Smart home package", Reason: "Budget supports premium upgrades"})
	}

	return finishResult(entities.AnalysisResult{
		Summary:       summary,
		Insights:      insights,
		Strategy:      strategyFor(tier, len(mustHave)),
		RedFlags:      strings.Join(flags, "; "),
		Upsells:       upsells,
		Confidence:    confidenceOf(submission, tier),
		Engine:        HeuristicEngine,
		EngineVersion: HeuristicVersion,
	}, HeuristicEngine, HeuristicVersion)
}

func strategyFor(tier budgetTier, mustHaves int) string {
	switch tier {
	case tierPremium:
		return "Lead with a full design package and present premium material options early."
	case tierMid:
		if mustHaves > 3 {
			return "Phase the project: deliver must-haves first and quote nice-to-haves as a follow-up."
		}
		return "Present a balanced design with one signature feature."
	case tierEntry:
		return "Focus on the must-have list and value-engineered materials."
	default:
		return "Qualify the budget on the first call before presenting a design."
	}
}

// confidenceOf grows with how much of the intake was answered.
func confidenceOf(rec entities.Record, tier budgetTier) float64 {
	score := 0.4
	if tier != tierUnknown {
		score += 0.1
	}
	for _, field := range []string{"timeline", "vision_statement", "contact_name", "property_city"} {
		if rec.String(field) != "" {
			score += 0.1
		}
	}
	if len(stringList(rec["desired_features"]))+len(stringList(rec["must_have_features"])) > 0 {
		score += 0.05
	}
	return math.Round(math.Min(score, 0.95)*100) / 100
}

func householdDetail(children, pets bool) string {
	switch {
	case children && pets:
		return " with children and pets"
	case children:
		return " with children"
	case pets:
		return " with pets"
	}
	return ""
}

func groupString(rec entities.Record, group, key string) string {
	m, ok := rec[group].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func stringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func numberOf(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func containsFold(needle string, lists ...[]string) bool {
	for _, list := range lists {
		for _, item := range list {
			if strings.Contains(strings.ToLower(item), needle) {
				return true
			}
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
