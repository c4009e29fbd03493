package entities

import (
	"errors"
	"math"
	"strings"
)

// DossierStatus tracks whether a sales rep has signed off on an analysis.
type DossierStatus string

const (
	DossierStatusDraft DossierStatus = "draft"
	DossierStatusFinal DossierStatus = "final"
)

var (
	ErrAnalysisMissingSummary   = errors.New("analysis summary is empty")
	ErrAnalysisConfidenceBounds = errors.New("analysis confidence outside [0,1]")
)

type UpsellSuggestion struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// AnalysisResult is the structured output of the analysis capability.
type AnalysisResult struct {
	Summary       string             `json:"summary"`
	Insights      []string           `json:"key_insights"`
	Strategy      string             `json:"suggested_strategy"`
	RedFlags      string             `json:"red_flags,omitempty"`
	Upsells       []UpsellSuggestion `json:"upsell_suggestions"`
	Confidence    float64            `json:"confidence_score"`
	Engine        string             `json:"engine"`
	EngineVersion string             `json:"engine_version"`
}

func (r AnalysisResult) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return ErrAnalysisMissingSummary
	}
	if math.IsNaN(r.Confidence) || r.Confidence < 0 || r.Confidence > 1 {
		return ErrAnalysisConfidenceBounds
	}
	return nil
}

// DossierAnalysis is the derived analysis of a Submission.
//
// Storage model:
//   - PK: id
//   - unique: submission_id (regeneration overwrites in place)
type DossierAnalysis struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`

	Summary       string             `json:"summary"`
	Insights      []string           `json:"key_insights"`
	Strategy      string             `json:"suggested_strategy"`
	RedFlags      string             `json:"red_flags,omitempty"`
	Upsells       []UpsellSuggestion `json:"upsell_suggestions"`
	Confidence    float64            `json:"confidence_score"`
	Engine        string             `json:"engine"`
	EngineVersion string             `json:"engine_version"`
	Status        DossierStatus      `json:"status"`

	CreatedDate string `json:"created_date,omitempty"`
	UpdatedDate string `json:"updated_date,omitempty"`
}

// AnalysisFields renders the overwriteable part of a dossier from a result.
// red_flags is always written so a regeneration clears a previous value.
func AnalysisFields(r AnalysisResult) Record {
	insights := r.Insights
	if insights == nil {
		insights = []string{}
	}
	upsells := make([]any, 0, len(r.Upsells))
	for _, u := range r.Upsells {
		upsells = append(upsells, map[string]any{"item": u.Item, "reason": u.Reason})
	}
	ins := make([]any, 0, len(insights))
	for _, s := range insights {
		ins = append(ins, s)
	}
	return Record{
		"summary":            r.Summary,
		"key_insights":       ins,
		"suggested_strategy": r.Strategy,
		"red_flags":          r.RedFlags,
		"upsell_suggestions": upsells,
		"confidence_score":   r.Confidence,
		"engine":             r.Engine,
		"engine_version":     r.EngineVersion,
		"status":             string(DossierStatusDraft),
	}
}
