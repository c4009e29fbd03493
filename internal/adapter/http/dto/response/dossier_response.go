package response

import (
	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/records"
)

type UpsellResponse struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

type DossierResponse struct {
	ID            string           `json:"id"`
	SubmissionID  string           `json:"submission_id"`
	Status        string           `json:"status"`
	Summary       string           `json:"summary"`
	KeyInsights   []string         `json:"key_insights"`
	Strategy      string           `json:"suggested_strategy"`
	RedFlags      string           `json:"red_flags,omitempty"`
	Upsells       []UpsellResponse `json:"upsell_suggestions"`
	Confidence    float64          `json:"confidence_score"`
	Engine        string           `json:"engine"`
	EngineVersion string           `json:"engine_version"`
	CreatedDate   string           `json:"created_date,omitempty"`
	UpdatedDate   string           `json:"updated_date,omitempty"`
}

func FromDossier(rec entities.Record) (DossierResponse, error) {
	d, err := records.Decode[entities.DossierAnalysis](rec)
	if err != nil {
		return DossierResponse{}, err
	}
	insights := d.Insights
	if insights == nil {
		insights = []string{}
	}
	upsells := make([]UpsellResponse, 0, len(d.Upsells))
	for _, u := range d.Upsells {
		upsells = append(upsells, UpsellResponse{Item: u.Item, Reason: u.Reason})
	}
	return DossierResponse{
		ID:            d.ID,
		SubmissionID:  d.SubmissionID,
		Status:        string(d.Status),
		Summary:       d.Summary,
		KeyInsights:   insights,
		Strategy:      d.Strategy,
		RedFlags:      d.RedFlags,
		Upsells:       upsells,
		Confidence:    d.Confidence,
		Engine:        d.Engine,
		EngineVersion: d.EngineVersion,
		CreatedDate:   d.CreatedDate,
		UpdatedDate:   d.UpdatedDate,
	}, nil
}
