// Package normalize turns wizard form state into the Submission record shape
// handed to the record store.
package normalize

import (
	"strings"

	"intake_dossier/internal/domain/entities"
)

// FlatFields are the columns copied through unchanged when present.
var FlatFields = []string{
	"status",
	"current_step",
	"access_code",
	"contact_name",
	"contact_email",
	"contact_phone",
	"property_address",
	"property_city",
	"property_state",
	"property_zip",
	"vision_statement",
	"budget_range",
	"timeline",
	"household_size",
	"has_children",
	"has_pets",
	"desired_features",
	"must_have_features",
	"nice_to_have_features",
	"inspiration_images",
	"material_selections",
	"consents",
}

// GroupField maps an individually collected input field onto a sub-key of a
// grouping attribute.
type GroupField struct {
	Input  string
	Group  string
	SubKey string
}

// GroupFields is the single place where flat inputs are folded into groups.
// An explicit nested group object in the input is overlaid afterwards and
// wins per sub-key.
var GroupFields = []GroupField{
	{Input: "project_type", Group: entities.GroupPropertyData, SubKey: "project_type"},
	{Input: "property_type", Group: entities.GroupPropertyData, SubKey: "property_type"},
	{Input: "lot_size", Group: entities.GroupPropertyData, SubKey: "lot_size"},
	{Input: "square_footage", Group: entities.GroupPropertyData, SubKey: "square_footage"},
	{Input: "year_built", Group: entities.GroupPropertyData, SubKey: "year_built"},
	{Input: "hoa_restrictions", Group: entities.GroupPropertyData, SubKey: "hoa_restrictions"},

	{Input: "primary_use", Group: entities.GroupUsageIntent, SubKey: "primary_use"},
	{Input: "decision_makers", Group: entities.GroupUsageIntent, SubKey: "decision_makers"},
	{Input: "features_by_person", Group: entities.GroupUsageIntent, SubKey: "features_by_person"},
	{Input: "entertaining_frequency", Group: entities.GroupUsageIntent, SubKey: "entertaining_frequency"},
	{Input: "typical_guest_count", Group: entities.GroupUsageIntent, SubKey: "typical_guest_count"},

	{Input: "financing_status", Group: entities.GroupFinancialBreakdown, SubKey: "financing_status"},
	{Input: "budget_flexibility", Group: entities.GroupFinancialBreakdown, SubKey: "budget_flexibility"},
	{Input: "target_investment", Group: entities.GroupFinancialBreakdown, SubKey: "target_investment"},
	{Input: "payment_preference", Group: entities.GroupFinancialBreakdown, SubKey: "payment_preference"},
}

// Groups lists the grouping attributes in output order.
var Groups = []string{
	entities.GroupPropertyData,
	entities.GroupUsageIntent,
	entities.GroupFinancialBreakdown,
}

// SubmissionPayload builds the record to persist from wizard form state.
//
// Rules:
//   - recognized flat fields are copied as-is when present (nil included) and
//     omitted when absent; a string access_code is trimmed, matching lookups
//   - groups are assembled from GroupFields, then the input group object of
//     the same name is overlaid key by key
//   - status defaults to in_progress only when the key is absent
//   - anything else in the input is dropped
func SubmissionPayload(form map[string]any) entities.Record {
	out := entities.Record{}

	for _, field := range FlatFields {
		if v, ok := form[field]; ok {
			out[field] = v
		}
	}
	if code, ok := out["access_code"].(string); ok {
		out["access_code"] = strings.TrimSpace(code)
	}
	if _, ok := form["status"]; !ok {
		out["status"] = string(entities.SubmissionStatusInProgress)
	}

	groups := map[string]map[string]any{}
	for _, gf := range GroupFields {
		v, ok := form[gf.Input]
		if !ok {
			continue
		}
		g := groups[gf.Group]
		if g == nil {
			g = map[string]any{}
			groups[gf.Group] = g
		}
		g[gf.SubKey] = v
	}

	for _, name := range Groups {
		explicit, ok := form[name].(map[string]any)
		if !ok {
			continue
		}
		g := groups[name]
		if g == nil {
			g = make(map[string]any, len(explicit))
			groups[name] = g
		}
		for k, v := range explicit {
			g[k] = v
		}
	}

	for _, name := range Groups {
		if g, ok := groups[name]; ok {
			out[name] = g
		}
	}
	return out
}
