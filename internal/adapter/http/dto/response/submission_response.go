package response

import "intake_dossier/internal/domain/entities"

// SubmissionResponse is the stored submission as the wizard sees it. The
// record is open, so fields are passed through untyped.
type SubmissionResponse map[string]any

func FromSubmission(rec entities.Record) SubmissionResponse {
	out := SubmissionResponse{}
	for k, v := range rec.Clone() {
		out[k] = v
	}
	return out
}
