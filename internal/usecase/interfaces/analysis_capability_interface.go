package interfaces

import (
	"context"

	"intake_dossier/internal/domain/entities"
)

// IAnalysisCapability abstracts the external content-analysis provider
// (deterministic mock, Gemini, or a remote analysis service).
//
// Implementations receive the full submission record and return errors
// wrapping ErrAnalysisCapability.
type IAnalysisCapability interface {
	Analyze(ctx context.Context, submission entities.Record) (entities.AnalysisResult, error)
}
