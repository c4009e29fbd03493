package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/internal/usecase/records"

	"go.uber.org/zap"
)

var (
	ErrDossierNotFound = errors.New("dossier not found")
	// ErrDossierConflict means another generate created the dossier first.
	// Calling Generate again updates that record.
	ErrDossierConflict = errors.New("dossier created concurrently")
)

const fieldSubmissionID = "submission_id"

// IDossierUseCase derives and manages the analysis dossier of a submission.
type IDossierUseCase interface {
	Generate(ctx context.Context, submissionID string) (entities.Record, error)
	GetBySubmissionID(ctx context.Context, submissionID string) (entities.Record, error)
	Finalize(ctx context.Context, submissionID string) (entities.Record, error)
}

type DossierUseCase struct {
	submissions *records.Collection
	dossiers    *records.Collection
	analyzer    interfaces.IAnalysisCapability
	logger      *zap.Logger
}

var _ IDossierUseCase = (*DossierUseCase)(nil)

func NewDossierUseCase(e *records.Entities, analyzer interfaces.IAnalysisCapability, logger *zap.Logger) *DossierUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DossierUseCase{
		submissions: e.Submission,
		dossiers:    e.DossierAnalysis,
		analyzer:    analyzer,
		logger:      logger,
	}
}

// Generate analyzes the submission and stores the result as its single
// dossier, overwriting any previous one in place. Nothing is written when the
// submission is missing or the analysis fails.
func (u *DossierUseCase) Generate(ctx context.Context, submissionID string) (entities.Record, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return nil, ErrInvalidSubmissionID
	}
	log := u.logger.With(zap.String("submission_id", submissionID))
	log.Info("[dossier][usecase] generate start")

	submission, err := u.submissions.Get(ctx, submissionID)
	if err != nil {
		return nil, submissionErr(submissionID, err)
	}

	result, err := u.analyzer.Analyze(ctx, submission)
	if err == nil {
		err = result.Validate()
	}
	if err != nil {
		log.Warn("[dossier][usecase] analysis failed", zap.Error(err))
		if !errors.Is(err, interfaces.ErrAnalysisCapability) {
			err = fmt.Errorf("%w: %w", interfaces.ErrAnalysisCapability, err)
		}
		return nil, err
	}

	existing, err := u.current(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	fields := entities.AnalysisFields(result)

	if existing != nil {
		updated, err := u.dossiers.Update(ctx, existing.ID(), fields)
		if err != nil {
			return nil, err
		}
		log.Info("[dossier][usecase] generate overwrote", zap.String("dossier_id", updated.ID()), zap.String("engine", result.Engine))
		return updated, nil
	}

	fields[fieldSubmissionID] = submissionID
	created, err := u.dossiers.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, interfaces.ErrUniqueConflict) {
			log.Warn("[dossier][usecase] lost create race", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrDossierConflict, err)
		}
		return nil, err
	}
	log.Info("[dossier][usecase] generate created", zap.String("dossier_id", created.ID()), zap.String("engine", result.Engine))
	return created, nil
}

func (u *DossierUseCase) GetBySubmissionID(ctx context.Context, submissionID string) (entities.Record, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return nil, ErrInvalidSubmissionID
	}
	existing, err := u.current(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDossierNotFound
	}
	return existing, nil
}

func (u *DossierUseCase) Finalize(ctx context.Context, submissionID string) (entities.Record, error) {
	existing, err := u.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	updated, err := u.dossiers.Update(ctx, existing.ID(), entities.Record{"status": string(entities.DossierStatusFinal)})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrDossierNotFound, err)
		}
		return nil, err
	}
	return updated, nil
}

// current returns the dossier of a submission, or nil when there is none.
// More than one is a data-integrity violation that is logged, not repaired.
func (u *DossierUseCase) current(ctx context.Context, submissionID string) (entities.Record, error) {
	recs, err := u.dossiers.Filter(ctx, map[string]any{fieldSubmissionID: submissionID}, "-"+entities.FieldUpdatedDate, 0)
	if err != nil {
		return nil, err
	}
	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		return recs[0], nil
	default:
		u.logger.Error("[dossier][usecase] multiple dossiers for submission",
			zap.String("submission_id", submissionID),
			zap.Int("count", len(recs)),
			zap.String("using_dossier_id", recs[0].ID()),
		)
		return recs[0], nil
	}
}
