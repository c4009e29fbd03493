package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/internal/usecase/normalize"
	"intake_dossier/internal/usecase/records"

	"go.uber.org/zap"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrSubmissionFinalized = errors.New("submission already finalized")
)

// ISubmissionUseCase drives the intake wizard lifecycle.
//
//   - first wizard interaction => Start()
//   - each "next step" => SaveStep()
//   - final step => Submit()
type ISubmissionUseCase interface {
	Start(ctx context.Context, form map[string]any) (entities.Record, error)
	SaveStep(ctx context.Context, id string, form map[string]any) (entities.Record, error)
	Submit(ctx context.Context, id string, form map[string]any) (entities.Record, error)
	GetByID(ctx context.Context, id string) (entities.Record, error)
	GetByAccessCode(ctx context.Context, code string) (entities.Record, error)
}

type SubmissionUseCase struct {
	submissions *records.Collection
	now         func() time.Time
	logger      *zap.Logger
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(e *records.Entities, logger *zap.Logger) *SubmissionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionUseCase{submissions: e.Submission, now: time.Now, logger: logger}
}

func (u *SubmissionUseCase) Start(ctx context.Context, form map[string]any) (entities.Record, error) {
	payload := normalize.SubmissionPayload(form)
	if _, ok := payload["current_step"]; !ok {
		payload["current_step"] = 1
	}

	created, err := u.submissions.Create(ctx, payload)
	if err != nil {
		u.logger.Warn("[submission][usecase] start failed", zap.Error(err))
		return nil, err
	}
	u.logger.Info("[submission][usecase] started", zap.String("submission_id", created.ID()))
	return created, nil
}

func (u *SubmissionUseCase) SaveStep(ctx context.Context, id string, form map[string]any) (entities.Record, error) {
	id, err := u.editable(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := u.submissions.Update(ctx, id, normalize.SubmissionPayload(form))
	if err != nil {
		return nil, submissionErr(id, err)
	}
	return updated, nil
}

func (u *SubmissionUseCase) Submit(ctx context.Context, id string, form map[string]any) (entities.Record, error) {
	id, err := u.editable(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := normalize.SubmissionPayload(form)
	payload["status"] = string(entities.SubmissionStatusSubmitted)
	payload["submitted_date"] = u.now().UTC().Format(entities.TimestampLayout)

	updated, err := u.submissions.Update(ctx, id, payload)
	if err != nil {
		return nil, submissionErr(id, err)
	}
	u.logger.Info("[submission][usecase] submitted", zap.String("submission_id", id))
	return updated, nil
}

func (u *SubmissionUseCase) GetByID(ctx context.Context, id string) (entities.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSubmissionID
	}
	rec, err := u.submissions.Get(ctx, id)
	if err != nil {
		return nil, submissionErr(id, err)
	}
	return rec, nil
}

func (u *SubmissionUseCase) GetByAccessCode(ctx context.Context, code string) (entities.Record, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidAccessCode
	}
	recs, err := u.submissions.Filter(ctx, map[string]any{"access_code": code}, "", 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrSubmissionNotFound
	}
	return recs[0], nil
}

// editable loads the submission and refuses writes once it is finalized.
func (u *SubmissionUseCase) editable(ctx context.Context, id string) (string, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if entities.SubmissionStatus(current.String("status")).Finalized() {
		return "", fmt.Errorf("%w: %s", ErrSubmissionFinalized, current.ID())
	}
	return current.ID(), nil
}

func submissionErr(id string, err error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return fmt.Errorf("%w: id=%s: %w", ErrSubmissionNotFound, id, err)
	}
	return err
}
