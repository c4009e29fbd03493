package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"intake_dossier/internal/adapter/persistence/repository"
	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
	mock_interfaces "intake_dossier/internal/usecase/interfaces/mocks"
	"intake_dossier/internal/usecase/records"

	"go.uber.org/mock/gomock"
)

// sequenceAnalyzer returns a different result on every call, like a
// generative model would.
type sequenceAnalyzer struct{ calls int }

func (a *sequenceAnalyzer) Analyze(_ context.Context, sub entities.Record) (entities.AnalysisResult, error) {
	a.calls++
	return entities.AnalysisResult{
		Summary:    fmt.Sprintf("run %d for %s", a.calls, sub.ID()),
		Insights:   []string{"one"},
		Strategy:   "s",
		Confidence: 0.5,
		Engine:     "seq",
	}, nil
}

func validResult() entities.AnalysisResult {
	return entities.AnalysisResult{Summary: "ok", Confidence: 0.8, Engine: "test"}
}

func TestDossierUseCase_GenerateIsIdempotentPerSubmission(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRecordMemoryRepository(nil)
	e := records.New(store)
	sub, err := e.Submission.Create(ctx, entities.Record{"status": "submitted"})
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	uc := NewDossierUseCase(e, &sequenceAnalyzer{}, nil)

	first, err := uc.Generate(ctx, sub.ID())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := uc.Generate(ctx, sub.ID())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	if first.ID() != second.ID() {
		t.Fatalf("expected identity preserved, got %s and %s", first.ID(), second.ID())
	}
	if first["summary"] == second["summary"] {
		t.Fatalf("expected second run to overwrite content")
	}
	rows, err := e.DossierAnalysis.Filter(ctx, map[string]any{"submission_id": sub.ID()}, "", 0)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one dossier, got %d", len(rows))
	}
	if rows[0]["summary"] != fmt.Sprintf("run 2 for %s", sub.ID()) {
		t.Fatalf("unexpected stored summary %v", rows[0]["summary"])
	}
}

func TestDossierUseCase_GenerateUnknownSubmissionWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRecordMemoryRepository(nil)
	analyzer := &sequenceAnalyzer{}
	uc := NewDossierUseCase(records.New(store), analyzer, nil)

	_, err := uc.Generate(ctx, "missing")
	if !errors.Is(err, ErrSubmissionNotFound) || !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if analyzer.calls != 0 {
		t.Fatalf("analyzer must not be called")
	}
	if n := store.Count(entities.CollectionDossierAnalysis); n != 0 {
		t.Fatalf("expected no dossier written, got %d", n)
	}
}

func TestDossierUseCase_Generate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDossierUseCase(records.New(nil), nil, nil)
		_, err := uc.Generate(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("analysis failure leaves existing dossier untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, map[string]any{"id": "s1"}, gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), entities.Record{"id": "s1"}).Return(entities.AnalysisResult{}, errors.New("model down"))

		_, err := uc.Generate(context.Background(), "s1")
		if !errors.Is(err, interfaces.ErrAnalysisCapability) {
			t.Fatalf("expected ErrAnalysisCapability, got %v", err)
		}
		if !strings.Contains(err.Error(), "model down") {
			t.Fatalf("expected original cause kept, got %v", err)
		}
	})

	t.Run("malformed result rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AnalysisResult{Summary: "x", Confidence: 2}, nil)

		_, err := uc.Generate(context.Background(), "s1")
		if !errors.Is(err, interfaces.ErrAnalysisCapability) || !errors.Is(err, entities.ErrAnalysisConfidenceBounds) {
			t.Fatalf("expected capability error, got %v", err)
		}
	})

	t.Run("creates linked dossier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(validResult(), nil)
		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, map[string]any{"submission_id": "s1"}, entities.SortSpec("-updated_date"), 0).
			Return([]entities.Record{}, nil)
		store.EXPECT().Create(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.CollectionName, rec entities.Record) (entities.Record, error) {
				if rec["submission_id"] != "s1" || rec["status"] != "draft" || rec["summary"] != "ok" {
					t.Fatalf("unexpected dossier: %+v", rec)
				}
				out := rec.Clone()
				out["id"] = "d1"
				return out, nil
			},
		)

		got, err := uc.Generate(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID() != "d1" {
			t.Fatalf("expected d1, got %s", got.ID())
		}
	})

	t.Run("lost create race is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(validResult(), nil)
		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{}, nil)
		store.EXPECT().Create(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any()).
			Return(nil, interfaces.NewStoreError(interfaces.ErrWrite, entities.CollectionDossierAnalysis, "create",
				fmt.Errorf("%w: submission_id held by d0", interfaces.ErrUniqueConflict)))

		_, err := uc.Generate(context.Background(), "s1")
		if !errors.Is(err, ErrDossierConflict) || !errors.Is(err, interfaces.ErrWrite) {
			t.Fatalf("expected ErrDossierConflict, got %v", err)
		}
	})

	t.Run("rejected write is not a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(validResult(), nil)
		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{}, nil)
		store.EXPECT().Create(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any()).
			Return(nil, interfaces.NewStoreError(interfaces.ErrWrite, entities.CollectionDossierAnalysis, "create", errors.New("bad value")))

		_, err := uc.Generate(context.Background(), "s1")
		if errors.Is(err, ErrDossierConflict) || !errors.Is(err, interfaces.ErrWrite) {
			t.Fatalf("expected plain write error, got %v", err)
		}
	})

	t.Run("multiple dossiers uses most recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		analyzer := mock_interfaces.NewMockIAnalysisCapability(ctrl)
		uc := NewDossierUseCase(records.New(store), analyzer, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionSubmission, gomock.Any(), gomock.Any(), 1).
			Return([]entities.Record{{"id": "s1"}}, nil)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(validResult(), nil)
		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{{"id": "newest"}, {"id": "older"}}, nil)
		store.EXPECT().Update(gomock.Any(), entities.CollectionDossierAnalysis, "newest", gomock.Any()).
			Return(entities.Record{"id": "newest"}, nil)

		if _, err := uc.Generate(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestDossierUseCase_GetAndFinalize(t *testing.T) {
	t.Run("missing dossier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDossierUseCase(records.New(store), nil, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{}, nil).Times(2)

		if _, err := uc.GetBySubmissionID(context.Background(), "s1"); !errors.Is(err, ErrDossierNotFound) {
			t.Fatalf("expected ErrDossierNotFound, got %v", err)
		}
		if _, err := uc.Finalize(context.Background(), "s1"); !errors.Is(err, ErrDossierNotFound) {
			t.Fatalf("expected ErrDossierNotFound, got %v", err)
		}
	})

	t.Run("finalize sets final status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDossierUseCase(records.New(store), nil, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{{"id": "d1", "status": "draft"}}, nil)
		store.EXPECT().Update(gomock.Any(), entities.CollectionDossierAnalysis, "d1", entities.Record{"status": "final"}).
			Return(entities.Record{"id": "d1", "status": "final"}, nil)

		got, err := uc.Finalize(context.Background(), "s1")
		if err != nil || got["status"] != "final" {
			t.Fatalf("unexpected: %+v %v", got, err)
		}
	})

	t.Run("dossier deleted under us", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDossierUseCase(records.New(store), nil, nil)

		store.EXPECT().Filter(gomock.Any(), entities.CollectionDossierAnalysis, gomock.Any(), gomock.Any(), 0).
			Return([]entities.Record{{"id": "d1"}}, nil)
		store.EXPECT().Update(gomock.Any(), entities.CollectionDossierAnalysis, "d1", gomock.Any()).
			Return(nil, notFound(entities.CollectionDossierAnalysis))

		if _, err := uc.Finalize(context.Background(), "s1"); !errors.Is(err, ErrDossierNotFound) {
			t.Fatalf("expected ErrDossierNotFound, got %v", err)
		}
	})
}

func TestDossierUseCase_RegenerationResetsStatus(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRecordMemoryRepository(nil)
	e := records.New(store)
	sub, err := e.Submission.Create(ctx, entities.Record{})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewDossierUseCase(e, &sequenceAnalyzer{}, nil)

	if _, err := uc.Generate(ctx, sub.ID()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := uc.Finalize(ctx, sub.ID()); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	got, err := uc.Generate(ctx, sub.ID())
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if got["status"] != "draft" {
		t.Fatalf("expected draft after regeneration, got %v", got["status"])
	}
}

type fixedAnalyzer struct{ result entities.AnalysisResult }

func (a fixedAnalyzer) Analyze(context.Context, entities.Record) (entities.AnalysisResult, error) {
	return a.result, nil
}

func TestDossierUseCase_NonFiniteConfidenceIsCapabilityError(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRecordMemoryRepository(nil)
	e := records.New(store)
	sub, err := e.Submission.Create(ctx, entities.Record{})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewDossierUseCase(e, fixedAnalyzer{entities.AnalysisResult{Summary: "s", Confidence: math.NaN()}}, nil)

	_, err = uc.Generate(ctx, sub.ID())
	if !errors.Is(err, interfaces.ErrAnalysisCapability) {
		t.Fatalf("expected capability error, got %v", err)
	}
	if errors.Is(err, ErrDossierConflict) {
		t.Fatalf("malformed analysis reported as conflict: %v", err)
	}
	if n := store.Count(entities.CollectionDossierAnalysis); n != 0 {
		t.Fatalf("expected no dossier written, got %d", n)
	}
}
