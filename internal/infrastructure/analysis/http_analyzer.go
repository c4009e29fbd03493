package analysis

import (
	"context"
	"fmt"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const HTTPEngine = "http"

type analyzeRequest struct {
	Submission entities.Record `json:"submission"`
}

// HTTPAnalyzer delegates analysis to a remote service that answers
// POST {"submission": {...}} with the result document.
type HTTPAnalyzer struct {
	client *resty.Client
	logger *zap.Logger
}

var _ interfaces.IAnalysisCapability = (*HTTPAnalyzer)(nil)

func NewHTTPAnalyzer(endpoint, apiKey string, timeout time.Duration, logger *zap.Logger) (*HTTPAnalyzer, error) {
	if endpoint == "" {
		return nil, ErrMissingAnalysisEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &HTTPAnalyzer{client: client, logger: logger}, nil
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, submission entities.Record) (entities.AnalysisResult, error) {
	var out entities.AnalysisResult
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(analyzeRequest{Submission: submission}).
		SetResult(&out).
		Post("")
	if err != nil {
		a.logger.Warn("[analysis][http] call failed", zap.Error(err))
		return entities.AnalysisResult{}, capabilityErr(HTTPEngine, err)
	}
	if resp.IsError() {
		a.logger.Warn("[analysis][http] service returned error", zap.Int("status_code", resp.StatusCode()))
		return entities.AnalysisResult{}, capabilityErr(HTTPEngine, fmt.Errorf("status %d", resp.StatusCode()))
	}
	return finishResult(out, HTTPEngine, "")
}
