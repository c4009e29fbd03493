package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingGeminiAPIKey     = errors.New("missing GEMINI_API_KEY")
	ErrMissingAnalysisEndpoint = errors.New("missing ANALYSIS_ENDPOINT")
	ErrUnknownProvider         = errors.New("unknown analysis provider")
)

// Supported ANALYSIS_PROVIDER values.
const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini"
	ProviderHTTP   = "http"
)

// NewAnalyzerFromEnv picks the analysis capability for the process.
//
// Mock mode wins when ANALYSIS_MOCK is truthy. Without ANALYSIS_PROVIDER the
// provider is inferred from which credentials are present, falling back to
// the heuristic mock.
func NewAnalyzerFromEnv(ctx context.Context, logger *zap.Logger) (interfaces.IAnalysisCapability, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isAnalysisMockEnabled() {
		logger.Info("[analysis][provider] mock mode enabled")
		return NewHeuristicAnalyzer(), nil
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("ANALYSIS_PROVIDER")))
	if provider == "" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "":
			provider = ProviderGemini
		case os.Getenv("ANALYSIS_ENDPOINT") != "":
			provider = ProviderHTTP
		default:
			provider = ProviderMock
		}
	}
	logger.Info("[analysis][provider] selected", zap.String("provider", provider))

	switch provider {
	case ProviderMock:
		return NewHeuristicAnalyzer(), nil
	case ProviderGemini:
		a, err := NewGeminiAnalyzer(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"), logger)
		if err != nil {
			return nil, err
		}
		return a, nil
	case ProviderHTTP:
		timeout, err := time.ParseDuration(getenvDefault("ANALYSIS_TIMEOUT", "60s"))
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_TIMEOUT: %w", err)
		}
		a, err := NewHTTPAnalyzer(os.Getenv("ANALYSIS_ENDPOINT"), os.Getenv("ANALYSIS_API_KEY"), timeout, logger)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

func isAnalysisMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ANALYSIS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// capabilityErr tags a provider failure so callers can match it with
// errors.Is(err, interfaces.ErrAnalysisCapability).
func capabilityErr(engine string, err error) error {
	return fmt.Errorf("%w: %s: %w", interfaces.ErrAnalysisCapability, engine, err)
}

// decodeResult parses a provider payload and fills in the engine identity
// when the provider did not report one.
func decodeResult(raw []byte, engine, version string) (entities.AnalysisResult, error) {
	var out entities.AnalysisResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.AnalysisResult{}, capabilityErr(engine, fmt.Errorf("decode result: %w", err))
	}
	return finishResult(out, engine, version)
}

func finishResult(out entities.AnalysisResult, engine, version string) (entities.AnalysisResult, error) {
	if out.Engine == "" {
		out.Engine = engine
	}
	if out.EngineVersion == "" {
		out.EngineVersion = version
	}
	if err := out.Validate(); err != nil {
		return entities.AnalysisResult{}, capabilityErr(engine, err)
	}
	return out, nil
}
