package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

func TestHTTPAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the submission and decodes the result", func(t *testing.T) {
		var gotBody map[string]any
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"summary":"Remote","key_insights":[],"suggested_strategy":"s","upsell_suggestions":[],"confidence_score":0.5,"engine_version":"v9"}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(srv.URL, "secret", time.Second, nil)
		require.NoError(t, err)

		got, err := a.Analyze(ctx, entities.Record{"id": "s1"})
		require.NoError(t, err)
		require.Equal(t, "Remote", got.Summary)
		require.Equal(t, HTTPEngine, got.Engine)
		require.Equal(t, "v9", got.EngineVersion)
		require.Equal(t, "Bearer secret", gotAuth)
		require.Equal(t, map[string]any{"submission": map[string]any{"id": "s1"}}, gotBody)
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(srv.URL, "", time.Second, nil)
		require.NoError(t, err)
		_, err = a.Analyze(ctx, entities.Record{"id": "s1"})
		require.ErrorIs(t, err, interfaces.ErrAnalysisCapability)
	})

	t.Run("empty summary", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"summary":"  ","confidence_score":0.2}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(srv.URL, "", time.Second, nil)
		require.NoError(t, err)
		_, err = a.Analyze(ctx, entities.Record{})
		require.ErrorIs(t, err, entities.ErrAnalysisMissingSummary)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := NewHTTPAnalyzer("", "", time.Second, nil)
		require.ErrorIs(t, err, ErrMissingAnalysisEndpoint)
	})
}

func TestNewAnalyzerFromEnv(t *testing.T) {
	ctx := context.Background()
	resetEnv := func(t *testing.T) {
		for _, k := range []string{"ANALYSIS_MOCK", "ANALYSIS_PROVIDER", "GEMINI_API_KEY", "ANALYSIS_ENDPOINT", "ANALYSIS_TIMEOUT"} {
			t.Setenv(k, "")
		}
	}

	t.Run("defaults to heuristic mock", func(t *testing.T) {
		resetEnv(t)
		a, err := NewAnalyzerFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &HeuristicAnalyzer{}, a)
	})

	t.Run("mock flag wins over provider", func(t *testing.T) {
		resetEnv(t)
		t.Setenv("ANALYSIS_MOCK", "true")
		t.Setenv("ANALYSIS_PROVIDER", "http")
		a, err := NewAnalyzerFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &HeuristicAnalyzer{}, a)
	})

	t.Run("endpoint implies http", func(t *testing.T) {
		resetEnv(t)
		t.Setenv("ANALYSIS_ENDPOINT", "http://localhost:9999/analyze")
		a, err := NewAnalyzerFromEnv(ctx, nil)
		require.NoError(t, err)
		require.IsType(t, &HTTPAnalyzer{}, a)
	})

	t.Run("gemini without key", func(t *testing.T) {
		resetEnv(t)
		t.Setenv("ANALYSIS_PROVIDER", "gemini")
		_, err := NewAnalyzerFromEnv(ctx, nil)
		require.ErrorIs(t, err, ErrMissingGeminiAPIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		resetEnv(t)
		t.Setenv("ANALYSIS_PROVIDER", "oracle")
		_, err := NewAnalyzerFromEnv(ctx, nil)
		require.ErrorIs(t, err, ErrUnknownProvider)
	})
}
