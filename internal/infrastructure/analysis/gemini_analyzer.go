package analysis

import (
	"context"
	"encoding/json"
	"errors"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	GeminiEngine       = "gemini"
	defaultGeminiModel = "gemini-2.5-flash"
)

const geminiSystemPrompt = `You are a sales analyst for a custom outdoor design studio.
Read the customer's intake submission and produce a concise dossier for the sales rep.
Keep key_insights to at most six short sentences. confidence_score is your confidence
in the analysis between 0 and 1. Leave red_flags empty when there are none.`

// contentGenerator is the part of *genai.Models the analyzer calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAnalyzer asks a Gemini model for a structured JSON dossier.
type GeminiAnalyzer struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

var _ interfaces.IAnalysisCapability = (*GeminiAnalyzer)(nil)

func NewGeminiAnalyzer(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return newGeminiAnalyzer(client.Models, model, logger), nil
}

func newGeminiAnalyzer(models contentGenerator, model string, logger *zap.Logger) *GeminiAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiAnalyzer{models: models, model: model, logger: logger}
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, submission entities.Record) (entities.AnalysisResult, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return entities.AnalysisResult{}, capabilityErr(GeminiEngine, err)
	}

	temperature := float32(0.4)
	a.logger.Debug("[analysis][gemini] generate start", zap.String("model", a.model), zap.Int("payload_len", len(payload)))
	resp, err := a.models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(string(payload), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(geminiSystemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    analysisSchema(),
			Temperature:       &temperature,
		},
	)
	if err != nil {
		a.logger.Warn("[analysis][gemini] generate failed", zap.String("model", a.model), zap.Error(err))
		return entities.AnalysisResult{}, capabilityErr(GeminiEngine, err)
	}
	if resp == nil {
		return entities.AnalysisResult{}, capabilityErr(GeminiEngine, errors.New("empty response"))
	}
	text := resp.Text()
	if text == "" {
		return entities.AnalysisResult{}, capabilityErr(GeminiEngine, errors.New("response has no text"))
	}
	return decodeResult([]byte(text), GeminiEngine, a.model)
}

func analysisSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	zero, one := 0.0, 1.0
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":            str,
			"key_insights":       {Type: genai.TypeArray, Items: str},
			"suggested_strategy": str,
			"red_flags":          str,
			"upsell_suggestions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"item":   str,
						"reason": str,
					},
					Required: []string{"item", "reason"},
				},
			},
			"confidence_score": {Type: genai.TypeNumber, Minimum: &zero, Maximum: &one},
		},
		Required: []string{"summary", "key_insights", "suggested_strategy", "upsell_suggestions", "confidence_score"},
	}
}
