package repository

import (
	"context"
	"fmt"
	"time"

	"commodity-advisor/config"
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/model"
	"commodity-advisor/pkg/logger"
	"commodity-advisor/pkg/utils"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

type AIRepository interface {
	AnalyzeInvestment(ctx context.Context, param dto.AnalyzeParam, series *model.PriceSeries, stats *dto.Statistics) (string, error)
}

// geminiAIRepository generates the investment narrative through the
// Google Gemini API. One synchronous request per analysis, no streaming,
// no retries.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) AnalyzeInvestment(ctx context.Context, param dto.AnalyzeParam, series *model.PriceSeries, stats *dto.Statistics) (string, error) {
	if series == nil || series.IsEmpty() {
		return "", errs.NewAnalysisError("no price data available for %s", param.Symbol)
	}

	prompt := r.promptInvestmentAnalysis(param, series, stats)

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", errs.WrapNarrativeError(err, "request limiter interrupted")
	}

	narrative, err := r.sendRequest(ctx, param.AssetClass, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to generate narrative", logger.ErrorField(err))
		return "", err
	}

	return narrative, nil
}

func (r *geminiAIRepository) sendRequest(ctx context.Context, assetClass dto.AssetClass, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Gemini.Timeout)
	defer cancel()

	systemInstruction := fmt.Sprintf(
		"You are a professional financial analyst specializing in %s markets and investment strategies.",
		assetClass,
	)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, "user"),
		Temperature:       utils.ToPointer(float32(r.cfg.Gemini.Temperature)),
		MaxOutputTokens:   int32(r.cfg.Gemini.MaxOutputTokens),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.BaseModel, contents, genConfig)
	if err != nil {
		// Embed the cause so the user can tell a bad key from an empty quota.
		return "", errs.WrapNarrativeError(err, "LLM call failed, check your Gemini API key and remaining quota")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errs.WrapNarrativeError(nil, "invalid response from Gemini API: no content found")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
