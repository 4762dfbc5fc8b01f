package repository

import (
	"commodity-advisor/config"
	"commodity-advisor/pkg/logger"
)

type Repository struct {
	MarketDataRepo MarketDataRepository
	GeminiAIRepo   AIRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		MarketDataRepo: NewAlphaVantageRepository(cfg, log),
		GeminiAIRepo:   geminiAIRepo,
	}, nil
}
