package generator

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// New creates the Generator for the configured provider.
func New(cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGemini(cfg.Gemini, log)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI, log)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
