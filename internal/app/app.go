package app

import (
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/generator"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
)

// Logs go to stderr so stdout stays free for prompts.
var logOutput io.Writer = os.Stderr

// App wires the components every command needs.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	Pipeline  pipeline.Pipeline
	Processor processor.Processor
}

func New(cfg *config.Config) (*App, error) {
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, logOutput)

	gen, err := generator.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}

	return NewWithGenerator(cfg, gen, log), nil
}

// NewWithGenerator wires the app around an existing generator.
func NewWithGenerator(cfg *config.Config, gen generator.Generator, log logger.Logger) *App {
	p := pipeline.New(gen, log)
	return &App{
		Config:    cfg,
		Logger:    log,
		Pipeline:  p,
		Processor: processor.New(cfg, p, executor.New(), log),
	}
}
