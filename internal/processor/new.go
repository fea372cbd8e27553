package processor

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	pipeline pipeline.Pipeline
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, p pipeline.Pipeline, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		pipeline: p,
		executor: exec,
		logger:   log,
	}
}
