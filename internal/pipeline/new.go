package pipeline

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/generator"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type implPipeline struct {
	generator generator.Generator
	logger    logger.Logger
}

// New creates a Pipeline around gen.
func New(gen generator.Generator, log logger.Logger) Pipeline {
	return &implPipeline{
		generator: gen,
		logger:    log,
	}
}
