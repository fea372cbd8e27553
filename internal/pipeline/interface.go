package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

// Request is one transcript to turn into a document.
// BaseURL is required for the HTML format only.
type Request struct {
	Transcript string
	BaseURL    string
	Format     models.Format
}

// Pipeline validates a request, generates notes and renders them.
type Pipeline interface {
	Run(ctx context.Context, req Request) (models.Document, error)
}
