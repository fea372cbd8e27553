package generator

import (
	"context"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

// Generator turns a transcript into structured notes by calling a generative model.
// attempt selects the requested verbosity, see Descriptor.
type Generator interface {
	GenerateNotes(ctx context.Context, transcript string, attempt int) (models.Notes, error)
	GenerateLatex(ctx context.Context, transcript string, attempt int) (models.LatexNotes, error)
}
