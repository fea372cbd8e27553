package processor

import (
	"context"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

// Job describes one transcript file to convert. Empty fields fall back to
// the configured defaults; an empty Output derives the name from Path.
type Job struct {
	Path    string
	Output  string
	Format  models.Format
	BaseURL string
	Compile bool
}

// Processor converts transcript files into note documents on disk.
type Processor interface {
	// Process handles a file dropped into the input folder: it writes the
	// result to the output folder and archives the transcript.
	Process(ctx context.Context, transcriptPath string) error
	// Generate runs a single job and returns the written output path.
	Generate(ctx context.Context, job Job) (string, error)
}
