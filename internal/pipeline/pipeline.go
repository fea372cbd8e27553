package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/renderer"
	"github.com/nguyentantai21042004/lecture-notes/internal/timestamp"
)

// MaxAttempts bounds generation retries. Attempt i asks for the verbosity
// at index i, so later attempts request shorter notes.
const MaxAttempts = 3

// Run validates req, then generates and renders up to MaxAttempts times.
// Attempts run back to back with no delay; only the last error is returned.
func (p *implPipeline) Run(ctx context.Context, req Request) (models.Document, error) {
	if req.Format == "" {
		req.Format = models.FormatHTML
	}
	if err := validate(req); err != nil {
		return models.Document{}, err
	}

	r, err := renderer.New(req.Format)
	if err != nil {
		return models.Document{}, err
	}

	startTime := time.Now()
	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return models.Document{}, err
		}

		doc, err := p.attempt(ctx, r, req, attempt)
		if err == nil {
			p.logger.Info(ctx, "Generated %s notes on attempt %d in %s", req.Format, attempt+1, time.Since(startTime).Round(time.Millisecond))
			return doc, nil
		}

		lastErr = err
		p.logger.Warn(ctx, "Attempt %d failed: %v", attempt+1, err)
	}

	p.logger.Error(ctx, "All %d attempts failed", MaxAttempts)
	return models.Document{}, fmt.Errorf("%w after %d attempts: %v", ErrGenerationFailed, MaxAttempts, lastErr)
}

func (p *implPipeline) attempt(ctx context.Context, r renderer.Renderer, req Request, attempt int) (models.Document, error) {
	in := renderer.Input{BaseURL: req.BaseURL}
	var title string

	if r.Format() == models.FormatLatex {
		latex, err := p.generator.GenerateLatex(ctx, req.Transcript, attempt)
		if err != nil {
			return models.Document{}, fmt.Errorf("generate latex: %w", err)
		}
		in.Latex = latex
	} else {
		notes, err := p.generator.GenerateNotes(ctx, req.Transcript, attempt)
		if err != nil {
			return models.Document{}, fmt.Errorf("generate notes: %w", err)
		}
		in.Notes = notes
		title = notes.Title
		p.logger.Debug(ctx, "Notes %q contain %d timestamps", notes.Title, len(timestamp.Find(notes.NotesContent)))
	}

	content, err := r.Render(in)
	if err != nil {
		return models.Document{}, fmt.Errorf("render %s: %w", r.Format(), err)
	}

	return models.Document{
		Format:  r.Format(),
		Title:   title,
		Content: content,
	}, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Transcript) == "" {
		return ErrMissingTranscript
	}
	if req.Format == models.FormatHTML && strings.TrimSpace(req.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	return nil
}
