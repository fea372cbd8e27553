package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
)

// urlSidecarExt names the optional file holding a transcript's video URL,
// e.g. lecture01.txt + lecture01.url.
const urlSidecarExt = ".url"

// Process orchestrates a watched transcript from input to archive
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", transcriptPath)
	p.logger.Info(ctx, "========================================")

	format, err := models.ParseFormat(p.cfg.Render.Format)
	if err != nil {
		return err
	}

	// Step 1: Generate and write the document
	outputPath := filepath.Join(p.cfg.Paths.Output, outputName(transcriptPath, format))
	written, err := p.Generate(ctx, Job{
		Path:    transcriptPath,
		Output:  outputPath,
		Format:  format,
		Compile: p.cfg.Latex.Compile,
	})
	if err != nil {
		return err
	}

	// Step 2: Move transcript (and its URL file) to archived folder
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}
	if sidecar := SidecarPath(transcriptPath); fileExists(sidecar) {
		if err := p.moveToArchived(ctx, sidecar); err != nil {
			p.logger.Warn(ctx, "Failed to move URL file to archived folder: %v", err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output: %s", written)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// Generate reads the transcript, runs the pipeline and writes the document.
func (p *implProcessor) Generate(ctx context.Context, job Job) (string, error) {
	data, err := os.ReadFile(job.Path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	if job.Format == "" {
		job.Format, err = models.ParseFormat(p.cfg.Render.Format)
		if err != nil {
			return "", err
		}
	}
	if job.BaseURL == "" {
		job.BaseURL = p.resolveBaseURL(ctx, job.Path)
	}
	if job.Output == "" {
		job.Output = filepath.Join(filepath.Dir(job.Path), outputName(job.Path, job.Format))
	}

	p.logger.Info(ctx, "Generating %s notes from %s", job.Format, job.Path)

	doc, err := p.pipeline.Run(ctx, pipeline.Request{
		Transcript: string(data),
		BaseURL:    job.BaseURL,
		Format:     job.Format,
	})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", filepath.Base(job.Path), err)
	}

	if err := p.writeOutput(ctx, job.Output, doc.Content); err != nil {
		return "", err
	}

	if job.Compile && doc.Format == models.FormatLatex {
		pdfPath, err := p.compileLatex(ctx, job.Output)
		if err != nil {
			p.logger.Warn(ctx, "LaTeX compile failed, keeping .tex only: %v", err)
		} else {
			p.logger.Info(ctx, "PDF written: %s", pdfPath)
		}
	}

	return job.Output, nil
}

// resolveBaseURL prefers a sidecar .url file next to the transcript over
// the configured default.
func (p *implProcessor) resolveBaseURL(ctx context.Context, transcriptPath string) string {
	sidecar := SidecarPath(transcriptPath)
	data, err := os.ReadFile(sidecar)
	if err == nil {
		if u := strings.TrimSpace(string(data)); u != "" {
			p.logger.Debug(ctx, "Using video URL from %s", sidecar)
			return u
		}
	}
	return p.cfg.Render.BaseURL
}

// outputName derives "<stem><ext>" from the transcript file name.
func outputName(transcriptPath string, format models.Format) string {
	base := filepath.Base(transcriptPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + format.Extension()
}

// SidecarPath returns where the video URL file for transcriptPath would live.
func SidecarPath(transcriptPath string) string {
	return strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath)) + urlSidecarExt
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
