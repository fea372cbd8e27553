package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeOutput writes the rendered document, creating parent directories.
func (p *implProcessor) writeOutput(ctx context.Context, path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.logger.Info(ctx, "Notes saved as: %s", path)
	return nil
}

// compileLatex runs the configured LaTeX binary next to texPath and
// removes the auxiliary files it leaves behind.
func (p *implProcessor) compileLatex(ctx context.Context, texPath string) (string, error) {
	dir := filepath.Dir(texPath)
	file := filepath.Base(texPath)
	stem := strings.TrimSuffix(file, filepath.Ext(file))

	args := []string{
		"-interaction=nonstopmode",
		"-halt-on-error",
		file,
	}

	p.logger.Info(ctx, "Compiling %s with %s", texPath, p.cfg.Latex.Binary)

	defer func() {
		for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
			aux := filepath.Join(dir, stem+ext)
			if fileExists(aux) {
				p.cleanupTempFile(ctx, aux)
			}
		}
	}()

	if _, err := p.executor.ExecuteInDir(ctx, dir, p.cfg.Latex.Binary, args...); err != nil {
		return "", fmt.Errorf("%s: %w", p.cfg.Latex.Binary, err)
	}

	return filepath.Join(dir, stem+".pdf"), nil
}
