package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
)

type fakePipeline struct {
	requests []pipeline.Request
	err      error
}

func (f *fakePipeline) Run(ctx context.Context, req pipeline.Request) (models.Document, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return models.Document{}, f.err
	}
	return models.Document{Format: req.Format, Content: []byte("rendered:" + req.Transcript)}, nil
}

type execCall struct {
	dir  string
	name string
	args []string
}

type fakeExecutor struct {
	calls []execCall
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.calls = append(f.calls, execCall{dir: dir, name: name, args: args})
	if f.err != nil {
		return "", f.err
	}
	// pretend to be pdflatex
	stem := args[len(args)-1]
	stem = stem[:len(stem)-len(filepath.Ext(stem))]
	os.WriteFile(filepath.Join(dir, stem+".aux"), nil, 0644)
	os.WriteFile(filepath.Join(dir, stem+".log"), nil, 0644)
	os.WriteFile(filepath.Join(dir, stem+".pdf"), []byte("%PDF"), 0644)
	return "", nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Gemini: config.GeminiConfig{APIKeys: []string{"k"}},
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
		Render: config.RenderConfig{BaseURL: "https://default/watch?v=d"},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGenerateDerivesOutputNextToInput(t *testing.T) {
	cfg := testConfig(t)
	fp := &fakePipeline{}
	p := New(cfg, fp, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "lecture01.txt")
	writeFile(t, in, "transcript text")

	out, err := p.Generate(context.Background(), Job{Path: in})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.Paths.Input, "lecture01.html"), out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "rendered:transcript text", string(data))

	require.Len(t, fp.requests, 1)
	assert.Equal(t, models.FormatHTML, fp.requests[0].Format)
	assert.Equal(t, "https://default/watch?v=d", fp.requests[0].BaseURL)
}

func TestGenerateUsesSidecarURL(t *testing.T) {
	cfg := testConfig(t)
	fp := &fakePipeline{}
	p := New(cfg, fp, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "week2.srt")
	writeFile(t, in, "t")
	writeFile(t, filepath.Join(cfg.Paths.Input, "week2.url"), "  https://youtu.be/watch?v=abc\n")

	_, err := p.Generate(context.Background(), Job{Path: in})
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/watch?v=abc", fp.requests[0].BaseURL)
}

func TestGenerateExplicitJob(t *testing.T) {
	cfg := testConfig(t)
	fp := &fakePipeline{}
	p := New(cfg, fp, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "a.txt")
	writeFile(t, in, "t")
	outPath := filepath.Join(t.TempDir(), "nested", "notes.docx")

	out, err := p.Generate(context.Background(), Job{
		Path:    in,
		Output:  outPath,
		Format:  models.FormatDocx,
		BaseURL: "https://explicit",
	})
	require.NoError(t, err)
	assert.Equal(t, outPath, out)
	assert.FileExists(t, outPath)
	assert.Equal(t, "https://explicit", fp.requests[0].BaseURL)
	assert.Equal(t, models.FormatDocx, fp.requests[0].Format)
}

func TestGenerateMissingFile(t *testing.T) {
	cfg := testConfig(t)
	fp := &fakePipeline{}
	p := New(cfg, fp, &fakeExecutor{}, logger.New("error"))

	_, err := p.Generate(context.Background(), Job{Path: filepath.Join(cfg.Paths.Input, "nope.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, fp.requests)
}

func TestGeneratePipelineErrorWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	fp := &fakePipeline{err: pipeline.ErrGenerationFailed}
	p := New(cfg, fp, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "a.txt")
	writeFile(t, in, "t")

	_, err := p.Generate(context.Background(), Job{Path: in})
	assert.True(t, errors.Is(err, pipeline.ErrGenerationFailed))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Input, "a.html"))
}

func TestGenerateCompilesLatex(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{}
	p := New(cfg, &fakePipeline{}, exec, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "syntax.txt")
	writeFile(t, in, "t")

	out, err := p.Generate(context.Background(), Job{Path: in, Format: models.FormatLatex, Compile: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Paths.Input, "syntax.tex"), out)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, cfg.Paths.Input, exec.calls[0].dir)
	assert.Equal(t, "pdflatex", exec.calls[0].name)
	assert.Equal(t, []string{"-interaction=nonstopmode", "-halt-on-error", "syntax.tex"}, exec.calls[0].args)

	assert.FileExists(t, filepath.Join(cfg.Paths.Input, "syntax.pdf"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Input, "syntax.aux"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Input, "syntax.log"))
}

func TestGenerateCompileFailureKeepsTex(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{err: errors.New("pdflatex not found")}
	p := New(cfg, &fakePipeline{}, exec, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "x.txt")
	writeFile(t, in, "t")

	out, err := p.Generate(context.Background(), Job{Path: in, Format: models.FormatLatex, Compile: true})
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestHTMLIsNeverCompiled(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{}
	p := New(cfg, &fakePipeline{}, exec, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "x.txt")
	writeFile(t, in, "t")

	_, err := p.Generate(context.Background(), Job{Path: in, Compile: true})
	require.NoError(t, err)
	assert.Empty(t, exec.calls)
}

func TestProcessWritesOutputAndArchives(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.Format = "latex"
	p := New(cfg, &fakePipeline{}, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "lecture.txt")
	sidecar := filepath.Join(cfg.Paths.Input, "lecture.url")
	writeFile(t, in, "t")
	writeFile(t, sidecar, "https://v")

	require.NoError(t, p.Process(context.Background(), in))

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "lecture.tex"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "lecture.txt"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "lecture.url"))
	assert.NoFileExists(t, in)
	assert.NoFileExists(t, sidecar)
}

func TestProcessFailureLeavesTranscript(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakePipeline{err: errors.New("boom")}, &fakeExecutor{}, logger.New("error"))

	in := filepath.Join(cfg.Paths.Input, "lecture.txt")
	writeFile(t, in, "t")

	assert.Error(t, p.Process(context.Background(), in))
	assert.FileExists(t, in)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "week1.html", outputName("/tmp/in/week1.txt", models.FormatHTML))
	assert.Equal(t, "week1.tex", outputName("week1.srt", models.FormatLatex))
	assert.Equal(t, "notes.v2.docx", outputName("notes.v2.md", models.FormatDocx))
	assert.Equal(t, "README.html", outputName("README", models.FormatHTML))
}
