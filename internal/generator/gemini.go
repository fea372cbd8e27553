package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/models"
)

var (
	notesSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":         {Type: genai.TypeString, Description: "Title of the class session"},
			"summary":       {Type: genai.TypeString, Description: "Brief summary of the class content"},
			"notes_content": {Type: genai.TypeString, Description: "Detailed notes content in markdown format"},
		},
		Required:         []string{"title", "summary", "notes_content"},
		PropertyOrdering: []string{"title", "summary", "notes_content"},
	}

	latexSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":       {Type: genai.TypeString, Description: "Brief summary of the class content"},
			"latex_content": {Type: genai.TypeString, Description: "Complete LaTeX content for the class notes"},
		},
		Required:         []string{"summary", "latex_content"},
		PropertyOrdering: []string{"summary", "latex_content"},
	}
)

type implGemini struct {
	apiKeys    []string
	baseURL    string
	model      string
	logger     logger.Logger
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Generator backed by the Gemini API. It rotates
// through the configured API keys when one is rate limited.
func NewGemini(cfg config.GeminiConfig, log logger.Logger) (Generator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGemini{
		apiKeys: cfg.APIKeys,
		baseURL: cfg.BaseURL,
		model:   model,
		logger:  log,
	}, nil
}

func (g *implGemini) GenerateNotes(ctx context.Context, transcript string, attempt int) (models.Notes, error) {
	var notes models.Notes
	text, err := g.callGemini(ctx, SystemPrompt(), UserPrompt(transcript, attempt), notesSchema)
	if err != nil {
		return notes, err
	}
	if err := decodeJSON(text, &notes); err != nil {
		return models.Notes{}, err
	}
	return notes, nil
}

func (g *implGemini) GenerateLatex(ctx context.Context, transcript string, attempt int) (models.LatexNotes, error) {
	var notes models.LatexNotes
	text, err := g.callGemini(ctx, LatexSystemPrompt(), LatexUserPrompt(transcript, attempt), latexSchema)
	if err != nil {
		return notes, err
	}
	if err := decodeJSON(text, &notes); err != nil {
		return models.LatexNotes{}, err
	}
	return notes, nil
}

// callGemini sends one request and returns the raw JSON text.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) callGemini(ctx context.Context, system, user string, schema *genai.Schema) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(user), genCfg)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", errEmptyResponse
		}
		return result.Text(), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey advances past idx unless another request already did.
func (g *implGemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
