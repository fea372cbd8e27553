package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func openAIServer(t *testing.T, content string, got *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []interface{}{
				map[string]interface{}{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]interface{}{"role": "assistant", "content": content},
				},
			},
		})
	}))
}

func TestOpenAIGenerateNotes(t *testing.T) {
	var req chatRequest
	srv := openAIServer(t, `{"title":"Syntax","summary":"Trees","notes_content":"- X-bar [12:34]"}`, &req)
	defer srv.Close()

	gen, err := NewOpenAI(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, logger.New("error"))
	require.NoError(t, err)

	notes, err := gen.GenerateNotes(context.Background(), "the transcript", 0)
	require.NoError(t, err)
	assert.Equal(t, "Syntax", notes.Title)
	assert.Equal(t, "- X-bar [12:34]", notes.NotesContent)

	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "generate detailed notes")
	assert.Contains(t, req.Messages[1].Content, "the transcript")
}

func TestOpenAIGenerateLatex(t *testing.T) {
	srv := openAIServer(t, `{"summary":"S","latex_content":"\\section{A}"}`, nil)
	defer srv.Close()

	gen, err := NewOpenAI(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, logger.New("error"))
	require.NoError(t, err)

	notes, err := gen.GenerateLatex(context.Background(), "t", 1)
	require.NoError(t, err)
	assert.Equal(t, `\section{A}`, notes.LatexContent)
}

func TestOpenAIMalformedReply(t *testing.T) {
	srv := openAIServer(t, "not json at all", nil)
	defer srv.Close()

	gen, err := NewOpenAI(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, logger.New("error"))
	require.NoError(t, err)

	_, err = gen.GenerateNotes(context.Background(), "t", 0)
	assert.Error(t, err)
}

func TestNewSelectsProvider(t *testing.T) {
	log := logger.New("error")

	g, err := New(&config.Config{Provider: config.ProviderOpenAI, OpenAI: config.OpenAIConfig{APIKey: "sk"}}, log)
	require.NoError(t, err)
	assert.IsType(t, &implOpenAI{}, g)

	g, err = New(&config.Config{Provider: config.ProviderGemini, Gemini: config.GeminiConfig{APIKeys: []string{"k"}}}, log)
	require.NoError(t, err)
	assert.IsType(t, &implGemini{}, g)

	_, err = New(&config.Config{Provider: "other"}, log)
	assert.Error(t, err)
}
