package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid gemini config",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"key-1"}},
			},
			wantErr: false,
		},
		{
			name: "valid openai config",
			config: Config{
				Provider: ProviderOpenAI,
				OpenAI:   OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name:    "missing gemini keys",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "missing openai key",
			config:  Config{Provider: ProviderOpenAI},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Provider: "bard",
				Gemini:   GeminiConfig{APIKeys: []string{"key-1"}},
			},
			wantErr: true,
		},
		{
			name: "unknown render format",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"key-1"}},
				Render: RenderConfig{Format: "pdf"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Gemini: GeminiConfig{APIKeys: []string{"key-1"}}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %v, want %v", cfg.Provider, ProviderGemini)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Render.Format != "html" {
		t.Errorf("Render.Format = %v, want html", cfg.Render.Format)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("Server.Addr = %v, want :5000", cfg.Server.Addr)
	}
	if cfg.Latex.Binary != "pdflatex" {
		t.Errorf("Latex.Binary = %v, want pdflatex", cfg.Latex.Binary)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want 1", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("LECTURENOTES_PROVIDER", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  api_keys: ["key-a", "key-b"]
  model: "gemini-1.5-flash"

paths:
  input: "transcripts"
  output: "notes"

render:
  format: "latex"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-1.5-flash")
	}
	if cfg.Paths.Input != "transcripts" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "transcripts")
	}
	if cfg.Render.Format != "latex" {
		t.Errorf("Render.Format = %v, want latex", cfg.Render.Format)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefaultUsesEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("LECTURENOTES_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "env-key")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 1 || cfg.Gemini.APIKeys[0] != "env-key" {
		t.Errorf("APIKeys = %v, want [env-key]", cfg.Gemini.APIKeys)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "k1, k2,,k3")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LECTURENOTES_PROVIDER", "openai")
	t.Setenv("LECTURENOTES_ADDR", ":9000")

	var cfg Config
	applyEnvOverrides(&cfg)

	if len(cfg.Gemini.APIKeys) != 3 {
		t.Errorf("APIKeys = %v, want 3 keys", cfg.Gemini.APIKeys)
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("OpenAI.APIKey = %v, want sk-env", cfg.OpenAI.APIKey)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %v, want openai", cfg.Provider)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %v, want :9000", cfg.Server.Addr)
	}
}
