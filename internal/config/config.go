package config

import "fmt"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Provider    string            `yaml:"provider"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Render      RenderConfig      `yaml:"render"`
	Latex       LatexConfig       `yaml:"latex"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
	BaseURL string   `yaml:"base_url"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RenderConfig struct {
	Format  string `yaml:"format"`
	BaseURL string `yaml:"base_url"`
}

type LatexConfig struct {
	Compile bool   `yaml:"compile"`
	Binary  string `yaml:"binary"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate checks required settings and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}

	switch c.Provider {
	case ProviderGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("gemini.api_keys is required (or set GOOGLE_API_KEY)")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required (or set OPENAI_API_KEY)")
		}
	default:
		return fmt.Errorf("provider must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.Provider)
	}

	switch c.Render.Format {
	case "":
		c.Render.Format = "html"
	case "html", "latex", "tex", "docx":
	default:
		return fmt.Errorf("render.format must be html, latex or docx, got %q", c.Render.Format)
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Latex.Binary == "" {
		c.Latex.Binary = "pdflatex"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
