package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and prerequisites",
		// Replaces the root hook: a config that fails validation is a
		// finding here, not a reason to abort.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			f.Info("Checking prerequisites...\n")
			ok := true

			var cfg *config.Config
			if deps.App != nil {
				cfg = deps.App.Config
			} else {
				loaded, err := loadConfig(cmd, deps)
				if err != nil {
					f.SetupCheck("Config", false, err.Error())
					ok = false
				} else {
					cfg = loaded
				}
			}

			latexBinary := "pdflatex"
			if cfg != nil {
				f.SetupCheck("Config", true, fmt.Sprintf("provider %s, format %s", cfg.Provider, cfg.Render.Format))
				switch cfg.Provider {
				case config.ProviderGemini:
					f.SetupCheck("Gemini API keys", true, fmt.Sprintf("%d configured, model %s", len(cfg.Gemini.APIKeys), cfg.Gemini.Model))
				case config.ProviderOpenAI:
					f.SetupCheck("OpenAI API key", true, "configured, model "+cfg.OpenAI.Model)
				}
				latexBinary = cfg.Latex.Binary
			}

			if _, err := exec.LookPath(latexBinary); err != nil {
				f.SetupCheck(latexBinary, false, "not found. Needed only for --compile; install a TeX distribution")
			} else {
				f.SetupCheck(latexBinary, true, "installed")
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to generate notes!")
			} else {
				f.Warning("\nSome prerequisites are missing. Set GOOGLE_API_KEY or OPENAI_API_KEY, or fix config.yaml.")
			}
			return nil
		},
	}
}
