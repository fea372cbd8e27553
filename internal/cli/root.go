package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/app"
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/version"
)

const defaultConfigPath = "config.yaml"

type Dependencies struct {
	ConfigPath string
	LogLevel   string
	// App is built from the config before a command runs unless already set.
	App *app.App
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lecturenotes",
		Short: "Turn lecture transcripts into time-linked class notes",
		Long: "A CLI tool that sends a class transcript to a generative model and renders the notes " +
			"as HTML with clickable video timestamps, LaTeX or DOCX. It can also serve the same " +
			"pipeline over HTTP or watch a folder for new transcripts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.App != nil {
				return nil
			}
			cfg, err := loadConfig(cmd, deps)
			if err != nil {
				return err
			}
			deps.App, err = app.New(cfg)
			if err != nil {
				return fmt.Errorf("initializing app: %w", err)
			}
			return nil
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(NewGenerateCmd(deps))
	rootCmd.AddCommand(NewServeCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

// loadConfig requires the file only when --config was given explicitly.
func loadConfig(cmd *cobra.Command, deps *Dependencies) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(deps.ConfigPath)
	} else {
		cfg, err = config.LoadOrDefault(deps.ConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if deps.LogLevel != "" {
		cfg.Logging.Level = deps.LogLevel
	}
	return cfg, nil
}
