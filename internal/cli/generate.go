package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/models"
	"github.com/nguyentantai21042004/lecture-notes/internal/output"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
)

func NewGenerateCmd(deps *Dependencies) *cobra.Command {
	var (
		format  string
		baseURL string
		out     string
		compile bool
	)

	cmd := &cobra.Command{
		Use:   "generate [transcript]",
		Short: "Generate notes from a transcript file",
		Long: "Generate class notes from a transcript file. Without an argument the file name is asked for.\n" +
			"HTML output links every [MM:SS] timestamp to the video at --base-url; when neither the flag,\n" +
			"render.base_url nor a <transcript>.url file provides one, it is asked for too.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			formatter := output.NewFormatter(cmd.OutOrStdout())
			prompt := newPrompter(cmd.InOrStdin(), formatter)

			if format == "" {
				format = cfg.Render.Format
			}
			f, err := models.ParseFormat(format)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				formatter.Welcome()
				if path, err = prompt.askTranscriptPath(); err != nil {
					return err
				}
			}

			if f == models.FormatHTML && baseURL == "" && cfg.Render.BaseURL == "" && !fileExists(processor.SidecarPath(path)) {
				if baseURL, err = prompt.askBaseURL(); err != nil {
					return err
				}
			}

			formatter.Generating()
			written, err := deps.App.Processor.Generate(cmd.Context(), processor.Job{
				Path:    path,
				Output:  out,
				Format:  f,
				BaseURL: baseURL,
				Compile: compile || cfg.Latex.Compile,
			})
			if err != nil {
				return err
			}

			formatter.Saved(written)
			if f == models.FormatLatex && !(compile || cfg.Latex.Compile) {
				formatter.LatexHint()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: html, latex or docx (default render.format)")
	cmd.Flags().StringVarP(&baseURL, "base-url", "u", "", "Video URL the timestamps link to")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: transcript name with the format's extension)")
	cmd.Flags().BoolVar(&compile, "compile", false, "Run the LaTeX compiler on .tex output")

	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
