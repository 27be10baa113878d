package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/texwatch/internal/app"
)

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("engine", "e", "", "Engine to compile with: pdflatex, lualatex or xelatex")
	cmd.Flags().String("output", "", "Directory for the PDF and log (default from texwatch.yaml)")
	cmd.Flags().Bool("no-open", false, "Do not open the PDF after a successful compilation")
}

func targetOptions(cmd *cobra.Command, args []string) app.TargetOptions {
	engine, _ := cmd.Flags().GetString("engine")
	output, _ := cmd.Flags().GetString("output")
	noOpen, _ := cmd.Flags().GetBool("no-open")

	opts := app.TargetOptions{
		Engine:    engine,
		OutputDir: output,
		NoOpen:    noOpen,
	}
	if len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Compile a document and recompile it on every save",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				TargetOptions: targetOptions(cmd, args),
				OutputMode:    outputMode,
			})
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().StringP("output-mode", "m", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Compile a document once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), targetOptions(cmd, args))
		},
	}
	addTargetFlags(cmd)
	return cmd
}
