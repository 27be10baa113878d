package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/texwatch/internal/adapters/scaffold"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the documents of the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := c.app.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, doc := range docs {
				_, _ = fmt.Fprintln(out, doc)
			}
			return nil
		},
	}
}

func (c *CLI) newEngineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engine [name]",
		Short: "Show or change the project's engine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				engine, err := c.app.Engine()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), engine)
				return nil
			}
			_, err := c.app.SetEngine(args[0])
			return err
		},
	}
}

func (c *CLI) newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project in the current directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, _ := cmd.Flags().GetString("template")
			path, err := c.app.NewProject(args[0], template)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringP("template", "t", scaffold.DefaultTemplate, "Template for the main document: article or report")
	return cmd
}
