package main

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/linkpage/internal/infrastructure/scaffold"
	"github.com/spf13/cobra"
)

var (
	initAnswers       scaffold.Answers
	initForce         bool
	initNoInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a starter link page document",
	Long: `Write a starter document with a profile and a GitHub link.

The file type follows the extension: .yaml or .yml writes YAML, anything
else JSON. Missing values are asked for when running in a terminal.`,
	Example: `  linkpage init
  linkpage init site/links.yaml --name "Ada" --bio "Builds things" --github ada`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initAnswers.Name, "name", "", "Display name")
	initCmd.Flags().StringVar(&initAnswers.Bio, "bio", "", "Short bio")
	initCmd.Flags().StringVar(&initAnswers.GitHubUsername, "github", "", "GitHub username")
	initCmd.Flags().StringVar(&initAnswers.SocialMediaHandle, "social", "", "Social media handle")
	initCmd.Flags().StringVar(&initAnswers.Website, "website", "", "Website URL")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&initNoInteractive, "no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "data.json"
	if len(args) > 0 {
		path = args[0]
	}

	answers := initAnswers
	prompter := scaffold.NewTerminalPrompter()
	if len(answers.Missing()) > 0 && !initNoInteractive && prompter.IsInteractive() {
		var err error
		if answers, err = prompter.Ask(answers); err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
	}
	if missing := answers.Missing(); len(missing) > 0 {
		return fmt.Errorf("missing values: %s (pass --%s)", strings.Join(missing, ", "), strings.Join(missing, ", --"))
	}

	store := scaffold.NewDocumentStore(path)
	if err := store.Save(scaffold.StarterDocument(answers), initForce); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nNext: linkpage validate %s\n", store.Path(), store.Path())
	return nil
}
