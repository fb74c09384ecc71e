package scaffold

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// TerminalPrompter asks for starter document values interactively.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device means a terminal, not a pipe or file.
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Ask fills the empty fields of defaults through a form.
func (p *TerminalPrompter) Ask(defaults Answers) (Answers, error) {
	a := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display name").
				Value(&a.Name).
				Validate(required("name")),
			huh.NewText().
				Title("Bio").
				Value(&a.Bio).
				Validate(required("bio")),
			huh.NewInput().
				Title("GitHub username").
				Description("Used for your avatar").
				Value(&a.GitHubUsername).
				Validate(required("GitHub username")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Social media handle").
				Description("Optional, e.g. @you").
				Value(&a.SocialMediaHandle),
			huh.NewInput().
				Title("Website").
				Description("Optional").
				Value(&a.Website).
				Validate(optionalURL),
		),
	)

	if err := form.Run(); err != nil {
		return Answers{}, err
	}
	return a, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func optionalURL(s string) error {
	if s == "" || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return nil
	}
	return errors.New("website must start with http:// or https://")
}

// Missing lists required answers that are still empty.
func (a Answers) Missing() []string {
	var missing []string
	if strings.TrimSpace(a.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(a.Bio) == "" {
		missing = append(missing, "bio")
	}
	if strings.TrimSpace(a.GitHubUsername) == "" {
		missing = append(missing, "github")
	}
	return missing
}
