package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reglet-dev/linkpage/internal/domain/diagnostics"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
)

// Advisory limits. Exceeding them produces a warning; values are never truncated.
const (
	MaxNameLength         = 100
	MaxBioLength          = 300
	MaxSocialHandleLength = 100
	MaxLinkTitleLength    = 50
	MaxLinkDescLength     = 100
	MaxRenderedLinks      = 50
)

// DocumentCompiler transforms raw documents into validated, immutable documents.
//
// Required checks run in a fixed order and stop at the first violation:
// 1. profile and links sections are present
// 2. profile name, bio and gitHubUsername are non-empty
// 3. links is non-empty
// 4. every link has id, title, url and order (0 is valid), in document order
//
// Advisory checks run only once all required checks pass, and are returned
// alongside the document.
type DocumentCompiler struct{}

// NewDocumentCompiler creates a new document compiler service.
func NewDocumentCompiler() *DocumentCompiler {
	return &DocumentCompiler{}
}

// Compile validates raw and returns the immutable document with its advisory
// diagnostics. On failure the error is a *entities.RequiredFieldError and no
// document or diagnostics are returned.
func (c *DocumentCompiler) Compile(raw *entities.RawDocument) (*entities.Document, []diagnostics.Diagnostic, error) {
	if raw == nil || raw.Profile == nil || raw.Links == nil {
		return nil, nil, entities.NewRequiredFieldError("document", "missing profile or links")
	}

	if err := c.checkProfile(raw.Profile); err != nil {
		return nil, nil, err
	}

	rawLinks := *raw.Links
	if len(rawLinks) == 0 {
		return nil, nil, entities.NewRequiredFieldError("links", "links must be non-empty")
	}

	for i, link := range rawLinks {
		if err := c.checkLink(i, link); err != nil {
			return nil, nil, err
		}
	}

	profile := entities.Profile{
		Name:              raw.Profile.Name,
		Bio:               raw.Profile.Bio,
		ExternalHandle:    raw.Profile.GitHubUsername,
		SocialMediaHandle: raw.Profile.SocialMediaHandle,
	}

	links := make([]entities.Link, len(rawLinks))
	for i, l := range rawLinks {
		links[i] = entities.Link{
			ID:          l.ID,
			Title:       l.Title,
			URL:         l.URL,
			Icon:        l.Icon,
			Description: l.Description,
			Order:       *l.Order,
		}
	}

	var diags []diagnostics.Diagnostic
	diags = append(diags, c.adviseProfile(profile)...)
	diags = append(diags, c.adviseLinks(links)...)

	return entities.NewDocument(raw.Version, profile, links), diags, nil
}

func (c *DocumentCompiler) checkProfile(p *entities.RawProfile) error {
	switch {
	case p.Name == "":
		return entities.NewRequiredFieldError("profile.name", "name is required")
	case p.Bio == "":
		return entities.NewRequiredFieldError("profile.bio", "bio is required")
	case p.GitHubUsername == "":
		return entities.NewRequiredFieldError("profile.gitHubUsername", "gitHubUsername is required")
	}
	return nil
}

func (c *DocumentCompiler) checkLink(i int, l entities.RawLink) error {
	switch {
	case l.ID == "":
		return entities.NewLinkFieldError(i, "id", "id is required")
	case l.Title == "":
		return entities.NewLinkFieldError(i, "title", "title is required")
	case l.URL == "":
		return entities.NewLinkFieldError(i, "url", "url is required")
	case l.Order == nil:
		return entities.NewLinkFieldError(i, "order", "order is required (0, 1, 2, ...)")
	}
	return nil
}

func (c *DocumentCompiler) adviseProfile(p entities.Profile) []diagnostics.Diagnostic {
	var out []diagnostics.Diagnostic

	if n := utf8.RuneCountInString(p.Name); n > MaxNameLength {
		out = append(out, diagnostics.Warning(diagnostics.CodeNameLength, "profile.name",
			"name is %d characters, exceeds %d", n, MaxNameLength))
	}
	if n := utf8.RuneCountInString(p.Bio); n > MaxBioLength {
		out = append(out, diagnostics.Warning(diagnostics.CodeBioLength, "profile.bio",
			"bio is %d characters, exceeds %d", n, MaxBioLength))
	}
	if n := utf8.RuneCountInString(p.SocialMediaHandle); n > MaxSocialHandleLength {
		out = append(out, diagnostics.Warning(diagnostics.CodeSocialHandleLen, "profile.socialMediaHandle",
			"social media handle is %d characters, exceeds %d", n, MaxSocialHandleLength))
	}

	return out
}

func (c *DocumentCompiler) adviseLinks(links []entities.Link) []diagnostics.Diagnostic {
	var out []diagnostics.Diagnostic

	if len(links) > MaxRenderedLinks {
		out = append(out, diagnostics.Warning(diagnostics.CodeLinkCount, "links",
			"%d links defined, more than the recommended %d", len(links), MaxRenderedLinks))
	}

	seen := make(map[string]int, len(links))
	for i, l := range links {
		field := fmt.Sprintf("links[%d]", i)

		if first, dup := seen[l.ID]; dup {
			out = append(out, diagnostics.Warning(diagnostics.CodeLinkDuplicateID, field+".id",
				"id %q already used by links[%d]", l.ID, first))
		} else {
			seen[l.ID] = i
		}

		if !strings.HasPrefix(l.URL, "http://") && !strings.HasPrefix(l.URL, "https://") {
			out = append(out, diagnostics.Warning(diagnostics.CodeLinkScheme, field+".url",
				"link %q (%s) does not use http(s)", l.Title, l.URL))
		}
		if n := utf8.RuneCountInString(l.Title); n > MaxLinkTitleLength {
			out = append(out, diagnostics.Warning(diagnostics.CodeLinkTitleLength, field+".title",
				"title %q is %d characters, exceeds %d", l.Title, n, MaxLinkTitleLength))
		}
		if n := utf8.RuneCountInString(l.Description); n > MaxLinkDescLength {
			out = append(out, diagnostics.Warning(diagnostics.CodeLinkDescLength, field+".description",
				"description for %q is %d characters, exceeds %d", l.Title, n, MaxLinkDescLength))
		}

		if l.Icon == "" {
			out = append(out, diagnostics.Info(diagnostics.CodeLinkIconMissing, field+".icon",
				"link %q has no icon", l.Title))
		} else if glyphCount(l.Icon) > 1 {
			out = append(out, diagnostics.Warning(diagnostics.CodeLinkIconGlyph, field+".icon",
				"icon for %q should be a single glyph", l.Title))
		}
	}

	return out
}

// glyphCount approximates user-perceived characters: joiners, variation
// selectors, skin tone modifiers and combining marks extend the previous glyph.
func glyphCount(s string) int {
	count := 0
	joined := false
	for _, r := range s {
		switch {
		case r == '\u200d':
			joined = true
			continue
		case r == '\ufe0f' || r == '\ufe0e',
			r >= 0x1f3fb && r <= 0x1f3ff,
			unicode.Is(unicode.Mn, r):
			continue
		}
		if joined {
			joined = false
			continue
		}
		count++
	}
	return count
}
