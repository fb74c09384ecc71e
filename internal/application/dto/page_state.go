// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/values"
)

// PageState is everything the presentation layer needs. It is a snapshot:
// the page session owns the live copy and hands out values.
type PageState struct {
	// Document is nil until the load succeeds.
	Document *entities.Document
	// Links overrides Document.Links() when set (e.g. after filtering).
	Links []entities.Link

	RenderID string
	// Error is the shared document error shown in both regions.
	Error string

	Avatar values.Avatar

	DocumentLoading bool
	AvatarLoading   bool
}

// InitialPageState is the state before either fetch has started.
func InitialPageState(renderID string) PageState {
	return PageState{
		RenderID:        renderID,
		DocumentLoading: true,
		AvatarLoading:   true,
		Avatar:          values.NoAvatar(),
	}
}

// Profile returns the loaded profile, or nil.
func (s PageState) Profile() *entities.Profile {
	if s.Document == nil {
		return nil
	}
	p := s.Document.Profile()
	return &p
}

// PageLinks returns the links to display, or nil while none are loaded.
func (s PageState) PageLinks() []entities.Link {
	if s.Links != nil {
		return s.Links
	}
	if s.Document == nil {
		return nil
	}
	return s.Document.Links()
}

// ProfileLoading reports whether the profile region shows its placeholder.
func (s PageState) ProfileLoading() bool {
	return s.DocumentLoading || s.AvatarLoading || s.Document == nil
}

// LinksLoading reports whether the links region shows its placeholders.
func (s PageState) LinksLoading() bool {
	return s.DocumentLoading || s.PageLinks() == nil
}

// Settled reports whether both fetches have finished.
func (s PageState) Settled() bool {
	return !s.DocumentLoading && !s.AvatarLoading
}
