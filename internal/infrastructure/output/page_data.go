package output

import (
	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/reglet-dev/linkpage/internal/domain/values"
)

// pageData is the machine-readable form of a page state.
// Links are in display order.
type pageData struct {
	RenderID        string            `json:"render_id" yaml:"render_id"`
	Version         string            `json:"version,omitempty" yaml:"version,omitempty"`
	Error           string            `json:"error,omitempty" yaml:"error,omitempty"`
	Profile         *entities.Profile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Avatar          values.Avatar     `json:"avatar" yaml:"avatar"`
	Links           []entities.Link   `json:"links" yaml:"links"`
	DocumentLoading bool              `json:"document_loading" yaml:"document_loading"`
	AvatarLoading   bool              `json:"avatar_loading" yaml:"avatar_loading"`
}

func newPageData(state dto.PageState) pageData {
	data := pageData{
		RenderID:        state.RenderID,
		Error:           state.Error,
		Profile:         state.Profile(),
		Avatar:          state.Avatar,
		Links:           services.SortLinks(state.PageLinks()),
		DocumentLoading: state.DocumentLoading,
		AvatarLoading:   state.AvatarLoading,
	}
	if state.Document != nil {
		data.Version = state.Document.Version()
	}
	return data
}
