// Package output renders page states and validation reports.
package output

import (
	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/domain/services"
	"github.com/reglet-dev/linkpage/internal/version"
)

// SkeletonRows is the number of placeholder rows shown while links load.
const SkeletonRows = 5

// regionState is what a page region shows. Error wins over loading,
// loading wins over content.
type regionState string

const (
	regionError   regionState = "error"
	regionLoading regionState = "loading"
	regionContent regionState = "content"
)

type pageView struct {
	Title     string
	Generator string
	RenderID  string
	Profile   profileView
	Links     linksView
}

type profileView struct {
	State        regionState
	Error        string
	Name         string
	Bio          string
	SocialHandle string
	AvatarURL    string
}

type linksView struct {
	State     regionState
	Error     string
	Skeletons []int
	Items     []linkView
}

type linkView struct {
	ID          string
	Title       string
	URL         string
	Icon        string
	Description string
	Divider     bool
}

// newPageView applies the presentation rules to a page state.
func newPageView(state dto.PageState) pageView {
	view := pageView{
		Title:     "Links",
		Generator: "linkpage " + version.Get().String(),
		RenderID:  state.RenderID,
		Profile:   newProfileView(state),
		Links:     newLinksView(state),
	}
	if view.Profile.State == regionContent && view.Profile.Name != "" {
		view.Title = view.Profile.Name
	}
	return view
}

func newProfileView(state dto.PageState) profileView {
	switch {
	case state.Error != "":
		return profileView{State: regionError, Error: state.Error}
	case state.ProfileLoading():
		return profileView{State: regionLoading}
	}

	profile := state.Profile()
	view := profileView{
		State:        regionContent,
		Name:         profile.Name,
		Bio:          profile.Bio,
		SocialHandle: profile.SocialMediaHandle,
	}
	if state.Avatar.Present() {
		view.AvatarURL = state.Avatar.URL
	}
	return view
}

func newLinksView(state dto.PageState) linksView {
	switch {
	case state.Error != "":
		return linksView{State: regionError, Error: state.Error}
	case state.LinksLoading():
		return linksView{State: regionLoading, Skeletons: make([]int, SkeletonRows)}
	}

	sorted := services.SortLinks(state.PageLinks())
	items := make([]linkView, 0, len(sorted))
	for _, link := range sorted {
		items = append(items, linkView{
			ID:          link.ID,
			Title:       link.Title,
			URL:         link.URL,
			Icon:        link.Icon,
			Description: link.Description,
			Divider:     services.IsImageDivider(link),
		})
	}

	return linksView{State: regionContent, Items: items}
}
