package entities

// RawDocument is a link page document exactly as decoded from its source.
// Pointer fields record presence: a nil pointer means the key was absent or null.
// A RawDocument must pass DocumentCompiler before anything renders it.
type RawDocument struct {
	Version string      `json:"version" yaml:"version"`
	Profile *RawProfile `json:"profile" yaml:"profile"`
	Links   *[]RawLink  `json:"links" yaml:"links"`
}

// RawProfile is the undecorated profile section.
type RawProfile struct {
	Name              string `json:"name" yaml:"name"`
	Bio               string `json:"bio" yaml:"bio"`
	GitHubUsername    string `json:"gitHubUsername" yaml:"gitHubUsername"`
	SocialMediaHandle string `json:"socialMediaHandle,omitempty" yaml:"socialMediaHandle,omitempty"`
}

// RawLink is a single undecorated link entry.
type RawLink struct {
	Order       *float64 `json:"order" yaml:"order"`
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	URL         string   `json:"url" yaml:"url"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// LinkCount returns the number of decoded links, zero when the key was absent.
func (r *RawDocument) LinkCount() int {
	if r == nil || r.Links == nil {
		return 0
	}
	return len(*r.Links)
}
