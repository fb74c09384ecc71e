// Package entities contains domain entities for the link page domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

// Document is a validated link page document.
// It is built only by DocumentCompiler and is immutable afterward: accessors
// return copies so renderers cannot reorder or edit the loaded links.
//
// Invariants Enforced:
// - Profile name, bio and external handle are non-empty
// - At least one link is present
// - Every link has an id, title, url and an order value
type Document struct {
	version string
	profile Profile
	links   []Link
}

// Profile is the identity card shown above the links.
type Profile struct {
	Name              string `json:"name" yaml:"name"`
	Bio               string `json:"bio" yaml:"bio"`
	ExternalHandle    string `json:"gitHubUsername" yaml:"gitHubUsername"`
	SocialMediaHandle string `json:"socialMediaHandle,omitempty" yaml:"socialMediaHandle,omitempty"`
}

// Link is a single outbound link. Order is only used for sort comparison;
// values need not be contiguous or unique.
type Link struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	URL         string  `json:"url" yaml:"url"`
	Icon        string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Order       float64 `json:"order" yaml:"order"`
}

// NewDocument creates a Document from already validated parts.
// This is an internal constructor - use DocumentCompiler.Compile() instead.
func NewDocument(version string, profile Profile, links []Link) *Document {
	owned := make([]Link, len(links))
	copy(owned, links)
	return &Document{
		version: version,
		profile: profile,
		links:   owned,
	}
}

// Version returns the informational version string.
func (d *Document) Version() string {
	return d.version
}

// Profile returns the profile section.
func (d *Document) Profile() Profile {
	return d.profile
}

// Links returns a copy of the links in document order.
func (d *Document) Links() []Link {
	out := make([]Link, len(d.links))
	copy(out, d.links)
	return out
}

// LinkCount returns the number of links.
func (d *Document) LinkCount() int {
	return len(d.links)
}
