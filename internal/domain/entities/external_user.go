package entities

// ExternalUser is the subset of a GitHub user record used for enrichment.
// It is transient: it is reduced to an avatar URL and then discarded.
type ExternalUser struct {
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PublicRepos int    `json:"public_repos"`
}
