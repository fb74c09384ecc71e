package values

// AvatarSource records how an avatar reference was obtained.
type AvatarSource string

const (
	// AvatarNone means no lookup was attempted (no handle).
	AvatarNone AvatarSource = "none"
	// AvatarLookup means the external profile record supplied the URL.
	AvatarLookup AvatarSource = "lookup"
	// AvatarFallback means the lookup failed and the URL was derived from the handle.
	AvatarFallback AvatarSource = "fallback"
)

// DefaultFallbackBase is the avatar service used when the profile lookup fails.
const DefaultFallbackBase = "https://unavatar.io/github/"

// Avatar is the result of profile enrichment. It distinguishes
// "never attempted" (AvatarNone) from "attempted and degraded" (AvatarFallback).
type Avatar struct {
	URL    string       `json:"url,omitempty" yaml:"url,omitempty"`
	Source AvatarSource `json:"source" yaml:"source"`
	Reason string       `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NoAvatar is the result for an absent handle.
func NoAvatar() Avatar {
	return Avatar{Source: AvatarNone}
}

// LookupAvatar wraps a URL returned by the external profile record.
func LookupAvatar(url string) Avatar {
	return Avatar{URL: url, Source: AvatarLookup}
}

// FallbackAvatar derives the deterministic avatar for handle.
// The URL is never checked for reachability.
func FallbackAvatar(base, handle, reason string) Avatar {
	return Avatar{
		URL:    FallbackAvatarURL(base, handle),
		Source: AvatarFallback,
		Reason: reason,
	}
}

// FallbackAvatarURL concatenates base and handle.
func FallbackAvatarURL(base, handle string) string {
	if base == "" {
		base = DefaultFallbackBase
	}
	return base + handle
}

// Present reports whether there is an image to show.
func (a Avatar) Present() bool {
	return a.URL != ""
}
