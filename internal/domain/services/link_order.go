package services

import (
	"sort"
	"strings"

	"github.com/reglet-dev/linkpage/internal/domain/entities"
)

// ImageLinkID is the link id that marks an image divider.
const ImageLinkID = "image"

// SortLinks returns a copy of links in ascending order.
// Links with equal order keep their document order.
func SortLinks(links []entities.Link) []entities.Link {
	sorted := make([]entities.Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// IsImageDivider reports whether link renders as a plain image instead of an anchor.
func IsImageDivider(link entities.Link) bool {
	if link.ID != ImageLinkID {
		return false
	}
	return strings.HasSuffix(link.URL, ".jpg") || strings.HasSuffix(link.URL, ".png")
}
