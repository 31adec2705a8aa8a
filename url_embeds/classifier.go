package url_embeds

import (
	"strings"
)

type platformMarkers struct {
	platform Platform
	markers  []string
}

// Checked in order, first hit wins. Links without a scheme still classify.
var knownPlatforms = []platformMarkers{
	{PlatformYouTube, []string{"youtube.com", "youtu.be"}},
	{PlatformInstagram, []string{"instagram.com"}},
	{PlatformTikTok, []string{"tiktok.com", "vm.tiktok.com"}},
}

func Classify(rawUrl string) Platform {
	for _, p := range knownPlatforms {
		for _, marker := range p.markers {
			if strings.Contains(rawUrl, marker) {
				return p.platform
			}
		}
	}
	return PlatformNone
}
