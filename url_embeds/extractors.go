package url_embeds

import (
	"regexp"
	"strings"
)

type extraction struct {
	contentId   string
	contentType ContentType
}

// extractRule applies when its marker appears in the url. Rules are evaluated
// in order and the first applicable rule decides the outcome, even when it
// fails to produce an identifier.
type extractRule struct {
	marker  string
	extract func(rawUrl string) extraction
}

var shortsId = regexp.MustCompile(`/shorts/([^/?]+)`)
var instagramPostId = regexp.MustCompile(`/p/([^/?]+)`)
var instagramReelId = regexp.MustCompile(`/reel/([^/?]+)`)
var instagramEmbedId = regexp.MustCompile(`/p/([^/?]+)/embed`)
var tiktokVideoId = regexp.MustCompile(`/video/(\d+)`)
var tiktokShortLinkId = regexp.MustCompile(`vm\.tiktok\.com/([^/?]+)`)
var tiktokEmbedId = regexp.MustCompile(`/video/(\d+)/embed`)

var youtubeRules = []extractRule{
	{"youtube.com/watch?v=", func(rawUrl string) extraction {
		contentType := ContentTypeVideo
		if strings.Contains(rawUrl, "/shorts/") {
			contentType = ContentTypeShort
		}
		return extraction{between(rawUrl, "v=", "&"), contentType}
	}},
	{"youtu.be/", func(rawUrl string) extraction {
		return extraction{between(rawUrl, "youtu.be/", "?"), ContentTypeVideo}
	}},
	{"youtube.com/embed/", func(rawUrl string) extraction {
		return extraction{between(rawUrl, "embed/", "?"), ContentTypeVideo}
	}},
	{"/shorts/", captureWith(shortsId, ContentTypeShort)},
}

var instagramRules = []extractRule{
	{"/p/", captureWith(instagramPostId, ContentTypePost)},
	{"/reel/", captureWith(instagramReelId, ContentTypeReel)},
	// Unreachable: any url matching this also contains "/p/". Kept so the rule
	// table mirrors the supported link shapes.
	{"/embed", captureWith(instagramEmbedId, ContentTypePost)},
}

var tiktokRules = []extractRule{
	{"/video/", captureWith(tiktokVideoId, ContentTypeVideo)},
	{"vm.tiktok.com", captureWith(tiktokShortLinkId, ContentTypeVideo)},
	// Unreachable for the same reason as the Instagram embed rule.
	{"/embed", captureWith(tiktokEmbedId, ContentTypeVideo)},
}

var rulesByPlatform = map[Platform][]extractRule{
	PlatformYouTube:   youtubeRules,
	PlatformInstagram: instagramRules,
	PlatformTikTok:    tiktokRules,
}

func extract(platform Platform, rawUrl string) extraction {
	for _, rule := range rulesByPlatform[platform] {
		if strings.Contains(rawUrl, rule.marker) {
			result := rule.extract(rawUrl)
			if result.contentId == "" {
				return extraction{}
			}
			return result
		}
	}
	return extraction{}
}

func captureWith(expr *regexp.Regexp, contentType ContentType) func(string) extraction {
	return func(rawUrl string) extraction {
		m := expr.FindStringSubmatch(rawUrl)
		if len(m) < 2 {
			return extraction{}
		}
		return extraction{m[1], contentType}
	}
}

// between returns the text after the first occurrence of start, up to the next
// occurrence of start or stop, whichever comes first.
func between(s string, start string, stop string) string {
	parts := strings.Split(s, start)
	if len(parts) < 2 {
		return ""
	}
	segment := parts[1]
	if idx := strings.Index(segment, stop); idx >= 0 {
		segment = segment[:idx]
	}
	return segment
}
