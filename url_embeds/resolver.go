package url_embeds

import (
	"fmt"
	"net/url"
)

const youtubeEmbedTemplate = "https://www.youtube.com/embed/%s"
const youtubeThumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
const instagramEmbedTemplate = "https://www.instagram.com/p/%s/embed"

// Placeholder images are stable for a given content id, but are not real
// thumbnails of the content.
const PlaceholderBaseUrl = "https://picsum.photos"

var placeholderSizes = map[Platform]string{
	PlatformInstagram: "400/500",
	PlatformTikTok:    "400/711",
}

// Parse classifies rawUrl, extracts the platform content id and resolves the
// derived embed and thumbnail urls. It never fails: an unusable url yields a
// reference without a content id.
func Parse(rawUrl string) ContentReference {
	platform := Classify(rawUrl)
	if platform == PlatformNone {
		return noContent(PlatformNone)
	}

	found := extract(platform, rawUrl)
	if found.contentId == "" {
		return noContent(platform)
	}

	return resolve(platform, found)
}

func resolve(platform Platform, found extraction) ContentReference {
	ref := ContentReference{
		Platform:    platform,
		ContentId:   found.contentId,
		ContentType: found.contentType,
	}

	switch platform {
	case PlatformYouTube:
		ref.EmbedUrl = fmt.Sprintf(youtubeEmbedTemplate, found.contentId)
		ref.ThumbnailUrl = fmt.Sprintf(youtubeThumbnailTemplate, found.contentId)
	case PlatformInstagram:
		ref.EmbedUrl = fmt.Sprintf(instagramEmbedTemplate, found.contentId)
	case PlatformTikTok:
		// no public embed url
	}

	return ref
}

// ResolveEmbed returns something that can be loaded in an iframe.
func ResolveEmbed(rawUrl string) (string, bool) {
	ref := Parse(rawUrl)
	return ref.EmbedUrl, ref.EmbedUrl != ""
}

// ResolveThumbnail returns something image-like for a grid thumbnail. YouTube
// has a real thumbnail; Instagram and TikTok fall back to a placeholder image
// keyed by the content id.
func ResolveThumbnail(rawUrl string) (string, bool) {
	ref := Parse(rawUrl)
	if !ref.HasContent() {
		return "", false
	}
	if ref.ThumbnailUrl != "" {
		return ref.ThumbnailUrl, true
	}
	return PlaceholderUrl(ref)
}

func PlaceholderUrl(ref ContentReference) (string, bool) {
	size, ok := placeholderSizes[ref.Platform]
	if !ok || ref.ContentId == "" {
		return "", false
	}
	return fmt.Sprintf("%s/%s?random=%s&blur=0", PlaceholderBaseUrl, size, url.QueryEscape(ref.ContentId)), true
}
