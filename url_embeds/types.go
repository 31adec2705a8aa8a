package url_embeds

type Platform string

const (
	PlatformNone      Platform = "none"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

type ContentType string

const (
	ContentTypeNone  ContentType = ""
	ContentTypeVideo ContentType = "video"
	ContentTypeShort ContentType = "short"
	ContentTypePost  ContentType = "post"
	ContentTypeReel  ContentType = "reel"
)

// ContentReference is the normalized form of a pasted social media link. Empty
// strings mean the field could not be determined.
type ContentReference struct {
	Platform     Platform    `json:"platform"`
	ContentId    string      `json:"contentId,omitempty"`
	ContentType  ContentType `json:"contentType,omitempty"`
	EmbedUrl     string      `json:"embedUrl,omitempty"`
	ThumbnailUrl string      `json:"thumbnailUrl,omitempty"`
}

// HasContent reports whether a content identifier was extracted. A recognized
// platform without an identifier is a failed extraction.
func (r ContentReference) HasContent() bool {
	return r.Platform != PlatformNone && r.ContentId != ""
}

func noContent(platform Platform) ContentReference {
	return ContentReference{Platform: platform}
}
