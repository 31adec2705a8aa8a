package public

import (
	"net/http"
	"strings"

	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/url_embeds"
)

type EmbedPreviewResponse struct {
	Platform            url_embeds.Platform    `json:"platform"`
	ContentId           string                 `json:"contentId"`
	ContentType         url_embeds.ContentType `json:"contentType"`
	EmbedUrl            string                 `json:"embedUrl"`
	ThumbnailUrl        string                 `json:"thumbnailUrl"`
	PreviewThumbnailUrl string                 `json:"previewThumbnailUrl"`
}

func PreviewEmbed(r *http.Request, rctx rcontext.RequestContext) interface{} {
	rawUrl := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawUrl == "" {
		return _responses.BadRequest("url is required")
	}

	ref := url_embeds.Parse(rawUrl)
	preview, _ := url_embeds.ResolveThumbnail(rawUrl)
	return &EmbedPreviewResponse{
		Platform:            ref.Platform,
		ContentId:           ref.ContentId,
		ContentType:         ref.ContentType,
		EmbedUrl:            ref.EmbedUrl,
		ThumbnailUrl:        ref.ThumbnailUrl,
		PreviewThumbnailUrl: preview,
	}
}
