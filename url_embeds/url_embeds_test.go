package url_embeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_YouTube(t *testing.T) {
	cases := []struct {
		url         string
		contentId   string
		contentType ContentType
	}{
		{"https://youtube.com/watch?v=abc123", "abc123", ContentTypeVideo},
		{"https://www.youtube.com/watch?v=abc&list=PL1&index=2", "abc", ContentTypeVideo},
		{"https://m.youtube.com/watch?v=mob1&feature=share", "mob1", ContentTypeVideo},
		{"https://youtu.be/xyz?t=5", "xyz", ContentTypeVideo},
		{"https://youtu.be/plain", "plain", ContentTypeVideo},
		{"https://www.youtube.com/embed/emb1?autoplay=1", "emb1", ContentTypeVideo},
		{"https://youtube.com/shorts/short1", "short1", ContentTypeShort},
		{"https://www.youtube.com/shorts/short2?feature=share", "short2", ContentTypeShort},
		{"https://youtube.com/shorts/short3/", "short3", ContentTypeShort},
		{"https://youtube.com/watch?v=abc&from=/shorts/", "abc", ContentTypeShort},
	}

	for _, c := range cases {
		t.Run(c.url, func(t *testing.T) {
			ref := Parse(c.url)
			assert.Equal(t, PlatformYouTube, ref.Platform)
			assert.Equal(t, c.contentId, ref.ContentId)
			assert.Equal(t, c.contentType, ref.ContentType)
			assert.Equal(t, "https://www.youtube.com/embed/"+c.contentId, ref.EmbedUrl)
			assert.Equal(t, "https://img.youtube.com/vi/"+c.contentId+"/maxresdefault.jpg", ref.ThumbnailUrl)
		})
	}
}

func TestParse_YouTubeExample(t *testing.T) {
	assert.Equal(t, ContentReference{
		Platform:     PlatformYouTube,
		ContentId:    "abc123",
		ContentType:  ContentTypeVideo,
		EmbedUrl:     "https://www.youtube.com/embed/abc123",
		ThumbnailUrl: "https://img.youtube.com/vi/abc123/maxresdefault.jpg",
	}, Parse("https://youtube.com/watch?v=abc123"))
}

func TestParse_YouTubeFailedExtraction(t *testing.T) {
	for _, u := range []string{
		"https://youtube.com/channel/UC1234",
		"https://www.youtube.com/",
		"https://youtube.com/watch?v=",
		"https://youtube.com/watch?v=&t=4",
		"https://youtu.be/",
		"https://youtu.be/?t=5",
		"https://youtube.com/embed/",
		"https://youtube.com/shorts/",
		"https://www.youtube.com/watch?feature=share&v=late",
	} {
		t.Run(u, func(t *testing.T) {
			ref := Parse(u)
			assert.Equal(t, ContentReference{Platform: PlatformYouTube}, ref)
			assert.False(t, ref.HasContent())
		})
	}
}

func TestParse_YouTubeFirstApplicableRuleDecides(t *testing.T) {
	// The watch rule applies and fails; the shorts rule is never consulted.
	ref := Parse("https://youtube.com/watch?v=&next=/shorts/abc")
	assert.Equal(t, ContentReference{Platform: PlatformYouTube}, ref)
}

func TestParse_Instagram(t *testing.T) {
	cases := []struct {
		url         string
		contentId   string
		contentType ContentType
	}{
		{"https://instagram.com/p/XYZ789/", "XYZ789", ContentTypePost},
		{"https://www.instagram.com/p/Cabc_-1?utm_source=ig_web_copy_link", "Cabc_-1", ContentTypePost},
		{"https://www.instagram.com/p/ABC/embed", "ABC", ContentTypePost},
		{"https://www.instagram.com/reel/R1?igsh=xyz", "R1", ContentTypeReel},
		{"https://www.instagram.com/reel/R2/", "R2", ContentTypeReel},
	}

	for _, c := range cases {
		t.Run(c.url, func(t *testing.T) {
			ref := Parse(c.url)
			assert.Equal(t, PlatformInstagram, ref.Platform)
			assert.Equal(t, c.contentId, ref.ContentId)
			assert.Equal(t, c.contentType, ref.ContentType)
			assert.Equal(t, "https://www.instagram.com/p/"+c.contentId+"/embed", ref.EmbedUrl)
			assert.Empty(t, ref.ThumbnailUrl)
		})
	}
}

func TestParse_InstagramExample(t *testing.T) {
	assert.Equal(t, ContentReference{
		Platform:    PlatformInstagram,
		ContentId:   "XYZ789",
		ContentType: ContentTypePost,
		EmbedUrl:    "https://www.instagram.com/p/XYZ789/embed",
	}, Parse("https://instagram.com/p/XYZ789/"))
}

func TestParse_InstagramFailedExtraction(t *testing.T) {
	for _, u := range []string{
		"https://instagram.com/someone",
		"https://instagram.com/p/",
		"https://instagram.com/p/?x=1",
		"https://instagram.com/reel/",
		"https://www.instagram.com/stories/someone/123",
	} {
		t.Run(u, func(t *testing.T) {
			assert.Equal(t, ContentReference{Platform: PlatformInstagram}, Parse(u))
		})
	}
}

func TestParse_TikTok(t *testing.T) {
	cases := []struct {
		url       string
		contentId string
	}{
		{"https://www.tiktok.com/@user/video/1234567890", "1234567890"},
		{"https://www.tiktok.com/@user/video/1234567890?is_from_webapp=1", "1234567890"},
		{"https://www.tiktok.com/@user/video/987/embed", "987"},
		{"https://vm.tiktok.com/ZMabc123/", "ZMabc123"},
		{"https://vm.tiktok.com/ZMdef?lang=en", "ZMdef"},
	}

	for _, c := range cases {
		t.Run(c.url, func(t *testing.T) {
			ref := Parse(c.url)
			assert.Equal(t, ContentReference{
				Platform:    PlatformTikTok,
				ContentId:   c.contentId,
				ContentType: ContentTypeVideo,
			}, ref)
		})
	}
}

func TestParse_TikTokFailedExtraction(t *testing.T) {
	for _, u := range []string{
		"https://www.tiktok.com/@user",
		"https://www.tiktok.com/@user/video/notdigits",
		"https://vm.tiktok.com/",
		"https://www.tiktok.com/embed",
	} {
		t.Run(u, func(t *testing.T) {
			assert.Equal(t, ContentReference{Platform: PlatformTikTok}, Parse(u))
		})
	}
}

func TestParse_UnknownPlatform(t *testing.T) {
	for _, u := range []string{
		"",
		" ",
		"not a url",
		"https://vimeo.com/12345",
		"https://example.com/watch?v=abc",
		"https://example.com/shorts/abc",
		"https://example.com/p/abc",
		"https://example.com/@user/video/123",
		"http://[::1]:namedport",
		"%%%%",
	} {
		t.Run(u, func(t *testing.T) {
			ref := Parse(u)
			assert.Equal(t, ContentReference{Platform: PlatformNone}, ref)
			assert.False(t, ref.HasContent())
		})
	}
}

func TestClassify_Order(t *testing.T) {
	assert.Equal(t, PlatformYouTube, Classify("https://instagram.com/p/x?ref=youtube.com"))
	assert.Equal(t, PlatformInstagram, Classify("https://tiktok.com/@x?from=instagram.com"))
	assert.Equal(t, PlatformTikTok, Classify("vm.tiktok.com/abc"))
	assert.Equal(t, PlatformYouTube, Classify("youtu.be/abc"))
	assert.Equal(t, PlatformNone, Classify("https://youtube.co/watch?v=1"))
}

func TestParse_Idempotent(t *testing.T) {
	for _, u := range []string{
		"https://youtube.com/watch?v=abc123",
		"https://instagram.com/p/XYZ789/",
		"https://vm.tiktok.com/ZMabc/",
		"https://example.com",
	} {
		assert.Equal(t, Parse(u), Parse(u))
	}
}

func TestResolveEmbed(t *testing.T) {
	embed, ok := ResolveEmbed("https://youtu.be/xyz?t=5")
	assert.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/xyz", embed)

	embed, ok = ResolveEmbed("https://www.instagram.com/reel/R1/")
	assert.True(t, ok)
	assert.Equal(t, "https://www.instagram.com/p/R1/embed", embed)

	embed, ok = ResolveEmbed("https://www.tiktok.com/@user/video/1234567890")
	assert.False(t, ok)
	assert.Empty(t, embed)

	embed, ok = ResolveEmbed("https://example.com")
	assert.False(t, ok)
	assert.Empty(t, embed)
}

func TestResolveThumbnail(t *testing.T) {
	thumb, ok := ResolveThumbnail("https://youtube.com/watch?v=abc123")
	assert.True(t, ok)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg", thumb)

	thumb, ok = ResolveThumbnail("https://instagram.com/p/XYZ789/")
	assert.True(t, ok)
	assert.Equal(t, "https://picsum.photos/400/500?random=XYZ789&blur=0", thumb)

	thumb, ok = ResolveThumbnail("https://www.tiktok.com/@user/video/1234567890")
	assert.True(t, ok)
	assert.Equal(t, "https://picsum.photos/400/711?random=1234567890&blur=0", thumb)

	thumb, ok = ResolveThumbnail("https://vm.tiktok.com/a&b/")
	assert.True(t, ok)
	assert.Equal(t, "https://picsum.photos/400/711?random=a%26b&blur=0", thumb)

	for _, u := range []string{"", "https://example.com", "https://youtube.com/", "https://instagram.com/p/"} {
		thumb, ok = ResolveThumbnail(u)
		assert.False(t, ok, u)
		assert.Empty(t, thumb, u)
	}
}

func TestPlaceholderUrl_NoPlaceholderForYouTube(t *testing.T) {
	_, ok := PlaceholderUrl(ContentReference{Platform: PlatformYouTube, ContentId: "abc"})
	assert.False(t, ok)
}

func checkInvariants(t *testing.T, rawUrl string) {
	ref := Parse(rawUrl)
	if ref.Platform == PlatformNone {
		assert.Equal(t, ContentReference{Platform: PlatformNone}, ref)
	}
	if ref.ContentId == "" {
		assert.Empty(t, ref.ContentType)
		assert.Empty(t, ref.EmbedUrl)
		assert.Empty(t, ref.ThumbnailUrl)
	} else {
		assert.NotEqual(t, PlatformNone, ref.Platform)
	}
	switch ref.Platform {
	case PlatformYouTube:
		if ref.EmbedUrl != "" {
			assert.True(t, strings.HasPrefix(ref.EmbedUrl, "https://www.youtube.com/embed/"))
		}
	case PlatformInstagram:
		if ref.EmbedUrl != "" {
			assert.True(t, strings.HasPrefix(ref.EmbedUrl, "https://www.instagram.com/p/"))
		}
	case PlatformTikTok:
		assert.Empty(t, ref.EmbedUrl)
	}

	if thumb, ok := ResolveThumbnail(rawUrl); ok {
		assert.True(t, strings.HasPrefix(thumb, "https://"))
	}
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"https://youtube.com/watch?v=abc123",
		"https://youtu.be/xyz?t=5",
		"https://youtube.com/shorts/short1",
		"https://instagram.com/p/XYZ789/",
		"https://www.instagram.com/reel/R1",
		"https://www.tiktok.com/@user/video/1234567890",
		"https://vm.tiktok.com/ZMabc/",
		"youtube.comv=v=&&",
		"instagram.com/p//reel/",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, rawUrl string) {
		checkInvariants(t, rawUrl)
	})
}
