package types

import (
	"time"
)

type WorkType string

const (
	WorkTypeYouTube   WorkType = "youtube"
	WorkTypeShortForm WorkType = "short-form"
	WorkTypeOther     WorkType = "other"
	WorkTypeCarousel  WorkType = "carousel"
)

var AllWorkTypes = []WorkType{WorkTypeYouTube, WorkTypeShortForm, WorkTypeOther, WorkTypeCarousel}

func (t WorkType) IsValid() bool {
	for _, k := range AllWorkTypes {
		if k == t {
			return true
		}
	}
	return false
}

// RequiresUrl is true for kinds of work which are shown as an embedded player.
func (t WorkType) RequiresUrl() bool {
	return t == WorkTypeYouTube || t == WorkTypeShortForm
}

type WorkItem struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         WorkType  `json:"type"`
	Url          string    `json:"url,omitempty"`
	ThumbnailUrl string    `json:"thumbnailUrl,omitempty"`
	EmbedUrl     string    `json:"embedUrl,omitempty"`
	Images       []string  `json:"images"`
	Visible      bool      `json:"visible"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (w *WorkItem) Clone() *WorkItem {
	c := *w
	c.Images = append(make([]string, 0, len(w.Images)), w.Images...)
	return &c
}
