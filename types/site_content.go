package types

import (
	"time"
)

type Skill struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type AboutContent struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills"`
}

type ContactContent struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeUrl   string `json:"resumeUrl,omitempty"`
	RateCardUrl string `json:"rateCardUrl,omitempty"`
}

// SiteContent is a single row: there is only ever one about and one contact
// section.
type SiteContent struct {
	About     *AboutContent   `json:"about"`
	Contact   *ContactContent `json:"contact"`
	UpdatedAt time.Time       `json:"-"`
}
