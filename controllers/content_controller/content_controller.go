package content_controller

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/storage"
	"github.com/t2bot/portfolio-repo/types"
	"github.com/t2bot/portfolio-repo/util"
)

type SectionType string

const (
	SectionAbout   SectionType = "about"
	SectionContact SectionType = "contact"
)

type UpdateRequest struct {
	Type    SectionType     `json:"type"`
	Content json.RawMessage `json:"content"`
}

// GetSiteContent never returns nil content; missing sections are nil fields.
func GetSiteContent(ctx rcontext.RequestContext) (*types.SiteContent, error) {
	content, err := storage.Get().SiteContent.GetSiteContent(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error loading site content")
	}
	if content == nil {
		content = &types.SiteContent{}
	}
	return content, nil
}

// UpdateSiteContent replaces one section and returns the stored section.
func UpdateSiteContent(ctx rcontext.RequestContext, req *UpdateRequest) (interface{}, error) {
	issues := &common.ValidationError{}
	if req.Type != SectionAbout && req.Type != SectionContact {
		issues.Add(`Invalid type. Must be "about" or "contact"`, "type")
		return nil, issues
	}
	if len(req.Content) == 0 || string(req.Content) == "null" {
		issues.Add("Content is required", "content")
		return nil, issues
	}

	existing, err := GetSiteContent(ctx)
	if err != nil {
		return nil, err
	}

	var result interface{}
	switch req.Type {
	case SectionAbout:
		about := &types.AboutContent{}
		if err = json.Unmarshal(req.Content, about); err != nil {
			issues.Add("Invalid about content", "content")
			return nil, issues
		}
		if err = validateAbout(about); err != nil {
			return nil, err
		}
		existing.About = about
		result = about
	case SectionContact:
		contact := &types.ContactContent{}
		if err = json.Unmarshal(req.Content, contact); err != nil {
			issues.Add("Invalid contact content", "content")
			return nil, issues
		}
		if err = validateContact(contact); err != nil {
			return nil, err
		}
		existing.Contact = contact
		result = contact
	}

	existing.UpdatedAt = time.Now().UTC()
	if err = storage.Get().SiteContent.UpsertSiteContent(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "error saving site content")
	}
	ctx.Log.Infof("Updated %s section", req.Type)
	return result, nil
}

// GetAboutMe returns the about description, or the configured default text.
func GetAboutMe(ctx rcontext.RequestContext) (string, error) {
	content, err := GetSiteContent(ctx)
	if err != nil {
		return "", err
	}
	if content.About != nil && content.About.Description != "" {
		return content.About.Description, nil
	}
	return config.Get().Content.DefaultAboutText, nil
}

// UpdateAboutMe sets the about description, keeping the existing title and
// skills.
func UpdateAboutMe(ctx rcontext.RequestContext, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		issues := &common.ValidationError{}
		issues.Add("Content is required and must not be empty", "content")
		return "", issues
	}

	content, err := GetSiteContent(ctx)
	if err != nil {
		return "", err
	}

	about := &types.AboutContent{
		Title:       config.Get().Content.DefaultAboutTitle,
		Description: text,
		Skills:      make([]types.Skill, 0),
	}
	if content.About != nil {
		if content.About.Title != "" {
			about.Title = content.About.Title
		}
		if content.About.Skills != nil {
			about.Skills = content.About.Skills
		}
	}
	content.About = about
	content.UpdatedAt = time.Now().UTC()

	if err = storage.Get().SiteContent.UpsertSiteContent(ctx, content); err != nil {
		return "", errors.Wrap(err, "error saving about text")
	}
	ctx.Log.Info("Updated about text")
	return about.Description, nil
}

func validateAbout(about *types.AboutContent) error {
	issues := &common.ValidationError{}
	if strings.TrimSpace(about.Title) == "" {
		issues.Add("Title is required", "content", "title")
	}
	if strings.TrimSpace(about.Description) == "" {
		issues.Add("Description is required", "content", "description")
	}
	if about.Skills == nil {
		about.Skills = make([]types.Skill, 0)
	}
	for i, s := range about.Skills {
		idx := strconv.Itoa(i)
		if strings.TrimSpace(s.Title) == "" {
			issues.Add("Skill title is required", "content", "skills", idx, "title")
		}
		if strings.TrimSpace(s.Description) == "" {
			issues.Add("Skill description is required", "content", "skills", idx, "description")
		}
		if strings.TrimSpace(s.Icon) == "" {
			issues.Add("Skill icon is required", "content", "skills", idx, "icon")
		}
	}
	return issues.OrNil()
}

func validateContact(contact *types.ContactContent) error {
	issues := &common.ValidationError{}
	contact.Email = strings.TrimSpace(contact.Email)
	if !util.IsEmail(contact.Email) {
		issues.Add("Valid email is required", "content", "email")
	}
	if strings.TrimSpace(contact.Phone) == "" {
		issues.Add("Phone is required", "content", "phone")
	}
	if contact.ResumeUrl != "" && !util.IsHttpUrl(contact.ResumeUrl) {
		issues.Add("Invalid url", "content", "resumeUrl")
	}
	if contact.RateCardUrl != "" && !util.IsHttpUrl(contact.RateCardUrl) {
		issues.Add("Invalid url", "content", "rateCardUrl")
	}
	return issues.OrNil()
}
