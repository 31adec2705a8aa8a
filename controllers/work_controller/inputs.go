package work_controller

import (
	"strconv"
	"strings"

	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/types"
	"github.com/t2bot/portfolio-repo/util"
)

// WorkInput is the body of a create or update request. Nil fields were not
// provided by the client.
type WorkInput struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Type         *types.WorkType `json:"type"`
	Url          *string         `json:"url"`
	ThumbnailUrl *string         `json:"thumbnailUrl"`
	Images       *[]string       `json:"images"`
	Visible      *bool           `json:"visible"`
}

const msgInvalidType = "Invalid type. Must be: youtube, short-form, other, or carousel"
const msgUrlRequired = "URL is required for YouTube and Short Form content"
const msgInvalidUrl = "Invalid url"

func validateFields(in *WorkInput, issues *common.ValidationError) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		issues.Add("Title is required", "title")
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		issues.Add("Description is required", "description")
	}
	if in.Type != nil && !in.Type.IsValid() {
		issues.Add(msgInvalidType, "type")
	}
	if in.Url != nil && *in.Url != "" && !util.IsHttpUrl(*in.Url) {
		issues.Add(msgInvalidUrl, "url")
	}
	if in.ThumbnailUrl != nil && *in.ThumbnailUrl != "" && !util.IsHttpUrl(*in.ThumbnailUrl) {
		issues.Add(msgInvalidUrl, "thumbnailUrl")
	}
	if in.Images != nil {
		for i, img := range *in.Images {
			if !util.IsHttpUrl(img) {
				issues.Add(msgInvalidUrl, "images", strconv.Itoa(i))
			}
		}
	}
}

func validateCreate(in *WorkInput) error {
	issues := &common.ValidationError{}
	if in.Title == nil {
		issues.Add("Title is required", "title")
	}
	if in.Description == nil {
		issues.Add("Description is required", "description")
	}
	if in.Type == nil {
		issues.Add(msgInvalidType, "type")
	}
	validateFields(in, issues)
	if in.Type != nil && in.Type.RequiresUrl() && (in.Url == nil || *in.Url == "") {
		issues.Add(msgUrlRequired, "url")
	}
	return issues.OrNil()
}

func validateUpdate(in *WorkInput, merged *types.WorkItem) error {
	issues := &common.ValidationError{}
	validateFields(in, issues)
	if len(issues.Issues) == 0 && merged.Type.RequiresUrl() && merged.Url == "" {
		issues.Add(msgUrlRequired, "url")
	}
	return issues.OrNil()
}
