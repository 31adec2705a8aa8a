package work_controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
	"github.com/t2bot/portfolio-repo/redislib"
	"github.com/t2bot/portfolio-repo/storage"
	"github.com/t2bot/portfolio-repo/types"
	"github.com/t2bot/portfolio-repo/url_embeds"
)

// ListPublic returns the visible work items, newest first.
func ListPublic(ctx rcontext.RequestContext) ([]*types.WorkItem, error) {
	cached, err := redislib.TryGetWorkList(ctx, true)
	if err != nil {
		ctx.Log.Warn("Error reading work listing from cache: ", err)
	} else if cached != nil {
		ctx.Log.Debug("Serving work listing from cache")
		return cached, nil
	}

	items, err := storage.Get().WorkItems.ListWorkItems(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "error listing visible work items")
	}
	if err = redislib.StoreWorkList(ctx, true, items); err != nil {
		ctx.Log.Warn("Error caching work listing: ", err)
	}
	ctx.Log.Infof("Returning %d visible work items", len(items))
	return items, nil
}

// ListAll returns every work item, including hidden ones.
func ListAll(ctx rcontext.RequestContext) ([]*types.WorkItem, error) {
	items, err := storage.Get().WorkItems.ListWorkItems(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "error listing work items")
	}
	return items, nil
}

func Get(ctx rcontext.RequestContext, id string) (*types.WorkItem, error) {
	return storage.Get().WorkItems.GetWorkItem(ctx, id)
}

func Create(ctx rcontext.RequestContext, in *WorkInput) (*types.WorkItem, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	item := &types.WorkItem{
		Id:          uuid.NewString(),
		Title:       *in.Title,
		Description: *in.Description,
		Type:        *in.Type,
		Images:      make([]string, 0),
		Visible:     true,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	if in.Url != nil {
		item.Url = strings.TrimSpace(*in.Url)
	}
	if in.ThumbnailUrl != nil {
		item.ThumbnailUrl = strings.TrimSpace(*in.ThumbnailUrl)
	}
	if in.Images != nil {
		item.Images = append(item.Images, *in.Images...)
	}
	if in.Visible != nil {
		item.Visible = *in.Visible
	}
	deriveUrls(ctx, item, false)

	ctx = ctx.LogWithFields(logrus.Fields{"workItemId": item.Id})
	if err := storage.Get().WorkItems.InsertWorkItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "error creating work item")
	}
	invalidateListings(ctx)
	ctx.Log.Info("Created work item")
	return item, nil
}

// Update applies the provided fields to an existing work item. Returns
// common.ErrNotFound when there is no such item.
func Update(ctx rcontext.RequestContext, id string, in *WorkInput) (*types.WorkItem, error) {
	ctx = ctx.LogWithFields(logrus.Fields{"workItemId": id})
	db := storage.Get().WorkItems

	existing, err := db.GetWorkItem(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error looking up work item")
	}
	if existing == nil {
		// still report bad input before the missing record
		if err = validateUpdate(in, &types.WorkItem{Type: types.WorkTypeOther}); err != nil {
			return nil, err
		}
		return nil, common.ErrNotFound
	}

	item := existing.Clone()
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Url != nil {
		item.Url = strings.TrimSpace(*in.Url)
	}
	if in.ThumbnailUrl != nil {
		item.ThumbnailUrl = strings.TrimSpace(*in.ThumbnailUrl)
	}
	if in.Images != nil {
		item.Images = append(make([]string, 0, len(*in.Images)), *in.Images...)
	}
	if in.Visible != nil {
		item.Visible = *in.Visible
	}

	if err = validateUpdate(in, item); err != nil {
		return nil, err
	}

	// An automatic thumbnail follows the url, a custom one is left alone.
	if in.Url != nil && in.ThumbnailUrl == nil && item.Url != existing.Url {
		if previous, _ := url_embeds.ResolveThumbnail(existing.Url); previous == existing.ThumbnailUrl {
			item.ThumbnailUrl = ""
		}
	}
	deriveUrls(ctx, item, item.Url != existing.Url)

	if err = db.UpdateWorkItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "error updating work item")
	}
	invalidateListings(ctx)
	ctx.Log.Info("Updated work item")
	return item, nil
}

// Delete removes a work item. Returns common.ErrNotFound when there is no such
// item.
func Delete(ctx rcontext.RequestContext, id string) error {
	ctx = ctx.LogWithFields(logrus.Fields{"workItemId": id})
	if err := storage.Get().WorkItems.DeleteWorkItem(ctx, id); err != nil {
		return errors.Wrap(err, "error deleting work item")
	}
	invalidateListings(ctx)
	ctx.Log.Info("Deleted work item")
	return nil
}

// deriveUrls sets the embed url from the item's url and fills in a thumbnail
// when none was given.
func deriveUrls(ctx rcontext.RequestContext, item *types.WorkItem, urlChanged bool) {
	if item.Url == "" {
		item.EmbedUrl = ""
		return
	}

	if urlChanged || item.EmbedUrl == "" {
		ref := url_embeds.Parse(item.Url)
		metrics.ContentReferencesParsed.With(prometheus.Labels{
			"platform":  string(ref.Platform),
			"extracted": strconv.FormatBool(ref.HasContent()),
		}).Inc()
		if ref.Platform != url_embeds.PlatformNone && !ref.HasContent() {
			ctx.Log.Warnf("Recognized a %s url but could not find the content id in it", ref.Platform)
		}
	}

	item.EmbedUrl, _ = url_embeds.ResolveEmbed(item.Url)
	if item.ThumbnailUrl == "" {
		item.ThumbnailUrl, _ = url_embeds.ResolveThumbnail(item.Url)
	}
}

func invalidateListings(ctx rcontext.RequestContext) {
	if err := redislib.DeleteWorkLists(ctx); err != nil {
		ctx.Log.Warn("Error clearing cached work listings: ", err)
	}
}
