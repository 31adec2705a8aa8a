package storage

import (
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

// Lookups return (nil, nil) when nothing matches. Updates and deletes of
// unknown records return common.ErrNotFound.

type WorkItemStore interface {
	ListWorkItems(ctx rcontext.RequestContext, visibleOnly bool) ([]*types.WorkItem, error)
	GetWorkItem(ctx rcontext.RequestContext, id string) (*types.WorkItem, error)
	InsertWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error
	UpdateWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error
	DeleteWorkItem(ctx rcontext.RequestContext, id string) error
}

type SiteContentStore interface {
	GetSiteContent(ctx rcontext.RequestContext) (*types.SiteContent, error)
	UpsertSiteContent(ctx rcontext.RequestContext, content *types.SiteContent) error
}

type UserStore interface {
	GetUserByEmail(ctx rcontext.RequestContext, email string) (*types.User, error)
	InsertUser(ctx rcontext.RequestContext, user *types.User) error
	CountUsers(ctx rcontext.RequestContext) (int64, error)
}

type Stores struct {
	WorkItems   WorkItemStore
	SiteContent SiteContentStore
	Users       UserStore
}
