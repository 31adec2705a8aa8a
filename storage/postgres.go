package storage

import (
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/database"
	"github.com/t2bot/portfolio-repo/types"
)

func NewPostgresStores(db *database.Database) *Stores {
	return &Stores{
		WorkItems:   &pgWorkItems{db: db},
		SiteContent: &pgSiteContent{db: db},
		Users:       &pgUsers{db: db},
	}
}

type pgWorkItems struct {
	db *database.Database
}

func (s *pgWorkItems) ListWorkItems(ctx rcontext.RequestContext, visibleOnly bool) ([]*types.WorkItem, error) {
	return s.db.WorkItems.Prepare(ctx).GetAll(visibleOnly)
}

func (s *pgWorkItems) GetWorkItem(ctx rcontext.RequestContext, id string) (*types.WorkItem, error) {
	return s.db.WorkItems.Prepare(ctx).Get(id)
}

func (s *pgWorkItems) InsertWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error {
	return s.db.WorkItems.Prepare(ctx).Insert(item)
}

func (s *pgWorkItems) UpdateWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error {
	return s.db.WorkItems.Prepare(ctx).Update(item)
}

func (s *pgWorkItems) DeleteWorkItem(ctx rcontext.RequestContext, id string) error {
	return s.db.WorkItems.Prepare(ctx).Delete(id)
}

type pgSiteContent struct {
	db *database.Database
}

func (s *pgSiteContent) GetSiteContent(ctx rcontext.RequestContext) (*types.SiteContent, error) {
	return s.db.SiteContent.Prepare(ctx).Get()
}

func (s *pgSiteContent) UpsertSiteContent(ctx rcontext.RequestContext, content *types.SiteContent) error {
	return s.db.SiteContent.Prepare(ctx).Upsert(content)
}

type pgUsers struct {
	db *database.Database
}

func (s *pgUsers) GetUserByEmail(ctx rcontext.RequestContext, email string) (*types.User, error) {
	return s.db.Users.Prepare(ctx).GetByEmail(email)
}

func (s *pgUsers) InsertUser(ctx rcontext.RequestContext, user *types.User) error {
	return s.db.Users.Prepare(ctx).Insert(user)
}

func (s *pgUsers) CountUsers(ctx rcontext.RequestContext) (int64, error) {
	return s.db.Users.Prepare(ctx).Count()
}
