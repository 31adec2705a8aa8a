package storage

import (
	"sort"
	"sync"

	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

// NewMemoryStores returns stores which keep everything in process memory.
// Records are copied on the way in and out so callers can't mutate shared state.
func NewMemoryStores() *Stores {
	return &Stores{
		WorkItems:   &memWorkItems{items: make(map[string]*types.WorkItem)},
		SiteContent: &memSiteContent{},
		Users:       &memUsers{users: make(map[string]*types.User)},
	}
}

type memWorkItems struct {
	lock  sync.RWMutex
	items map[string]*types.WorkItem
}

func (s *memWorkItems) ListWorkItems(ctx rcontext.RequestContext, visibleOnly bool) ([]*types.WorkItem, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	results := make([]*types.WorkItem, 0, len(s.items))
	for _, item := range s.items {
		if visibleOnly && !item.Visible {
			continue
		}
		results = append(results, item.Clone())
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].Id > results[j].Id
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (s *memWorkItems) GetWorkItem(ctx rcontext.RequestContext, id string) (*types.WorkItem, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return item.Clone(), nil
}

func (s *memWorkItems) InsertWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.items[item.Id]; ok {
		return common.ErrAlreadyExists
	}
	s.items[item.Id] = item.Clone()
	return nil
}

func (s *memWorkItems) UpdateWorkItem(ctx rcontext.RequestContext, item *types.WorkItem) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	existing, ok := s.items[item.Id]
	if !ok {
		return common.ErrNotFound
	}
	updated := item.Clone()
	updated.CreatedAt = existing.CreatedAt
	s.items[item.Id] = updated
	return nil
}

func (s *memWorkItems) DeleteWorkItem(ctx rcontext.RequestContext, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type memSiteContent struct {
	lock    sync.RWMutex
	content *types.SiteContent
}

func copySiteContent(c *types.SiteContent) *types.SiteContent {
	out := &types.SiteContent{UpdatedAt: c.UpdatedAt}
	if c.About != nil {
		about := *c.About
		about.Skills = append(make([]types.Skill, 0, len(c.About.Skills)), c.About.Skills...)
		out.About = &about
	}
	if c.Contact != nil {
		contact := *c.Contact
		out.Contact = &contact
	}
	return out
}

func (s *memSiteContent) GetSiteContent(ctx rcontext.RequestContext) (*types.SiteContent, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.content == nil {
		return nil, nil
	}
	return copySiteContent(s.content), nil
}

func (s *memSiteContent) UpsertSiteContent(ctx rcontext.RequestContext, content *types.SiteContent) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.content = copySiteContent(content)
	return nil
}

type memUsers struct {
	lock  sync.RWMutex
	users map[string]*types.User // by email
}

func (s *memUsers) GetUserByEmail(ctx rcontext.RequestContext, email string) (*types.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (s *memUsers) InsertUser(ctx rcontext.RequestContext, user *types.User) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return common.ErrAlreadyExists
	}
	c := *user
	s.users[user.Email] = &c
	return nil
}

func (s *memUsers) CountUsers(ctx rcontext.RequestContext) (int64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return int64(len(s.users)), nil
}
