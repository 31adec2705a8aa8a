package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

func TestMemoryWorkItems(t *testing.T) {
	ctx := rcontext.Initial()
	s := NewMemoryStores().WorkItems
	now := time.Now().UTC()

	older := &types.WorkItem{Id: "a", Title: "Older", Type: types.WorkTypeOther, Visible: true, CreatedAt: now.Add(-time.Hour), Images: []string{}}
	newer := &types.WorkItem{Id: "b", Title: "Newer", Type: types.WorkTypeOther, Visible: true, CreatedAt: now, Images: []string{}}
	hidden := &types.WorkItem{Id: "c", Title: "Hidden", Type: types.WorkTypeOther, Visible: false, CreatedAt: now.Add(time.Hour), Images: []string{}}
	for _, i := range []*types.WorkItem{older, newer, hidden} {
		require.NoError(t, s.InsertWorkItem(ctx, i))
	}
	assert.ErrorIs(t, s.InsertWorkItem(ctx, older), common.ErrAlreadyExists)

	visible, err := s.ListWorkItems(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "b", visible[0].Id)
	assert.Equal(t, "a", visible[1].Id)

	all, err := s.ListWorkItems(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Id)

	// Returned records are copies
	all[0].Title = "Mutated"
	got, err := s.GetWorkItem(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "Hidden", got.Title)

	got.Title = "Renamed"
	got.CreatedAt = time.Time{}
	require.NoError(t, s.UpdateWorkItem(ctx, got))
	got, err = s.GetWorkItem(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, hidden.CreatedAt, got.CreatedAt)

	assert.ErrorIs(t, s.UpdateWorkItem(ctx, &types.WorkItem{Id: "missing"}), common.ErrNotFound)
	require.NoError(t, s.DeleteWorkItem(ctx, "a"))
	assert.ErrorIs(t, s.DeleteWorkItem(ctx, "a"), common.ErrNotFound)

	got, err = s.GetWorkItem(ctx, "a")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySiteContent(t *testing.T) {
	ctx := rcontext.Initial()
	s := NewMemoryStores().SiteContent

	c, err := s.GetSiteContent(ctx)
	require.NoError(t, err)
	assert.Nil(t, c)

	require.NoError(t, s.UpsertSiteContent(ctx, &types.SiteContent{
		About: &types.AboutContent{Title: "About Me", Description: "Hello", Skills: []types.Skill{}},
	}))
	c, err = s.GetSiteContent(ctx)
	require.NoError(t, err)
	require.NotNil(t, c.About)
	assert.Nil(t, c.Contact)
	assert.Equal(t, "Hello", c.About.Description)

	c.About.Description = "Mutated"
	again, _ := s.GetSiteContent(ctx)
	assert.Equal(t, "Hello", again.About.Description)
}

func TestMemoryUsers(t *testing.T) {
	ctx := rcontext.Initial()
	s := NewMemoryStores().Users

	u, err := s.GetUserByEmail(ctx, "admin@example.org")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.InsertUser(ctx, &types.User{Id: "1", Email: "admin@example.org", FirstName: "Ada"}))
	assert.ErrorIs(t, s.InsertUser(ctx, &types.User{Id: "2", Email: "admin@example.org"}), common.ErrAlreadyExists)

	u, err = s.GetUserByEmail(ctx, "admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FirstName)

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
