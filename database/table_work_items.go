package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

const selectAllWorkItems = "SELECT id, title, description, work_type, url, thumbnail_url, embed_url, images, visible, created_at FROM work_items ORDER BY created_at DESC;"
const selectVisibleWorkItems = "SELECT id, title, description, work_type, url, thumbnail_url, embed_url, images, visible, created_at FROM work_items WHERE visible = TRUE ORDER BY created_at DESC;"
const selectWorkItem = "SELECT id, title, description, work_type, url, thumbnail_url, embed_url, images, visible, created_at FROM work_items WHERE id = $1;"
const insertWorkItem = "INSERT INTO work_items (id, title, description, work_type, url, thumbnail_url, embed_url, images, visible, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);"
const updateWorkItem = "UPDATE work_items SET title = $2, description = $3, work_type = $4, url = $5, thumbnail_url = $6, embed_url = $7, images = $8, visible = $9 WHERE id = $1;"
const deleteWorkItem = "DELETE FROM work_items WHERE id = $1;"

type workItemsTableStatements struct {
	selectAllWorkItems     *sql.Stmt
	selectVisibleWorkItems *sql.Stmt
	selectWorkItem         *sql.Stmt
	insertWorkItem         *sql.Stmt
	updateWorkItem         *sql.Stmt
	deleteWorkItem         *sql.Stmt
}

type workItemsTableWithContext struct {
	statements *workItemsTableStatements
	ctx        rcontext.RequestContext
}

func prepareWorkItemsTables(db *sql.DB) (*workItemsTableStatements, error) {
	var err error
	var stmts = &workItemsTableStatements{}

	if stmts.selectAllWorkItems, err = db.Prepare(selectAllWorkItems); err != nil {
		return nil, errors.New("error preparing selectAllWorkItems: " + err.Error())
	}
	if stmts.selectVisibleWorkItems, err = db.Prepare(selectVisibleWorkItems); err != nil {
		return nil, errors.New("error preparing selectVisibleWorkItems: " + err.Error())
	}
	if stmts.selectWorkItem, err = db.Prepare(selectWorkItem); err != nil {
		return nil, errors.New("error preparing selectWorkItem: " + err.Error())
	}
	if stmts.insertWorkItem, err = db.Prepare(insertWorkItem); err != nil {
		return nil, errors.New("error preparing insertWorkItem: " + err.Error())
	}
	if stmts.updateWorkItem, err = db.Prepare(updateWorkItem); err != nil {
		return nil, errors.New("error preparing updateWorkItem: " + err.Error())
	}
	if stmts.deleteWorkItem, err = db.Prepare(deleteWorkItem); err != nil {
		return nil, errors.New("error preparing deleteWorkItem: " + err.Error())
	}

	return stmts, nil
}

func (s *workItemsTableStatements) Prepare(ctx rcontext.RequestContext) *workItemsTableWithContext {
	return &workItemsTableWithContext{
		statements: s,
		ctx:        ctx,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkItem(row rowScanner) (*types.WorkItem, error) {
	val := &types.WorkItem{}
	var url, thumbnailUrl, embedUrl sql.NullString
	images := make([]string, 0)
	err := row.Scan(&val.Id, &val.Title, &val.Description, &val.Type, &url, &thumbnailUrl, &embedUrl, pq.Array(&images), &val.Visible, &val.CreatedAt)
	if err != nil {
		return nil, err
	}
	val.Url = url.String
	val.ThumbnailUrl = thumbnailUrl.String
	val.EmbedUrl = embedUrl.String
	val.Images = images
	if val.Images == nil {
		val.Images = make([]string, 0)
	}
	val.CreatedAt = val.CreatedAt.UTC()
	return val, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *workItemsTableWithContext) GetAll(visibleOnly bool) ([]*types.WorkItem, error) {
	stmt := s.statements.selectAllWorkItems
	if visibleOnly {
		stmt = s.statements.selectVisibleWorkItems
	}
	rows, err := stmt.QueryContext(s.ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*types.WorkItem, 0)
	for rows.Next() {
		val, err := scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}
	return results, rows.Err()
}

func (s *workItemsTableWithContext) Get(id string) (*types.WorkItem, error) {
	val, err := scanWorkItem(s.statements.selectWorkItem.QueryRowContext(s.ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		val = nil
	}
	return val, err
}

func (s *workItemsTableWithContext) Insert(item *types.WorkItem) error {
	_, err := s.statements.insertWorkItem.ExecContext(s.ctx,
		item.Id, item.Title, item.Description, item.Type,
		nullableString(item.Url), nullableString(item.ThumbnailUrl), nullableString(item.EmbedUrl),
		pq.Array(item.Images), item.Visible, item.CreatedAt)
	if err != nil {
		return errors.New("error persisting work item: " + err.Error())
	}
	return nil
}

func (s *workItemsTableWithContext) Update(item *types.WorkItem) error {
	res, err := s.statements.updateWorkItem.ExecContext(s.ctx,
		item.Id, item.Title, item.Description, item.Type,
		nullableString(item.Url), nullableString(item.ThumbnailUrl), nullableString(item.EmbedUrl),
		pq.Array(item.Images), item.Visible)
	return expectOneRow(res, err)
}

func (s *workItemsTableWithContext) Delete(id string) error {
	res, err := s.statements.deleteWorkItem.ExecContext(s.ctx, id)
	return expectOneRow(res, err)
}

func expectOneRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
