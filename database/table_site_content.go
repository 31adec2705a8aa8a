package database

import (
	"database/sql"
	"errors"

	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

// The site content lives in a single row with a fixed id.
const siteContentRowId = 1

const selectSiteContent = "SELECT about, contact, updated_at FROM site_content WHERE id = $1;"
const upsertSiteContent = "INSERT INTO site_content (id, about, contact, updated_at) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO UPDATE SET about = EXCLUDED.about, contact = EXCLUDED.contact, updated_at = EXCLUDED.updated_at;"

type siteContentTableStatements struct {
	selectSiteContent *sql.Stmt
	upsertSiteContent *sql.Stmt
}

type siteContentTableWithContext struct {
	statements *siteContentTableStatements
	ctx        rcontext.RequestContext
}

func prepareSiteContentTables(db *sql.DB) (*siteContentTableStatements, error) {
	var err error
	var stmts = &siteContentTableStatements{}

	if stmts.selectSiteContent, err = db.Prepare(selectSiteContent); err != nil {
		return nil, errors.New("error preparing selectSiteContent: " + err.Error())
	}
	if stmts.upsertSiteContent, err = db.Prepare(upsertSiteContent); err != nil {
		return nil, errors.New("error preparing upsertSiteContent: " + err.Error())
	}

	return stmts, nil
}

func (s *siteContentTableStatements) Prepare(ctx rcontext.RequestContext) *siteContentTableWithContext {
	return &siteContentTableWithContext{
		statements: s,
		ctx:        ctx,
	}
}

func (s *siteContentTableWithContext) Get() (*types.SiteContent, error) {
	val := &types.SiteContent{}
	err := s.statements.selectSiteContent.QueryRowContext(s.ctx, siteContentRowId).Scan(jsonValue{&val.About}, jsonValue{&val.Contact}, &val.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *siteContentTableWithContext) Upsert(content *types.SiteContent) error {
	_, err := s.statements.upsertSiteContent.ExecContext(s.ctx, siteContentRowId, jsonValue{content.About}, jsonValue{content.Contact}, content.UpdatedAt)
	if err != nil {
		return errors.New("error persisting site content: " + err.Error())
	}
	return nil
}
