package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/types"
)

const selectUserByEmail = "SELECT id, email, first_name, password_hash, created_at FROM users WHERE email = $1;"
const insertUser = "INSERT INTO users (id, email, first_name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5);"
const countUsers = "SELECT COUNT(*) FROM users;"

const uniqueViolation = "23505"

type usersTableStatements struct {
	selectUserByEmail *sql.Stmt
	insertUser        *sql.Stmt
	countUsers        *sql.Stmt
}

type usersTableWithContext struct {
	statements *usersTableStatements
	ctx        rcontext.RequestContext
}

func prepareUsersTables(db *sql.DB) (*usersTableStatements, error) {
	var err error
	var stmts = &usersTableStatements{}

	if stmts.selectUserByEmail, err = db.Prepare(selectUserByEmail); err != nil {
		return nil, errors.New("error preparing selectUserByEmail: " + err.Error())
	}
	if stmts.insertUser, err = db.Prepare(insertUser); err != nil {
		return nil, errors.New("error preparing insertUser: " + err.Error())
	}
	if stmts.countUsers, err = db.Prepare(countUsers); err != nil {
		return nil, errors.New("error preparing countUsers: " + err.Error())
	}

	return stmts, nil
}

func (s *usersTableStatements) Prepare(ctx rcontext.RequestContext) *usersTableWithContext {
	return &usersTableWithContext{
		statements: s,
		ctx:        ctx,
	}
}

func (s *usersTableWithContext) GetByEmail(email string) (*types.User, error) {
	val := &types.User{}
	err := s.statements.selectUserByEmail.QueryRowContext(s.ctx, email).Scan(&val.Id, &val.Email, &val.FirstName, &val.PasswordHash, &val.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	val.CreatedAt = val.CreatedAt.UTC()
	return val, nil
}

func (s *usersTableWithContext) Insert(user *types.User) error {
	_, err := s.statements.insertUser.ExecContext(s.ctx, user.Id, user.Email, user.FirstName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return common.ErrAlreadyExists
		}
		return errors.New("error persisting user: " + err.Error())
	}
	return nil
}

func (s *usersTableWithContext) Count() (int64, error) {
	var count int64
	err := s.statements.countUsers.QueryRowContext(s.ctx).Scan(&count)
	return count, err
}
