package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type Session struct {
	Namespace string
	Token     string
	Username  string
	SavedAt   int64
}

const getSession = `-- name: GetSession :one
select namespace, token, username, saved_at from session
where namespace = ?
`

func (q *Queries) GetSession(ctx context.Context, namespace string) (Session, error) {
	row := q.db.QueryRowContext(ctx, getSession, namespace)
	var i Session
	err := row.Scan(
		&i.Namespace,
		&i.Token,
		&i.Username,
		&i.SavedAt,
	)
	return i, err
}

const upsertSession = `-- name: UpsertSession :exec
insert into session(namespace, token, username, saved_at)
values (?, ?, ?, ?)
on conflict (namespace) do update set
    token = excluded.token,
    username = excluded.username,
    saved_at = excluded.saved_at
`

type UpsertSessionParams struct {
	Namespace string
	Token     string
	Username  string
	SavedAt   int64
}

func (q *Queries) UpsertSession(ctx context.Context, arg UpsertSessionParams) error {
	_, err := q.db.ExecContext(ctx, upsertSession,
		arg.Namespace,
		arg.Token,
		arg.Username,
		arg.SavedAt,
	)
	return err
}

const deleteSession = `-- name: DeleteSession :exec
delete from session where namespace = ?
`

func (q *Queries) DeleteSession(ctx context.Context, namespace string) error {
	_, err := q.db.ExecContext(ctx, deleteSession, namespace)
	return err
}
