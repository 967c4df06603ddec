package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homehealth-dashboard/lib/session/db"
)

const DefaultNamespace = "default"

// SQLStore keeps one credential row per namespace, so several backends
// (ex. staging and production) can each hold a session in the same file.
type SQLStore struct {
	qry       *db.Queries
	namespace string
	now       func() time.Time
}

// NewSQLStore expects `database` to already have db.Schema applied.
func NewSQLStore(database *sql.DB, namespace string) SQLStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return SQLStore{
		qry:       db.New(database),
		namespace: namespace,
		now:       time.Now,
	}
}

func (s SQLStore) Get(ctx context.Context) (Credentials, bool, error) {
	row, err := s.qry.GetSession(ctx, s.namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return Credentials{}, false, nil
	}
	if err != nil {
		return Credentials{}, false, fmt.Errorf("read session %q: %w", s.namespace, err)
	}
	if row.Token == "" {
		return Credentials{}, false, nil
	}
	return Credentials{
		Token:    row.Token,
		Username: row.Username,
		SavedAt:  time.Unix(row.SavedAt, 0),
	}, true, nil
}

func (s SQLStore) Set(ctx context.Context, creds Credentials) error {
	savedAt := creds.SavedAt
	if savedAt.IsZero() {
		savedAt = s.now()
	}
	err := s.qry.UpsertSession(ctx, db.UpsertSessionParams{
		Namespace: s.namespace,
		Token:     creds.Token,
		Username:  creds.Username,
		SavedAt:   savedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("write session %q: %w", s.namespace, err)
	}
	return nil
}

func (s SQLStore) Clear(ctx context.Context) error {
	err := s.qry.DeleteSession(ctx, s.namespace)
	if err != nil {
		return fmt.Errorf("clear session %q: %w", s.namespace, err)
	}
	return nil
}
