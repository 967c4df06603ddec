package configsqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Struct struct {
	// File is either a local path (a leading "~/" is expanded to the home
	// directory) or a libsql:// / https:// url of a remote database.
	File string `json:"file"`
}

func (config Struct) IsRemote() bool {
	return strings.HasPrefix(config.File, "libsql://") ||
		strings.HasPrefix(config.File, "https://") ||
		strings.HasPrefix(config.File, "http://")
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenDB opens the database and executes `schema` against it.
func (config Struct) OpenDB(schema string) (*sql.DB, error) {
	if config.File == "" {
		return nil, fmt.Errorf("a path was not specified")
	}

	var db *sql.DB
	if config.IsRemote() {
		var err error
		db, err = sql.Open("libsql", config.File)
		if err != nil {
			return nil, err
		}
	} else {
		dbpath, err := expandHome(config.File)
		if err != nil {
			return nil, err
		}
		if dbpath != ":memory:" {
			err = os.MkdirAll(filepath.Dir(dbpath), 0700)
			if err != nil {
				return nil, err
			}
		}

		db, err = sql.Open("sqlite", dbpath)
		if err != nil {
			return nil, err
		}
		// see this stackoverflow post for information on why the following
		// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
		db.SetMaxOpenConns(1)
		if dbpath != ":memory:" {
			_, err = db.Exec("PRAGMA journal_mode=WAL")
			if err != nil {
				db.Close()
				return nil, err
			}
		}
	}

	if schema != "" {
		_, err := db.Exec(schema)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
