package store

import (
	"database/sql"
	"sync"

	"github.com/bookmate-app/bookmate/model"
)

// Store is the single gateway to persistent state. The catalog snapshot is
// cached in-process with an explicit lifecycle: loaded on first read,
// invalidated by every mutating admin operation, re-read on the next
// access.
type Store struct {
	db     *sql.DB
	dbLock sync.Mutex

	UserCache          sync.Map // map[int]*model.User
	SystemSettingCache sync.Map // map[string]*model.SystemSetting

	catalogLock sync.Mutex
	catalog     []model.Book

	statsLock sync.Mutex
	stats     *model.CatalogStats
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) DBStats() sql.DBStats {
	return s.db.Stats()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() {
	//
}
