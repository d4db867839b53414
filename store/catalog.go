package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
)

// The bundled dataset is the originals baseline: it is what the catalog
// reverts to when no edited snapshot exists.
//
//go:embed seed/books.json
var seedBooks []byte

// GetCatalog returns the active catalog snapshot: the persisted edited
// copy when one exists, the bundled baseline otherwise. The returned slice
// is shared and must be treated as read-only; all mutation goes through
// ReplaceCatalog.
func (s *Store) GetCatalog() ([]model.Book, error) {
	s.catalogLock.Lock()
	defer s.catalogLock.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	books, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	s.catalog = books
	return books, nil
}

func (s *Store) loadCatalog() ([]model.Book, error) {
	setting, err := s.GetSystemSetting(model.SettingTypeCatalogSnapshot)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, "failed to read catalog snapshot")
		}
		return loadBaseline()
	}

	books := make([]model.Book, 0)
	if err := json.Unmarshal([]byte(setting.Value), &books); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal catalog snapshot")
	}
	return books, nil
}

func loadBaseline() ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := json.Unmarshal(seedBooks, &books); err != nil {
		return nil, errors.Wrap(err, "failed to load bundled catalog dataset")
	}
	return books, nil
}

// ReplaceCatalog persists books as the new edited snapshot. The whole
// catalog is rewritten at once so a mutation is atomic from any reader's
// point of view.
func (s *Store) ReplaceCatalog(books []model.Book) error {
	value, err := json.Marshal(books)
	if err != nil {
		return errors.Wrap(err, "failed to marshal catalog snapshot")
	}

	if _, err := s.UpsertSystemSetting(&model.SystemSetting{
		Name:        model.SettingTypeCatalogSnapshot,
		Value:       string(value),
		Description: "Edited catalog snapshot, overrides the bundled dataset",
	}); err != nil {
		return err
	}

	s.catalogLock.Lock()
	s.catalog = books
	s.catalogLock.Unlock()
	s.invalidateStats()
	return nil
}

// ResetCatalog removes the edited snapshot so the bundled dataset becomes
// the active catalog again.
func (s *Store) ResetCatalog() error {
	if err := s.DeleteSystemSetting(model.SettingTypeCatalogSnapshot); err != nil {
		return err
	}
	s.catalogLock.Lock()
	s.catalog = nil
	s.catalogLock.Unlock()
	s.invalidateStats()
	return nil
}

// GetBook returns the book with the given id or nil when it does not
// exist in the active snapshot.
func (s *Store) GetBook(bookID int) (*model.Book, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == bookID {
			book := books[i]
			return &book, nil
		}
	}
	return nil, nil
}

func (s *Store) CheckBook(bookID int) bool {
	book, err := s.GetBook(bookID)
	if err != nil {
		return false
	}
	return book != nil
}

// AddBook appends a book with a freshly assigned id (max+1).
func (s *Store) AddBook(book model.Book) (*model.Book, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return nil, err
	}

	book.ID = nextBookID(books)
	if book.Tags == nil {
		book.Tags = []string{}
	}

	updated := make([]model.Book, 0, len(books)+1)
	updated = append(updated, books...)
	updated = append(updated, book)

	if err := s.ReplaceCatalog(updated); err != nil {
		return nil, err
	}
	log.Debug("Book added to catalog", zap.Int("book_id", book.ID), zap.String("title", book.Title))
	return &book, nil
}

// UpdateBook replaces the record whole, keeping the original id. Returns
// nil when the book does not exist.
func (s *Store) UpdateBook(bookID int, book model.Book) (*model.Book, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range books {
		if books[i].ID == bookID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	book.ID = bookID
	if book.Tags == nil {
		book.Tags = []string{}
	}

	updated := make([]model.Book, len(books))
	copy(updated, books)
	updated[index] = book

	if err := s.ReplaceCatalog(updated); err != nil {
		return nil, err
	}
	return &book, nil
}

// RemoveBook deletes the book from the catalog snapshot. Library entries
// referencing it are left alone on purpose: the reference is weak and the
// original system does not cascade.
func (s *Store) RemoveBook(bookID int) (bool, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return false, err
	}

	updated := make([]model.Book, 0, len(books))
	for _, book := range books {
		if book.ID != bookID {
			updated = append(updated, book)
		}
	}
	if len(updated) == len(books) {
		return false, nil
	}

	if err := s.ReplaceCatalog(updated); err != nil {
		return false, err
	}
	return true, nil
}

// ImportBooks appends the parsed rows to the catalog, assigning ids after
// the current maximum.
func (s *Store) ImportBooks(newBooks []model.Book) (int, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return 0, err
	}

	nextID := nextBookID(books)
	updated := make([]model.Book, 0, len(books)+len(newBooks))
	updated = append(updated, books...)
	for i := range newBooks {
		book := newBooks[i]
		book.ID = nextID
		nextID++
		if book.Tags == nil {
			book.Tags = []string{}
		}
		updated = append(updated, book)
	}

	if err := s.ReplaceCatalog(updated); err != nil {
		return 0, err
	}
	return len(newBooks), nil
}

func nextBookID(books []model.Book) int {
	maxID := 0
	for _, book := range books {
		if book.ID > maxID {
			maxID = book.ID
		}
	}
	return maxID + 1
}

// GetCatalogStats serves the cached aggregates, computing them on demand
// when the cache was invalidated and no worker has refreshed it yet.
func (s *Store) GetCatalogStats() (*model.CatalogStats, error) {
	s.statsLock.Lock()
	cached := s.stats
	s.statsLock.Unlock()
	if cached != nil {
		return cached, nil
	}
	return s.RefreshCatalogStats()
}

// RefreshCatalogStats recomputes the aggregates from the active snapshot
// and caches them. Called by the stats worker after catalog mutations.
func (s *Store) RefreshCatalogStats() (*model.CatalogStats, error) {
	books, err := s.GetCatalog()
	if err != nil {
		return nil, err
	}

	stats := &model.CatalogStats{
		Total:   len(books),
		ByGenre: make(map[string]int),
	}
	ratingSum := 0.0
	for _, book := range books {
		stats.ByGenre[book.Genre]++
		stats.TotalReviews += book.ReviewsCount
		ratingSum += book.Rating
	}
	if len(books) > 0 {
		stats.AvgRating = ratingSum / float64(len(books))
	}

	s.statsLock.Lock()
	s.stats = stats
	s.statsLock.Unlock()
	return stats, nil
}

func (s *Store) invalidateStats() {
	s.statsLock.Lock()
	s.stats = nil
	s.statsLock.Unlock()
}
