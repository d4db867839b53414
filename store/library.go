package store

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
)

// Library operations take the user identity explicitly; there is no
// ambient current user anywhere in the store.

func (s *Store) ListLibraryEntries(userID int) ([]model.LibraryEntry, error) {
	query := `
		SELECT user_id, book_id, status, added_at, updated_at
		FROM library_entry
		WHERE user_id = ?
		ORDER BY added_at, book_id
	`
	args := []any{userID}

	log.Debug("SQL query and args:")
	log.Fallback("Debug", fmt.Sprintf("query: %s\nargs: %v\n", query, args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query library entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]model.LibraryEntry, 0)
	for rows.Next() {
		var entry model.LibraryEntry
		if err := rows.Scan(
			&entry.UserID,
			&entry.BookID,
			&entry.Status,
			&entry.AddedAt,
			&entry.UpdatedAt,
		); err != nil {
			log.Error("Failed to scan library entry", zap.Error(err))
			return nil, err
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

func (s *Store) GetLibraryEntry(userID, bookID int) (*model.LibraryEntry, error) {
	stmt := `
		SELECT user_id, book_id, status, added_at, updated_at
		FROM library_entry
		WHERE user_id = ? AND book_id = ?
	`
	var entry model.LibraryEntry
	if err := s.db.QueryRow(stmt, userID, bookID).Scan(
		&entry.UserID,
		&entry.BookID,
		&entry.Status,
		&entry.AddedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, nil
	}
	return &entry, nil
}

func (s *Store) HasLibraryEntry(userID, bookID int) bool {
	stmt := `
		SELECT EXISTS(SELECT 1 FROM library_entry WHERE user_id = ? AND book_id = ?)
	`
	var exists bool
	if err := s.db.QueryRow(stmt, userID, bookID).Scan(&exists); err != nil {
		return false
	}
	return exists
}

// AddLibraryEntry creates a new entry. Callers check HasLibraryEntry
// first; a duplicate insert fails on the primary key.
func (s *Store) AddLibraryEntry(userID, bookID int, status string) (*model.LibraryEntry, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	stmt := `
		INSERT INTO library_entry (
			user_id,
			book_id,
			status,
			added_at,
			updated_at
		) VALUES (?,?,?,?,?)
		RETURNING user_id, book_id, status, added_at, updated_at
	`
	args := []any{userID, bookID, status, now, now}

	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	log.Debug("SQL query and args:")
	log.Fallback("Debug", fmt.Sprintf("query: %s\nargs: %v\n", stmt, args))

	var entry model.LibraryEntry
	if err := tx.QueryRow(stmt, args...).Scan(
		&entry.UserID,
		&entry.BookID,
		&entry.Status,
		&entry.AddedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "failed to add library entry")
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateLibraryStatus changes the reading status. Returns nil when the
// entry does not exist.
func (s *Store) UpdateLibraryStatus(userID, bookID int, status string) (*model.LibraryEntry, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	stmt := `
		UPDATE library_entry
		SET status = ?, updated_at = ?
		WHERE user_id = ? AND book_id = ?
		RETURNING user_id, book_id, status, added_at, updated_at
	`
	args := []any{status, now, userID, bookID}

	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	log.Debug("SQL query and args:")
	log.Fallback("Debug", fmt.Sprintf("query: %s\nargs: %v\n", stmt, args))

	var entry model.LibraryEntry
	if err := tx.QueryRow(stmt, args...).Scan(
		&entry.UserID,
		&entry.BookID,
		&entry.Status,
		&entry.AddedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, nil
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveLibraryEntry deletes the entry and reports whether one existed.
func (s *Store) RemoveLibraryEntry(userID, bookID int) (bool, error) {
	stmt := `
		DELETE FROM library_entry
		WHERE user_id = ? AND book_id = ?
	`
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(stmt, userID, bookID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) GetLibraryStats(userID int) (*model.LibraryStats, error) {
	entries, err := s.ListLibraryEntries(userID)
	if err != nil {
		return nil, err
	}

	stats := &model.LibraryStats{Total: len(entries)}
	for _, entry := range entries {
		switch entry.Status {
		case model.StatusToRead:
			stats.ToRead++
		case model.StatusReading:
			stats.Reading++
		case model.StatusRead:
			stats.Read++
		}
	}
	return stats, nil
}
