package store

import (
	"github.com/bookmate-app/bookmate/model"
)

func (s *Store) AddJob(job model.Job) (*model.Job, error) {
	stmt := `
	INSERT INTO job (user_id, type, status) VALUES (?, ?, ?)
	RETURNING id, user_id, type, status
	`

	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var j model.Job
	if err := tx.QueryRow(stmt, job.UserID, job.Type, job.Status).Scan(
		&j.ID, &j.UserID, &j.Type, &j.Status,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &j, nil
}

func (s *Store) SetJobStatus(jobID int, status string) error {
	stmt := `UPDATE job SET status = ? WHERE id = ?`

	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if _, err := s.db.Exec(stmt, status, jobID); err != nil {
		return err
	}
	return nil
}
