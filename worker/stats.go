package worker

import (
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/store"
)

// StatsPool recomputes catalog statistics off the request path.
type StatsPool struct {
	queue chan model.Job
}

func NewStatsPool(store *store.Store, size int) *StatsPool {
	pool := &StatsPool{
		queue: make(chan model.Job),
	}

	for i := 0; i < size; i++ {
		worker := &StatsWorker{id: i, store: store}
		go worker.Run(pool.queue)
	}

	return pool
}

func (p *StatsPool) GetQueue() chan model.Job {
	return p.queue
}

// Implement WorkPool interface
func (p *StatsPool) Push(job model.Job) {
	p.queue <- job
}

type StatsWorker struct {
	id    int
	store *store.Store
}

func (w *StatsWorker) Run(c <-chan model.Job) {
	log.Debug("StatsWorker is running", zap.Int("worker_id", w.id))

	for {
		job := <-c

		log.Debug("Job received by worker",
			zap.Int("worker_id", w.id),
			zap.Int("user_id", job.UserID),
			zap.String("type", job.Type))

		if job.Type != model.JobTypeStatsRefresh {
			log.Warn("Unknown job type", zap.String("type", job.Type))
			continue
		}

		job.Status = model.JobStatusRunning
		j, err := w.store.AddJob(job)
		if err != nil {
			log.Error("Error adding job", zap.Error(err))
			continue
		}

		if _, err := w.store.RefreshCatalogStats(); err != nil {
			log.Error("Error refreshing catalog stats", zap.Error(err))
			continue
		}

		if err := w.store.SetJobStatus(j.ID, model.JobStatusDone); err != nil {
			log.Error("Error updating job status", zap.Error(err))
		}
	}
}
