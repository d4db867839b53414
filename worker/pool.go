package worker // import "github.com/bookmate-app/bookmate/worker"

import "github.com/bookmate-app/bookmate/model"

// WorkPool accepts background jobs pushed by the API handlers.
type WorkPool interface {
	Push(job model.Job)
}
