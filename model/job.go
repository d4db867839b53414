package model

const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
)

const (
	JobTypeStatsRefresh = "STATS_REFRESH"
)

type Job struct {
	ID     int
	UserID int
	Type   string
	Status string
}

type JobList []Job

func (j JobList) Len() int {
	return len(j)
}
