package control

import "sync"

// Stats tracks execution counters for the control loop.
type Stats struct {
	Ticks           int64 `json:"ticks"`
	CommandsSent    int64 `json:"commands_sent"`
	SkippedTicks    int64 `json:"skipped_ticks"` // cycles with an active goal that produced no command
	MissedDeadlines int64 `json:"missed_deadlines"`
	InferenceErrors int64 `json:"inference_errors"`
	LastCommandTime int64 `json:"last_command_time"` // unix nanoseconds, 0 until the first command
	mu              sync.Mutex
}

// Stats returns a copy of the current counters.
func (l *Loop) Stats() Stats {
	l.stats.mu.Lock()
	defer l.stats.mu.Unlock()

	return Stats{
		Ticks:           l.stats.Ticks,
		CommandsSent:    l.stats.CommandsSent,
		SkippedTicks:    l.stats.SkippedTicks,
		MissedDeadlines: l.stats.MissedDeadlines,
		InferenceErrors: l.stats.InferenceErrors,
		LastCommandTime: l.stats.LastCommandTime,
	}
}
