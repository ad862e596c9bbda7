package cleanup

import (
	"context"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/service/game"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultInterval    = time.Minute
	DefaultFinishedTTL = 10 * time.Minute
	DefaultStaleTTL    = 24 * time.Hour
)

// Worker periodically drops finished and abandoned sessions from a
// Manager.
type Worker struct {
	Manager     *game.Manager
	Interval    time.Duration
	FinishedTTL time.Duration
	StaleTTL    time.Duration
}

func NewWorker(m *game.Manager) *Worker {
	return &Worker{
		Manager:     m,
		Interval:    DefaultInterval,
		FinishedTTL: DefaultFinishedTTL,
		StaleTTL:    DefaultStaleTTL,
	}
}

// Run sweeps once right away and then every Interval until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	w.RunOnce()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.WithField("component", "cleanup").Debugf("cleanup worker started, interval %s", w.Interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce performs a single sweep and returns how many sessions went.
func (w *Worker) RunOnce() int {
	return w.Manager.CleanupOldSessions(w.FinishedTTL, w.StaleTTL)
}
