package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// SessionSweeper runs SessionService.Sweep on a cron schedule such as
// "@every 5m" or "*/10 * * * *".
type SessionSweeper struct {
	sessions *SessionService
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewSessionSweeper(sessions *SessionService, schedule string, logger zerolog.Logger) (*SessionSweeper, error) {
	sw := &SessionSweeper{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With().Str("component", "session_sweeper").Logger(),
	}
	if _, err := sw.cron.AddFunc(schedule, sw.RunOnce); err != nil {
		return nil, fmt.Errorf("session sweeper: invalid schedule %q: %w", schedule, err)
	}
	return sw, nil
}

func (sw *SessionSweeper) Start() {
	sw.cron.Start()
	sw.logger.Info().Msg("session sweeper started")
}

// Stop waits for a running sweep to finish or for ctx to be done.
func (sw *SessionSweeper) Stop(ctx context.Context) {
	done := sw.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	sw.logger.Info().Msg("session sweeper stopped")
}

func (sw *SessionSweeper) RunOnce() {
	if removed := sw.sessions.Sweep(context.Background()); removed > 0 {
		sw.logger.Info().Int("evicted", removed).Msg("expired sessions evicted")
	}
}
