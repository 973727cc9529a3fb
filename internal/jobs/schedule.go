package jobs

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// fixedInterval fires every d after the previous activation. Unlike cron's
// "@every" it keeps sub-second precision.
type fixedInterval time.Duration

func (d fixedInterval) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

// newScheduler returns a cron runner logging through logger and the chain
// every scheduled job is wrapped in. Schedule does not apply the runner's
// own chain, so callers wrap jobs with the returned one.
func newScheduler(logger *slog.Logger) (*cron.Cron, cron.Chain) {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))
	chain := cron.NewChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))
	return cron.New(cron.WithLogger(cronLogger)), chain
}
