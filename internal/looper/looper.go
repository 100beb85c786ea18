// Package looper drives repeated scrobble submissions, classifying each
// outcome and pacing the next attempt.
package looper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scrobloop/scrobloop/pkg/openscrobbler"
)

// State is the controller's disposition.
type State int

const (
	// Running means the loop has not reached a terminal state. It is only
	// returned alongside a context error.
	Running State = iota

	// StoppedByLimit means the service reported its daily scrobble limit
	// and the loop halted early.
	StoppedByLimit

	// Done means the requested number of attempts completed.
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case StoppedByLimit:
		return "stopped-by-limit"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Reporter receives the human-facing transcript of the run.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// Submitter sends one scrobble batch. *openscrobbler.Client satisfies it.
type Submitter interface {
	Scrobble(ctx context.Context, artist, album string, tracks []string) (*openscrobbler.Result, error)
}

// Config holds loop policy.
type Config struct {
	// Count is the number of attempt slots to fill.
	Count int

	// CountRejectedAsAttempt makes a zero-accepted response consume an
	// attempt slot instead of retrying it.
	CountRejectedAsAttempt bool

	AcceptDelay    time.Duration // pause after an accepted submission
	RejectDelay    time.Duration // pause after a zero-accepted response
	RateLimitDelay time.Duration // pause after an HTTP 429
	ErrorDelay     time.Duration // pause after any other failure
}

// Looper is the retry controller. It owns the only mutable state of a run,
// the attempt counter, and keeps exactly one submission in flight at a time.
type Looper struct {
	cfg       Config
	submitter Submitter
	reporter  Reporter
	logger    zerolog.Logger
}

// New creates a Looper.
func New(cfg Config, submitter Submitter, reporter Reporter, logger zerolog.Logger) *Looper {
	return &Looper{
		cfg:       cfg,
		submitter: submitter,
		reporter:  reporter,
		logger:    logger.With().Str("component", "looper").Logger(),
	}
}

// Run submits batches until Count attempt slots are spent or the service
// reports its daily limit.
//
// Outcome classification per attempt:
//   - accepted (positive count): success line, slot spent, AcceptDelay
//   - zero accepted: error line with the raw body, RejectDelay, slot spent
//     only when CountRejectedAsAttempt is set
//   - HTTP 429: error line, RateLimitDelay, slot not spent
//   - daily limit: error line, loop halts in StoppedByLimit
//   - anything else: error line, slot spent, ErrorDelay
//
// No delay is taken after the final attempt. Run only returns a non-nil
// error when ctx ends during a delay.
func (l *Looper) Run(ctx context.Context, artist, album string, tracks []string) (State, error) {
	attempt := 0
	for attempt < l.cfg.Count {
		res, err := l.submitter.Scrobble(ctx, artist, album, tracks)

		var delay time.Duration
		var httpErr *openscrobbler.HTTPError
		var limitErr *openscrobbler.DailyLimitError

		switch {
		case errors.As(err, &limitErr):
			l.logger.Debug().Int("code", limitErr.Code).Str("message", limitErr.Message).Msg("daily limit reached")
			l.reporter.Error(fmt.Sprintf("Daily scrobble limit reached: %s", limitErr.Message))
			return StoppedByLimit, nil

		case errors.As(err, &httpErr) && httpErr.RateLimited():
			l.logger.Debug().Int("attempt", attempt).Msg("rate limited, retrying same slot")
			l.reporter.Error(fmt.Sprintf("Rate limited (%s), backing off", httpErr.Status))
			delay = l.cfg.RateLimitDelay

		case err != nil:
			l.logger.Debug().Err(err).Int("attempt", attempt).Msg("submission failed")
			l.reporter.Error(fmt.Sprintf("Scrobble attempt failed: %v", err))
			attempt++
			delay = l.cfg.ErrorDelay

		case res.Accepted > 0:
			attempt++
			l.logger.Debug().Int("accepted", res.Accepted).Int("attempt", attempt).Msg("batch accepted")
			l.reporter.Success(fmt.Sprintf("Scrobbled %d track(s) (%d/%d)", res.Accepted, attempt, l.cfg.Count))
			delay = l.cfg.AcceptDelay

		default:
			l.logger.Debug().Int("attempt", attempt).Msg("batch rejected with zero accepted")
			l.reporter.Error(fmt.Sprintf("Scrobble not accepted: %s", res.Body))
			if l.cfg.CountRejectedAsAttempt {
				attempt++
			}
			delay = l.cfg.RejectDelay
		}

		if attempt >= l.cfg.Count {
			break
		}
		if err := l.sleep(ctx, delay); err != nil {
			return Running, err
		}
	}
	return Done, nil
}

// sleep waits for d or until ctx ends.
func (l *Looper) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
