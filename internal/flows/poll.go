package flows

import (
	"context"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/api"
)

// Poll loop constants. The server may advertise its own interval; values
// outside the accepted window fall back to DefaultPollInterval.
const (
	PollCompletionTimeout = 300 * time.Second
	DefaultPollInterval   = 2 * time.Second
	minServerPollInterval = 1 * time.Second
	maxServerPollInterval = 15 * time.Second
)

const pollTimeoutDescription = "Password reset completion polling exceeded its wall-clock budget"

// PollMetrics carries metric IDs needed by the poll loop.
type PollMetrics struct {
	Polls   int
	Timeout int
}

// PollCompletionDeps captures poll-loop dependencies.
type PollCompletionDeps struct {
	Timeout         time.Duration
	DefaultInterval time.Duration

	Poll func(context.Context) (api.ResetPasswordPollCompletionResult, error)
	Now  func() time.Time

	MetricInc func(int)
	Warn      func(string, ...any)

	Metrics PollMetrics
}

// NormalizePollInterval resolves the interval to sleep between polls. A
// server-advertised interval is honored only inside the accepted window.
func NormalizePollInterval(serverInterval *int, fallback time.Duration) time.Duration {
	if fallback <= 0 {
		fallback = DefaultPollInterval
	}
	if serverInterval == nil {
		return fallback
	}
	advertised := time.Duration(*serverInterval) * time.Second
	if advertised < minServerPollInterval || advertised > maxServerPollInterval {
		return fallback
	}
	return advertised
}

// RunPollCompletion polls until the reset reaches a terminal state or the
// wall-clock budget runs out. The budget is measured from loop entry and
// checked before every re-poll; a breach yields PollingFailed carrying the
// reserved timeout code. The wait between polls is a parked timer, never a
// spin, and honors ctx cancellation.
func RunPollCompletion(ctx context.Context, interval time.Duration, deps PollCompletionDeps) (api.ResetPasswordPollCompletionResult, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.Warn == nil {
		deps.Warn = func(string, ...any) {}
	}
	if deps.Poll == nil {
		return nil, context.Canceled
	}
	if interval <= 0 {
		interval = NormalizePollInterval(nil, deps.DefaultInterval)
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = PollCompletionTimeout
	}

	start := deps.Now()
	for {
		deps.MetricInc(deps.Metrics.Polls)
		result, err := deps.Poll(ctx)
		if err != nil {
			return nil, err
		}
		if _, inProgress := result.(api.ResetPasswordPollingInProgress); !inProgress {
			return result, nil
		}

		if err := sleepPollInterval(ctx, interval); err != nil {
			return nil, err
		}
		if deps.Now().Sub(start) >= timeout {
			deps.MetricInc(deps.Metrics.Timeout)
			deps.Warn("goNativeAuth: reset password completion poll timed out")
			return api.ResetPasswordPollingFailed{
				APIError: api.APIError{
					Error:            api.ErrorCodePollTimeout,
					ErrorDescription: pollTimeoutDescription,
				},
			}, nil
		}
	}
}

func sleepPollInterval(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
