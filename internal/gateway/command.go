package gateway

import (
	"context"
	"errors"
	"time"

	"legacy-gateway/internal/ratelimit"
)

// RunCommand executes one command against the simulated system. The call
// fails fast with ConnectionLost when no session is up, then acquires a rate
// token, then races the interpreter against the timeout. A timeout abandons
// the wait but not the simulated work; that work holds no real resources
// here, so nothing leaks.
func (g *Gateway) RunCommand(ctx context.Context, command string, opts CommandOptions) (*Response, error) {
	correlationID := opts.CorrelationID
	if correlationID == "" {
		correlationID = g.nextCorrelationID()
	}
	start := g.clk.Now()

	g.logger.Debug().
		Str("correlation_id", correlationID).
		Str("command", command).
		Msg("command received")

	g.mu.Lock()
	g.expireLocked()
	connected := g.state == stateConnected
	g.mu.Unlock()
	if !connected {
		g.logger.Warn().Str("correlation_id", correlationID).Msg("command while disconnected")
		return nil, newConnectionLostError(correlationID, "not connected")
	}

	if err := g.limiter.Acquire(ctx); err != nil {
		var qf *ratelimit.QueueFullError
		if errors.As(err, &qf) {
			st := g.limiter.Status()
			g.logger.Warn().
				Str("correlation_id", correlationID).
				Dur("retry_after", qf.RetryAfter).
				Int("waiting", st.Waiting).
				Msg("rate limit queue full")
			return nil, newRateLimitError(qf.RetryAfter.Milliseconds(), correlationID)
		}
		return nil, newUnknownError(correlationID, err)
	}

	timeout := g.cfg.defaultTimeout
	if opts.TimeoutMS > 0 {
		timeout = time.Duration(opts.TimeoutMS) * time.Millisecond
	}

	type outcome struct {
		rows  []Row
		title string
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		rows, title, err := g.execute(command)
		done <- outcome{rows: rows, title: title, err: err}
	}()

	timer := g.clk.Timer(timeout)
	defer timer.Stop()
	select {
	case <-timer.C:
		g.logger.Warn().
			Str("correlation_id", correlationID).
			Int64("timeout_ms", timeout.Milliseconds()).
			Msg("command timed out")
		return nil, newTimeoutError(timeout.Milliseconds(), correlationID)
	case <-ctx.Done():
		return nil, newUnknownError(correlationID, ctx.Err())
	case out := <-done:
		if out.err != nil {
			if errors.Is(out.err, ErrInvalidCommand) {
				g.logger.Warn().
					Str("correlation_id", correlationID).
					Str("command", command).
					Msg("invalid command")
				return nil, newInvalidCommandError(correlationID, out.err.Error())
			}
			return nil, newUnknownError(correlationID, out.err)
		}

		g.mu.Lock()
		g.touchLocked()
		g.mu.Unlock()

		elapsed := g.clk.Now().Sub(start)
		g.logger.Info().
			Str("correlation_id", correlationID).
			Int("rows", len(out.rows)).
			Dur("elapsed", elapsed).
			Msg("command complete")
		return &Response{
			Rows:          out.rows,
			Screen:        renderScreen(out.title, len(out.rows), g.clk.Now()),
			Elapsed:       elapsed,
			CorrelationID: correlationID,
		}, nil
	}
}
