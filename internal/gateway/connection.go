package gateway

import (
	"context"
	"time"
)

type connectionState int

const (
	stateDisconnected connectionState = iota
	stateConnected
)

// Connect simulates the legacy session handshake. A configurable fraction of
// attempts fail with a ConnectionLost error; a successful attempt arms the
// inactivity deadline. Repeated calls while connected re-simulate latency and
// restart the deadline.
func (g *Gateway) Connect(ctx context.Context) error {
	if err := g.pause(ctx, g.cfg.connectLatency); err != nil {
		return newUnknownError("", err)
	}

	if g.cfg.connectFailureRate > 0 && g.drawFloat() < g.cfg.connectFailureRate {
		g.logger.Warn().Msg("simulated connect failure")
		return newConnectionLostError("", "handshake failed")
	}

	g.mu.Lock()
	g.state = stateConnected
	g.lastActivity = g.clk.Now()
	g.mu.Unlock()

	g.logger.Info().Dur("latency", g.cfg.connectLatency).Msg("connected")
	return nil
}

// Disconnect tears the session down. It never errors and is a no-op when
// already disconnected.
func (g *Gateway) Disconnect(ctx context.Context) {
	g.mu.Lock()
	wasConnected := g.state == stateConnected
	g.mu.Unlock()
	if !wasConnected {
		return
	}

	_ = g.pause(ctx, g.cfg.disconnectLatency)

	g.mu.Lock()
	g.state = stateDisconnected
	g.mu.Unlock()
	g.logger.Info().Msg("disconnected")
}

func (g *Gateway) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.expireLocked()
	return g.state == stateConnected
}

// expireLocked is the lazy inactivity check: any state read first folds in
// deadline expiry, so no background timer is needed.
func (g *Gateway) expireLocked() {
	if g.state != stateConnected {
		return
	}
	if g.clk.Now().Sub(g.lastActivity) > g.cfg.inactivityWindow {
		g.state = stateDisconnected
		g.logger.Info().Dur("window", g.cfg.inactivityWindow).Msg("session expired from inactivity")
	}
}

func (g *Gateway) touchLocked() {
	g.lastActivity = g.clk.Now()
}

func (g *Gateway) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := g.clk.Timer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
