// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/models"
)

// EventsPath is the backend endpoint receiving frontend events.
const EventsPath = "/api/frontend-events"

// TimestampLayout renders capture times as ISO-8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const maxDetachedSends = 4

// Client delivers events through an in-memory queue drained by a single
// dispatcher goroutine. When the queue is full an event is posted from a
// detached goroutine instead, at most maxDetachedSends at a time.
type Client struct {
	api          adapter.APIClient
	release      string
	route        string
	flushTimeout time.Duration
	now          func() time.Time

	queue chan models.FrontendEvent
	sem   *semaphore.Weighted

	mu        sync.RWMutex
	started   bool
	closed    bool
	ctx       context.Context
	cancel    context.CancelFunc
	stopAfter func() bool
	wg        sync.WaitGroup

	dropped atomic.Int64

	logger *logger.Logger
}

// New returns a Client when telemetry is enabled in cfg and a no-op
// emitter otherwise.
func New(cfg *config.EnvConfig, api adapter.APIClient, log *logger.Logger) Emitter {
	if !cfg.Telemetry.Enabled {
		return Nop{}
	}
	return NewClient(cfg, api, log)
}

// NewClient constructs a Client. Events may be tracked before Start; they
// wait in the queue until the dispatcher runs.
func NewClient(cfg *config.EnvConfig, api adapter.APIClient, log *logger.Logger) *Client {
	queueSize := cfg.Telemetry.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}

	flushTimeout := cfg.Telemetry.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = 2 * time.Second
	}

	route := cfg.Telemetry.Route
	if route == "" {
		route = "/"
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		api:          api,
		release:      cfg.Release,
		route:        route,
		flushTimeout: flushTimeout,
		now:          time.Now,
		queue:        make(chan models.FrontendEvent, queueSize),
		sem:          semaphore.NewWeighted(maxDetachedSends),
		ctx:          ctx,
		cancel:       cancel,
		logger:       log,
	}
}

// Track implements [Tracker]. It returns immediately; delivery failures are
// logged at debug level only.
func (c *Client) Track(name models.EventName, payload map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug().Interface("panic", r).Str("event", string(name)).Msg("telemetry track recovered")
		}
	}()

	ev := c.newEvent(name, payload)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		c.drop(ev, "stopped")
		return
	}

	select {
	case c.queue <- ev:
		return
	default:
	}

	if !c.sem.TryAcquire(1) {
		c.drop(ev, "queue full")
		return
	}

	c.wg.Add(1)
	go c.sendDetached(c.ctx, ev)
}

// Start implements [workers.Worker]. It launches the dispatcher, which runs
// until Stop is called or ctx is done. Calling Start again, or after Stop,
// has no effect.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.closed {
		return
	}
	c.started = true
	c.stopAfter = context.AfterFunc(ctx, c.cancel)

	c.wg.Add(1)
	go c.dispatch(c.ctx)

	c.logger.Debug().Int("queue_size", cap(c.queue)).Msg("telemetry dispatcher started")
}

// Stop implements [workers.Worker]. It refuses new events and waits up to
// the flush timeout for queued and detached sends to finish, then cancels
// whatever is still in flight. Stop is idempotent.
func (c *Client) Stop() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.queue)
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(c.flushTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		c.logger.Debug().Dur("flush_timeout", c.flushTimeout).Msg("telemetry flush timed out")
		c.cancel()
		<-done
	}

	// Anything the dispatcher did not reach is discarded.
	for ev := range c.queue {
		c.drop(ev, "not delivered before stop")
	}

	c.cancel()
	if c.stopAfter != nil {
		c.stopAfter()
	}
}

// Dropped reports how many events were discarded without a send attempt.
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

func (c *Client) dispatch(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-c.queue:
			if !ok {
				return
			}
			c.send(ctx, ev)
		}
	}
}

func (c *Client) sendDetached(ctx context.Context, ev models.FrontendEvent) {
	defer c.wg.Done()
	defer c.sem.Release(1)

	c.send(ctx, ev)
}

func (c *Client) send(ctx context.Context, ev models.FrontendEvent) {
	_, err := c.api.Do(ctx, adapter.RequestOptions{
		Path:    EventsPath,
		Method:  http.MethodPost,
		Body:    ev,
		Timeout: c.flushTimeout,
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("event", string(ev.Event)).Msg("telemetry delivery failed")
	}
}

func (c *Client) drop(ev models.FrontendEvent, reason string) {
	c.dropped.Add(1)
	c.logger.Debug().Str("event", string(ev.Event)).Str("reason", reason).Msg("telemetry event dropped")
}

func (c *Client) newEvent(name models.EventName, payload map[string]any) models.FrontendEvent {
	return models.FrontendEvent{
		Event:     name,
		Timestamp: c.now().UTC().Format(TimestampLayout),
		Route:     c.route,
		Release:   c.release,
		Payload:   maps.Clone(payload),
	}
}
