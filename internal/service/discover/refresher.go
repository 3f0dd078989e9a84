// internal/service/discover/refresher.go

package discover

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"odyssey/internal/domain/discover"
)

// TrendingSource supplies the trending view the refresher republishes.
type TrendingSource interface {
	TrendingLocations(ctx context.Context, limit int) ([]discover.TrendingLocation, error)
}

// RefresherConfig contains configuration for the trending refresher.
type RefresherConfig struct {
	Interval time.Duration
	Limit    int
	Subject  string
}

// Refresher periodically recomputes the trending locations view and
// publishes a snapshot on the event bus for live subscribers.
type Refresher struct {
	source   TrendingSource
	eventBus *nats.Conn
	config   RefresherConfig
	handlers []func(discover.TrendSnapshot) error
	mu       sync.RWMutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewRefresher creates a new trending refresher.
func NewRefresher(source TrendingSource, eventBus *nats.Conn, config RefresherConfig) *Refresher {
	return &Refresher{
		source:   source,
		eventBus: eventBus,
		config:   config,
	}
}

// RegisterHandler registers a callback invoked with each fresh snapshot.
func (r *Refresher) RegisterHandler(handler func(discover.TrendSnapshot) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, handler)
}

// Start begins the periodic refresh loop.
func (r *Refresher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(ctx)

	return nil
}

func (r *Refresher) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh recomputes trending locations and publishes the snapshot.
func (r *Refresher) refresh(ctx context.Context) {
	trending, err := r.source.TrendingLocations(ctx, r.config.Limit)
	if err != nil {
		log.Printf("trending refresh failed: %v", err)
		return
	}

	snapshot := discover.TrendSnapshot{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Locations:   trending,
	}

	if err := r.publishSnapshot(snapshot); err != nil {
		log.Printf("error publishing trending snapshot: %v", err)
	}

	r.callHandlers(snapshot)
}

// publishSnapshot publishes a snapshot to the event bus.
func (r *Refresher) publishSnapshot(snapshot discover.TrendSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	return r.eventBus.Publish(r.config.Subject, data)
}

// callHandlers calls all registered snapshot handlers.
func (r *Refresher) callHandlers(snapshot discover.TrendSnapshot) {
	r.mu.RLock()
	handlers := make([]func(discover.TrendSnapshot) error, len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(snapshot); err != nil {
			log.Printf("error in snapshot handler: %v", err)
		}
	}
}

// Stop gracefully stops the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	c := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(c)
	}()

	select {
	case <-c:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
